// Package backend provides a client for the screening dashboard API
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/models"
)

const (
	DefaultBaseURL   = "http://localhost:5000"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the BackendClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new dashboard backend client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do performs a rate-limited request and returns the response body.
// Non-2xx statuses become a RequestError carrying the backend's error text;
// failures before a status is obtained become a TransportError.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Endpoint: path, Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &TransportError{Endpoint: path, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &TransportError{Endpoint: path, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("Backend API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: path, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    gjson.GetBytes(data, "error").String(),
			Endpoint:   path,
		}
	}

	return data, nil
}

// GetHighlightedStocks retrieves the screened stock list
func (c *Client) GetHighlightedStocks(ctx context.Context) ([]models.Stock, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/highlighted-stocks", nil)
	if err != nil {
		return nil, err
	}

	var stocks []models.Stock
	if err := json.Unmarshal(data, &stocks); err != nil {
		return nil, &TransportError{Endpoint: "/api/highlighted-stocks", Err: fmt.Errorf("decode response: %w", err)}
	}

	return stocks, nil
}

// GetStockDetails retrieves narrative analysis and price history for one
// ticker. Tickers are upper-cased before the lookup.
func (c *Client) GetStockDetails(ctx context.Context, ticker string) (*models.StockDetails, error) {
	path := "/api/stock-details/" + strings.ToUpper(ticker)
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var details models.StockDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, &TransportError{Endpoint: path, Err: fmt.Errorf("decode response: %w", err)}
	}

	return &details, nil
}

// GetPortfolio retrieves all portfolio holdings
func (c *Client) GetPortfolio(ctx context.Context) ([]models.Holding, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/portfolio", nil)
	if err != nil {
		return nil, err
	}

	var holdings []models.Holding
	if err := json.Unmarshal(data, &holdings); err != nil {
		return nil, &TransportError{Endpoint: "/api/portfolio", Err: fmt.Errorf("decode response: %w", err)}
	}

	return holdings, nil
}

// AddHolding creates a holding from string-typed form fields and returns
// the backend's success message when it provides one.
func (c *Client) AddHolding(ctx context.Context, input interfaces.HoldingInput) (string, error) {
	input.Ticker = strings.ToUpper(input.Ticker)

	data, err := c.do(ctx, http.MethodPost, "/api/portfolio", input)
	if err != nil {
		return "", err
	}

	return gjson.GetBytes(data, "message").String(), nil
}

// DeleteHolding removes the holding with the given backend-assigned id and
// returns the backend's success message when it provides one.
func (c *Client) DeleteHolding(ctx context.Context, id int) (string, error) {
	data, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/portfolio/%d", id), nil)
	if err != nil {
		return "", err
	}

	return gjson.GetBytes(data, "message").String(), nil
}

// Ensure Client implements BackendClient
var _ interfaces.BackendClient = (*Client)(nil)
