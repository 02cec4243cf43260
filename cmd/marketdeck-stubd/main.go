// marketdeck-stubd is a development stand-in for the screening backend.
// It serves the five dashboard endpoints from in-memory fixtures so the
// dashboard can be exercised without the real scoring pipeline.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/models"
)

func main() {
	port := 5000
	if p := os.Getenv("MARKETDECK_STUB_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}

	logger := common.NewLogger(os.Getenv("MARKETDECK_LOG_LEVEL"))

	stub := newStub()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/highlighted-stocks", stub.handleStocks)
	mux.HandleFunc("/api/stock-details/", stub.handleDetails)
	mux.HandleFunc("/api/portfolio", stub.handlePortfolio)
	mux.HandleFunc("/api/portfolio/", stub.handleDelete)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", port).Msg("Starting stub backend")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Stub backend failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Stub backend shutdown failed")
	}
	logger.Info().Msg("Stub backend stopped")
}

// stub holds the in-memory fixture data
type stub struct {
	mu       sync.Mutex
	stocks   []models.Stock
	details  map[string]models.StockDetails
	holdings []models.Holding
	nextID   int
}

func newStub() *stub {
	stocks, details := fixtures()
	return &stub{
		stocks:  stocks,
		details: details,
		nextID:  1,
	}
}

func (s *stub) handleStocks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.stocks)
}

func (s *stub) handleDetails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	ticker := strings.ToUpper(strings.TrimPrefix(r.URL.Path, "/api/stock-details/"))

	s.mu.Lock()
	defer s.mu.Unlock()

	details, ok := s.details[ticker]
	if !ok {
		// The real backend still answers for unknown tickers, with
		// placeholder company info and no history.
		name := fmt.Sprintf("%s (Not found)", ticker)
		sector := "N/A"
		details = models.StockDetails{
			Ticker:       ticker,
			Name:         &name,
			Sector:       &sector,
			PriceHistory: []models.PricePoint{},
		}
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *stub) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.Lock()
		defer s.mu.Unlock()
		writeJSON(w, http.StatusOK, s.holdings)

	case http.MethodPost:
		s.handleAdd(w, r)

	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *stub) handleAdd(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Ticker        string `json:"ticker"`
		Quantity      string `json:"quantity"`
		PurchasePrice string `json:"purchase_price"`
		PurchaseDate  string `json:"purchase_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ticker := strings.ToUpper(input.Ticker)
	if ticker == "" || input.Quantity == "" || input.PurchasePrice == "" || input.PurchaseDate == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields (ticker, quantity, purchase_price, purchase_date)")
		return
	}

	quantity, qErr := strconv.Atoi(input.Quantity)
	price, pErr := strconv.ParseFloat(input.PurchasePrice, 64)
	_, dErr := time.Parse("2006-01-02", input.PurchaseDate)
	if qErr != nil || pErr != nil || dErr != nil || quantity <= 0 || price <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid data type or value for quantity, purchase_price, or purchase_date (YYYY-MM-DD)")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stock, ok := s.findStock(ticker)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Ticker '%s' not found in tracked companies.", ticker))
		return
	}

	holding := models.Holding{
		ID:            s.nextID,
		Ticker:        ticker,
		Name:          stock.Name,
		Quantity:      quantity,
		PurchasePrice: price,
		PurchaseDate:  input.PurchaseDate,
		LatestScore:   stock.Score,
	}
	if history, ok := s.details[ticker]; ok && len(history.PriceHistory) > 0 {
		latest := history.PriceHistory[len(history.PriceHistory)-1].Price
		holding.LatestPrice = &latest
	}

	s.nextID++
	s.holdings = append(s.holdings, holding)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Holding added successfully",
		"id":      holding.ID,
	})
}

func (s *stub) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/portfolio/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid holding id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.holdings {
		if h.ID == id {
			s.holdings = append(s.holdings[:i], s.holdings[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Holding deleted successfully"})
			return
		}
	}

	writeError(w, http.StatusNotFound, "Holding not found")
}

func (s *stub) findStock(ticker string) (*models.Stock, bool) {
	for i := range s.stocks {
		if s.stocks[i].Ticker == ticker {
			return &s.stocks[i], true
		}
	}
	return nil, false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
