package dashboard

import (
	"context"
	"fmt"

	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/models"
	"github.com/marketdeck/marketdeck/internal/screen"
)

// Controller is the dashboard's top-level wiring. Every user action maps to
// a named operation here; the views never see raw input events. All data
// motion is triggered by these operations or the one-time initial load —
// there are no timers, polling, or automatic retries.
type Controller struct {
	surface interfaces.Surface
	logger  *common.Logger

	stockList *StockListView
	details   *DetailsView
	portfolio *PortfolioView
	store     *PortfolioStore
	form      *FormController

	client interfaces.BackendClient
}

// NewController wires the dashboard components together
func NewController(client interfaces.BackendClient, chart interfaces.ChartRenderer, surface interfaces.Surface, logger *common.Logger) *Controller {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	store := NewPortfolioStore(client, surface.Confirm, logger)
	return &Controller{
		surface:   surface,
		logger:    logger,
		stockList: NewStockListView(surface, logger),
		details:   NewDetailsView(client, chart, surface, logger),
		portfolio: NewPortfolioView(surface, logger),
		store:     store,
		form:      NewFormController(store, surface, logger),
		client:    client,
	}
}

// Start performs the initial load: the stock list and the portfolio are
// fetched independently, so one failing does not block the other. Each
// failure replaces only its own view with an error state.
func (c *Controller) Start(ctx context.Context) {
	c.stockList.ShowLoading()
	c.portfolio.ShowLoading()

	c.loadStocks(ctx)
	c.RefreshPortfolio(ctx)
}

func (c *Controller) loadStocks(ctx context.Context) {
	stocks, err := c.client.GetHighlightedStocks(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("Stock list fetch failed")
		c.stockList.ShowError()
		return
	}
	c.stockList.SetStocks(stocks)
}

// ApplyFilters re-renders the stock list with a new sector filter and sort key
func (c *Controller) ApplyFilters(sector string, key screen.SortKey) {
	c.stockList.ApplyFilters(sector, key)
}

// OpenDetails fetches and shows details for the ticker
func (c *Controller) OpenDetails(ctx context.Context, ticker string) error {
	return c.details.Open(ctx, ticker)
}

// CloseDetails hides the details view and releases the chart resource
func (c *Controller) CloseDetails() {
	c.details.Close()
}

// SubmitHolding validates and submits the add-holding form, then re-renders
// the portfolio from the refreshed cache.
func (c *Controller) SubmitHolding(ctx context.Context, input interfaces.HoldingInput) error {
	err := c.form.Submit(ctx, input)
	if err == nil {
		c.portfolio.Render(c.store.Holdings())
	}
	return err
}

// DeleteHolding removes a holding after confirmation and re-renders the
// portfolio. A declined confirmation or a backend failure leaves the table
// unchanged.
func (c *Controller) DeleteHolding(ctx context.Context, id int) error {
	message, deleted, err := c.store.Remove(ctx, id)
	if err != nil {
		c.surface.PortfolioStatus(interfaces.StatusError, fmt.Sprintf("Error: %s", mutationFailureText(err)))
		return err
	}
	if !deleted {
		return nil
	}

	c.surface.PortfolioStatus(interfaces.StatusSuccess, message)
	c.portfolio.Render(c.store.Holdings())
	return nil
}

// RefreshPortfolio refetches the holdings and re-renders the table
func (c *Controller) RefreshPortfolio(ctx context.Context) {
	if err := c.store.Refresh(ctx); err != nil {
		c.portfolio.ShowError()
		return
	}
	c.portfolio.Render(c.store.Holdings())
}

// StockTickers returns the interaction keys of the rendered stock cards
func (c *Controller) StockTickers() []string {
	return c.stockList.Tickers()
}

// Holdings exposes the cached portfolio snapshot for the command surface
func (c *Controller) Holdings() []models.Holding {
	return c.store.Holdings()
}
