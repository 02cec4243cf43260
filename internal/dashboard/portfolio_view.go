package dashboard

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/models"
)

const (
	portfolioLoading = "Loading portfolio..."
	portfolioError   = "Error loading portfolio."
	portfolioEmpty   = "No holdings in portfolio."
)

// PortfolioView renders the cached holdings as a table with the derived
// gain/loss and sell-suggestion columns. Each row carries the holding's
// backend id, which is the delete-action key.
type PortfolioView struct {
	surface interfaces.Surface
	logger  *common.Logger
}

// NewPortfolioView creates a portfolio view
func NewPortfolioView(surface interfaces.Surface, logger *common.Logger) *PortfolioView {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &PortfolioView{surface: surface, logger: logger}
}

// ShowLoading renders the pre-fetch loading state
func (v *PortfolioView) ShowLoading() {
	v.surface.ShowPortfolio(portfolioLoading)
}

// ShowError replaces the table with an explicit error state
func (v *PortfolioView) ShowError() {
	v.surface.ShowPortfolio(portfolioError)
}

// Render replaces the table wholesale from the given snapshot
func (v *PortfolioView) Render(holdings []models.Holding) {
	if len(holdings) == 0 {
		v.surface.ShowPortfolio(portfolioEmpty)
		return
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{
		"ID", "Ticker", "Name", "Qty", "Purchase Price", "Purchase Date",
		"Latest Price", "Gain/Loss %", "Score", "Action",
	})

	for _, h := range holdings {
		t.AppendRow(table.Row{
			h.ID,
			h.Ticker,
			common.FormatOptString(h.Name),
			h.Quantity,
			common.FormatMoney(h.PurchasePrice),
			h.PurchaseDate,
			common.FormatOptMoney(h.LatestPrice),
			gainLossCell(&h),
			common.FormatOptNumber(h.LatestScore),
			actionCell(&h),
		})
	}

	v.logger.Debug().Int("holdings", len(holdings)).Msg("Portfolio table rendered")
	v.surface.ShowPortfolio(t.Render())
}

// gainLossCell styles the derived percentage by sign; the undefined case is
// a neutral N/A with no styling.
func gainLossCell(h *models.Holding) string {
	pct, ok := h.GainLossPct()
	if !ok {
		return common.NotAvailable
	}

	cell := fmt.Sprintf("%.2f%%", pct)
	if pct >= 0 {
		return text.FgGreen.Sprint(cell)
	}
	return text.FgRed.Sprint(cell)
}

func actionCell(h *models.Holding) string {
	action := fmt.Sprintf("delete %d", h.ID)
	if h.SellSuggested() {
		return text.FgYellow.Sprint("Consider Sell") + " | " + action
	}
	return action
}
