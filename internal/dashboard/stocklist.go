// Package dashboard implements the client-side views, stores, and wiring
// for the stock screening dashboard.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/models"
	"github.com/marketdeck/marketdeck/internal/screen"
)

const (
	stockListLoading = "Loading stocks..."
	stockListError   = "Error loading stocks. Please try again later."
	stockListEmpty   = "No stocks match the current filters."
)

// StockListView renders the screened stock list as one card per stock.
// It owns the fetched collection as a read-only snapshot, replaced wholesale
// on every session refresh; re-render is a full replace, triggered only by
// explicit filter/sort changes or the initial load.
type StockListView struct {
	surface interfaces.Surface
	logger  *common.Logger

	stocks  []models.Stock
	sector  string
	sortKey screen.SortKey
}

// NewStockListView creates a stock list view with the default filters
func NewStockListView(surface interfaces.Surface, logger *common.Logger) *StockListView {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &StockListView{
		surface: surface,
		logger:  logger,
		sector:  screen.SectorAll,
		sortKey: screen.SortScoreDesc,
	}
}

// ShowLoading renders the pre-fetch loading state
func (v *StockListView) ShowLoading() {
	v.surface.ShowStockList(stockListLoading)
}

// ShowError replaces the list with an explicit error state
func (v *StockListView) ShowError() {
	v.surface.ShowStockList(stockListError)
}

// SetStocks replaces the owned snapshot wholesale and re-renders
func (v *StockListView) SetStocks(stocks []models.Stock) {
	v.stocks = stocks
	v.render()
}

// ApplyFilters updates the sector filter and sort key and re-renders
func (v *StockListView) ApplyFilters(sector string, key screen.SortKey) {
	if sector == "" {
		sector = screen.SectorAll
	}
	if key == "" {
		key = screen.SortScoreDesc
	}
	v.sector = sector
	v.sortKey = key
	v.render()
}

// Tickers returns the interaction keys of the currently rendered cards,
// in render order.
func (v *StockListView) Tickers() []string {
	ordered := screen.Apply(v.stocks, v.sector, v.sortKey)
	tickers := make([]string, len(ordered))
	for i, s := range ordered {
		tickers[i] = s.Ticker
	}
	return tickers
}

func (v *StockListView) render() {
	ordered := screen.Apply(v.stocks, v.sector, v.sortKey)

	if len(ordered) == 0 {
		v.surface.ShowStockList(stockListEmpty)
		return
	}

	var sb strings.Builder
	for i, s := range ordered {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeStockCard(&sb, &s)
	}

	v.logger.Debug().
		Int("stocks", len(ordered)).
		Str("sector", v.sector).
		Str("sort", string(v.sortKey)).
		Msg("Stock list rendered")

	v.surface.ShowStockList(sb.String())
}

// writeStockCard renders one stock summary. The ticker heads the card and is
// the card's interaction key; absent fields display as N/A, never as zero.
func writeStockCard(sb *strings.Builder, s *models.Stock) {
	sb.WriteString(fmt.Sprintf("%s - %s\n", s.Ticker, common.FormatOptString(s.Name)))
	sb.WriteString(fmt.Sprintf("  Sector: %s | Score: %s\n",
		common.FormatOptString(s.Sector), common.FormatOptNumber(s.Score)))
	sb.WriteString(fmt.Sprintf("  Price Change (5d %%): %s | Volume Ratio: %s\n",
		common.FormatOptNumber(s.PriceChangePct), common.FormatOptNumber(s.VolumeRatio)))
	sb.WriteString(fmt.Sprintf("  P/E Ratio: %s | Dividend Yield %%: %s\n",
		common.FormatOptNumber(s.PERatio), common.FormatOptPct(s.DividendYield)))
	sb.WriteString(fmt.Sprintf("  Sentiment Score: %s | Price vs MA(50): %s | RSI(14): %s\n",
		common.FormatOptNumber(s.AvgSentiment), common.FormatOptString(s.PriceVsMA50), common.FormatOptNumber(s.RSI)))
}
