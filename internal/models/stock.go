// Package models defines data structures for marketdeck
package models

// Stock is one screened stock as returned by GET /api/highlighted-stocks.
// The ticker is the stable identity used for list rendering and the details
// lookup. Every other field is display-only and may be absent: the backend
// nulls out NaN/Inf values before serialising, so optional fields are
// pointers and a nil must never be rendered as zero.
type Stock struct {
	Ticker         string   `json:"ticker"`
	Name           *string  `json:"name"`
	Sector         *string  `json:"sector"`
	Score          *float64 `json:"score"`
	PriceChange    *float64 `json:"price_change"`
	PriceChangePct *float64 `json:"price_change_pct"`
	VolumeRatio    *float64 `json:"volume_ratio"`
	PERatio        *float64 `json:"pe_ratio"`
	DividendYield  *float64 `json:"dividend_yield"` // fraction, 0-1
	AvgSentiment   *float64 `json:"avg_sentiment"`
	PriceVsMA50    *string  `json:"price_vs_ma50"`
	RSI            *float64 `json:"rsi"`
}

// PricePoint is one (date, close price) sample of a stock's history,
// used verbatim as the chart's x/y series.
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Price float64 `json:"price"`
}

// StockDetails is the single-stock record from GET /api/stock-details/{ticker}:
// header fields, the narrative analysis, and the chronological price history.
type StockDetails struct {
	Ticker        string       `json:"ticker"`
	Name          *string      `json:"name"`
	Sector        *string      `json:"sector"`
	GeminiSummary *string      `json:"gemini_summary"`
	BullishPoints []string     `json:"bullish_points"`
	BearishPoints []string     `json:"bearish_points"`
	PriceHistory  []PricePoint `json:"price_history"`
}
