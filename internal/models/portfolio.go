package models

import "github.com/shopspring/decimal"

// SellScoreThreshold is the screening score below which a holding gets the
// sell-suggestion marker. Strict inequality: exactly -1 is not suggested.
const SellScoreThreshold = -1.0

// Holding is one portfolio entry as returned by GET /api/portfolio.
// The id is backend-assigned and is the delete key; the client never
// computes or assigns it. LatestPrice and LatestScore are backend-joined
// current values and may be absent.
type Holding struct {
	ID            int      `json:"id"`
	Ticker        string   `json:"ticker"`
	Name          *string  `json:"name"`
	Quantity      int      `json:"quantity"`
	PurchasePrice float64  `json:"purchase_price"`
	PurchaseDate  string   `json:"purchase_date"` // YYYY-MM-DD
	LatestPrice   *float64 `json:"latest_price"`
	LatestScore   *float64 `json:"latest_score"`
}

// GainLossPct computes the holding's gain/loss percentage against the latest
// price, rounded to two decimals. Defined only when a latest price is present
// and the purchase price is positive; otherwise ok is false and the value
// must render as N/A, never as zero.
func (h *Holding) GainLossPct() (pct float64, ok bool) {
	if h.LatestPrice == nil || h.PurchasePrice <= 0 {
		return 0, false
	}

	latest := decimal.NewFromFloat(*h.LatestPrice)
	purchase := decimal.NewFromFloat(h.PurchasePrice)
	result := latest.Sub(purchase).
		Div(purchase).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	pct, _ = result.Float64()
	return pct, true
}

// SellSuggested reports whether the holding carries the sell-suggestion
// marker: a latest score is present and strictly below the threshold.
func (h *Holding) SellSuggested() bool {
	return h.LatestScore != nil && *h.LatestScore < SellScoreThreshold
}
