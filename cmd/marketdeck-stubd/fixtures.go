package main

import (
	"time"

	"github.com/marketdeck/marketdeck/internal/models"
)

func strPtr(s string) *string { return &s }
func fPtr(f float64) *float64 { return &f }

// fixtures builds a small screened universe with partially populated
// records, including one stock with no score and one with no sentiment so
// the dashboard's missing-value handling is visible out of the box.
func fixtures() ([]models.Stock, map[string]models.StockDetails) {
	stocks := []models.Stock{
		{
			Ticker: "ACME", Name: strPtr("Acme Industrial Corp"), Sector: strPtr("Industrials"),
			Score: fPtr(2.4), PriceChange: fPtr(1.8), PriceChangePct: fPtr(3.1),
			VolumeRatio: fPtr(1.4), PERatio: fPtr(14.2), DividendYield: fPtr(0.021),
			AvgSentiment: fPtr(0.42), PriceVsMA50: strPtr("above"), RSI: fPtr(58.3),
		},
		{
			Ticker: "BOLT", Name: strPtr("Bolt Fasteners Inc"), Sector: strPtr("Industrials"),
			Score: fPtr(1.1), PriceChange: fPtr(-0.6), PriceChangePct: fPtr(-1.2),
			VolumeRatio: fPtr(0.9), PERatio: fPtr(19.8), DividendYield: fPtr(0.034),
			AvgSentiment: fPtr(-0.10), PriceVsMA50: strPtr("below"), RSI: fPtr(44.7),
		},
		{
			Ticker: "CYGN", Name: strPtr("Cygnet Biopharma"), Sector: strPtr("Health Care"),
			PriceChange: fPtr(4.2), PriceChangePct: fPtr(6.5),
			VolumeRatio: fPtr(2.3), RSI: fPtr(71.0),
		},
		{
			Ticker: "DELM", Name: strPtr("Delmarva Utilities"), Sector: strPtr("Utilities"),
			Score: fPtr(-1.7), PriceChange: fPtr(-2.1), PriceChangePct: fPtr(-3.4),
			PERatio: fPtr(11.5), DividendYield: fPtr(0.051), PriceVsMA50: strPtr("below"),
		},
	}

	details := map[string]models.StockDetails{
		"ACME": {
			Ticker: "ACME",
			Name:   strPtr("Acme Industrial Corp"),
			Sector: strPtr("Industrials"),
			GeminiSummary: strPtr("Acme posted its third consecutive quarter of margin " +
				"expansion on steady order flow from infrastructure customers. " +
				"Management guided full-year revenue modestly above consensus."),
			BullishPoints: []string{
				"Backlog grew 12% quarter over quarter",
				"Raised full-year revenue guidance",
			},
			BearishPoints: []string{
				"Input cost inflation pressuring gross margin",
			},
			PriceHistory: history(42.10, []float64{0.3, -0.2, 0.5, 0.4, -0.1, 0.6, 0.2, 0.8, -0.3, 0.4, 0.5, 0.1}),
		},
		"BOLT": {
			Ticker:        "BOLT",
			Name:          strPtr("Bolt Fasteners Inc"),
			Sector:        strPtr("Industrials"),
			GeminiSummary: strPtr("Bolt's quarter was in line with expectations; distributor destocking remains a drag on volumes."),
			BullishPoints: []string{"Dividend maintained for the 18th straight year"},
			BearishPoints: []string{
				"Volume declines in the distributor channel",
				"Pricing power fading as steel costs normalise",
			},
			PriceHistory: history(18.75, []float64{-0.1, 0.0, -0.2, 0.1, -0.3, 0.0, 0.2, -0.1, -0.2, 0.1, 0.0, -0.1}),
		},
		"CYGN": {
			Ticker:        "CYGN",
			Name:          strPtr("Cygnet Biopharma"),
			Sector:        strPtr("Health Care"),
			PriceHistory:  history(7.40, []float64{0.8, 1.1, -0.4, 0.9, 0.3, -0.6, 1.2, 0.5, 0.7, -0.2, 0.9, 0.6}),
			BullishPoints: []string{},
			BearishPoints: []string{},
		},
		"DELM": {
			Ticker:        "DELM",
			Name:          strPtr("Delmarva Utilities"),
			Sector:        strPtr("Utilities"),
			GeminiSummary: strPtr("Rate case outcome was less favourable than expected; regulatory overhang likely persists into next year."),
			BullishPoints: []string{},
			BearishPoints: []string{
				"Unfavourable rate case decision",
				"Rising interest expense on refinanced debt",
			},
			PriceHistory: history(55.20, []float64{-0.5, -0.3, 0.1, -0.7, -0.2, 0.0, -0.4, -0.6, 0.2, -0.3, -0.5, -0.2}),
		},
	}

	return stocks, details
}

// history builds a weekly price series ending today from a start price and
// a sequence of weekly deltas.
func history(start float64, deltas []float64) []models.PricePoint {
	points := make([]models.PricePoint, 0, len(deltas))
	price := start
	day := time.Now().AddDate(0, 0, -7*len(deltas))

	for _, d := range deltas {
		price += d
		points = append(points, models.PricePoint{
			Date:  day.Format("2006-01-02"),
			Price: price,
		})
		day = day.AddDate(0, 0, 7)
	}

	return points
}
