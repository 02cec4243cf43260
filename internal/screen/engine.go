// Package screen filters and orders the screened stock collection
package screen

import (
	"math"
	"sort"

	"github.com/marketdeck/marketdeck/internal/models"
)

// SortKey identifies one of the fixed sort orders for the stock list
type SortKey string

const (
	SortScoreDesc       SortKey = "score_desc" // default
	SortScoreAsc        SortKey = "score_asc"
	SortPriceChangeDesc SortKey = "price_change_desc"
	SortPriceChangeAsc  SortKey = "price_change_asc"
	SortSentimentDesc   SortKey = "sentiment_desc"
	SortSentimentAsc    SortKey = "sentiment_asc"
)

// SectorAll passes every sector through the filter
const SectorAll = "all"

// Apply filters the collection by sector and orders it by the sort key.
// Returns a new slice; the input and its records are never mutated.
//
// Missing values sort asymmetrically on purpose: a missing score counts as 0
// in both directions, while missing price change and sentiment count as the
// worst value for the requested direction, so they always sort last. Partially
// populated records rank differently under the two rules and both are
// load-bearing display behavior.
func Apply(stocks []models.Stock, sector string, key SortKey) []models.Stock {
	filtered := make([]models.Stock, 0, len(stocks))
	for _, s := range stocks {
		if sector != SectorAll && (s.Sector == nil || *s.Sector != sector) {
			continue
		}
		filtered = append(filtered, s)
	}

	switch key {
	case SortScoreAsc:
		sortAsc(filtered, scoreOrZero)
	case SortPriceChangeDesc:
		sortDesc(filtered, priceChangeOr(math.Inf(-1)))
	case SortPriceChangeAsc:
		sortAsc(filtered, priceChangeOr(math.Inf(1)))
	case SortSentimentDesc:
		sortDesc(filtered, sentimentOr(math.Inf(-1)))
	case SortSentimentAsc:
		sortAsc(filtered, sentimentOr(math.Inf(1)))
	default: // score_desc and anything unrecognised
		sortDesc(filtered, scoreOrZero)
	}

	return filtered
}

func sortDesc(stocks []models.Stock, value func(models.Stock) float64) {
	sort.SliceStable(stocks, func(i, j int) bool {
		return value(stocks[i]) > value(stocks[j])
	})
}

func sortAsc(stocks []models.Stock, value func(models.Stock) float64) {
	sort.SliceStable(stocks, func(i, j int) bool {
		return value(stocks[i]) < value(stocks[j])
	})
}

func scoreOrZero(s models.Stock) float64 {
	if s.Score == nil {
		return 0
	}
	return *s.Score
}

func priceChangeOr(missing float64) func(models.Stock) float64 {
	return func(s models.Stock) float64 {
		if s.PriceChange == nil {
			return missing
		}
		return *s.PriceChange
	}
}

func sentimentOr(missing float64) func(models.Stock) float64 {
	return func(s models.Stock) float64 {
		if s.AvgSentiment == nil {
			return missing
		}
		return *s.AvgSentiment
	}
}
