// Package interfaces defines component contracts for marketdeck
package interfaces

import (
	"context"

	"github.com/marketdeck/marketdeck/internal/models"
)

// BackendClient is the dashboard's only wire surface: the five REST
// endpoints exposed by the screening backend.
type BackendClient interface {
	// GetHighlightedStocks retrieves the screened stock list
	GetHighlightedStocks(ctx context.Context) ([]models.Stock, error)

	// GetStockDetails retrieves narrative analysis and price history for one ticker
	GetStockDetails(ctx context.Context, ticker string) (*models.StockDetails, error)

	// GetPortfolio retrieves all portfolio holdings
	GetPortfolio(ctx context.Context) ([]models.Holding, error)

	// AddHolding creates a holding from string-typed form fields.
	// Returns the backend's success message when it provides one.
	AddHolding(ctx context.Context, input HoldingInput) (string, error)

	// DeleteHolding removes the holding with the given backend-assigned id.
	// Returns the backend's success message when it provides one.
	DeleteHolding(ctx context.Context, id int) (string, error)
}

// HoldingInput carries the add-holding form fields. All fields are
// string-typed on the wire; the backend performs its own coercion.
type HoldingInput struct {
	Ticker        string `json:"ticker"`
	Quantity      string `json:"quantity"`
	PurchasePrice string `json:"purchase_price"`
	PurchaseDate  string `json:"purchase_date"`
}
