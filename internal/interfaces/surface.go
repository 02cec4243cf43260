package interfaces

import "github.com/marketdeck/marketdeck/internal/models"

// StatusKind distinguishes success from error in status areas, mirroring
// the success/error styling split the views rely on.
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Surface is the rendering and notification boundary. Views produce content
// and push it through a Surface, so every view is testable without a
// terminal attached.
type Surface interface {
	// ShowStockList replaces the stock list section wholesale
	ShowStockList(content string)

	// ShowDetails replaces the details section wholesale
	ShowDetails(content string)

	// ClearDetails hides the details section
	ClearDetails()

	// ShowPortfolio replaces the portfolio table wholesale
	ShowPortfolio(content string)

	// PortfolioStatus updates the portfolio status line
	PortfolioStatus(kind StatusKind, message string)

	// Notify surfaces a non-blocking notice outside any section
	Notify(kind StatusKind, message string)

	// Confirm asks the user to approve a destructive action
	Confirm(prompt string) bool
}

// ChartRenderer owns at most one rendered chart instance at a time,
// scoped to the details view's lifetime.
type ChartRenderer interface {
	// Render disposes any existing instance, then renders the series
	Render(ticker string, series []models.PricePoint) error

	// Dispose destroys the instance and clears the reference; idempotent
	Dispose()

	// Active reports whether a rendered instance currently exists
	Active() bool

	// Path returns the current artifact location, empty when none exists
	Path() string
}
