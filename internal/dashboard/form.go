package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/interfaces"
)

// ValidationError is a client-detected form failure. It never reaches the
// backend: validation failures fail locally before any request is issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// ValidateHoldingInput checks the add-holding form fields: all four
// required, quantity a positive integer, price a positive number, date in
// YYYY-MM-DD form. Returns nil when the input may be submitted.
func ValidateHoldingInput(input interfaces.HoldingInput) *ValidationError {
	if input.Ticker == "" || input.Quantity == "" || input.PurchasePrice == "" || input.PurchaseDate == "" {
		return &ValidationError{Reason: "All fields are required."}
	}

	qty, err := strconv.Atoi(input.Quantity)
	if err != nil || qty <= 0 {
		return &ValidationError{Reason: "Quantity must be a positive whole number."}
	}

	price, err := strconv.ParseFloat(input.PurchasePrice, 64)
	if err != nil || price <= 0 {
		return &ValidationError{Reason: "Purchase price must be a positive number."}
	}

	if _, err := time.Parse("2006-01-02", input.PurchaseDate); err != nil {
		return &ValidationError{Reason: "Purchase date must be in YYYY-MM-DD format."}
	}

	return nil
}

// FormController validates and submits the add-holding form, surfacing the
// outcome on the portfolio status line. Validation failures are reported
// with their specific message and never contact the backend.
type FormController struct {
	store   *PortfolioStore
	surface interfaces.Surface
	logger  *common.Logger
}

// NewFormController creates a form controller
func NewFormController(store *PortfolioStore, surface interfaces.Surface, logger *common.Logger) *FormController {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &FormController{
		store:   store,
		surface: surface,
		logger:  logger,
	}
}

// Submit validates the form and, when valid, adds the holding through the
// store. The status line shows the specific validation message, the backend
// or default success message, or the failure message, each styled by kind.
func (f *FormController) Submit(ctx context.Context, input interfaces.HoldingInput) error {
	if verr := ValidateHoldingInput(input); verr != nil {
		f.logger.Debug().Str("reason", verr.Reason).Msg("Add holding rejected client-side")
		f.surface.PortfolioStatus(interfaces.StatusError, fmt.Sprintf("Error: %s", verr.Reason))
		return verr
	}

	message, err := f.store.Add(ctx, input)
	if err != nil {
		f.surface.PortfolioStatus(interfaces.StatusError, fmt.Sprintf("Error: %s", mutationFailureText(err)))
		return err
	}

	f.surface.PortfolioStatus(interfaces.StatusSuccess, message)
	return nil
}
