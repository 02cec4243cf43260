package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/marketdeck/marketdeck/internal/clients/backend"
	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/models"
)

const (
	defaultAddMessage    = "Holding added successfully!"
	defaultDeleteMessage = "Holding deleted successfully!"
)

// PortfolioStore fetches, holds, and refreshes the holdings collection.
// The cached collection is a snapshot of backend state: it is replaced
// wholesale on refresh and invalidated (refetched, never locally patched)
// after every successful mutation. The backend assigns all ids.
type PortfolioStore struct {
	client  interfaces.BackendClient
	confirm func(prompt string) bool
	logger  *common.Logger

	mu       sync.Mutex
	holdings []models.Holding

	// inflight coalesces overlapping refreshes: a second caller waits for
	// the running fetch instead of issuing a redundant one.
	inflight    chan struct{}
	inflightErr error
}

// NewPortfolioStore creates a portfolio store. confirm guards deletes and
// may be nil, in which case every delete is declined.
func NewPortfolioStore(client interfaces.BackendClient, confirm func(prompt string) bool, logger *common.Logger) *PortfolioStore {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	if confirm == nil {
		confirm = func(string) bool { return false }
	}
	return &PortfolioStore{
		client:  client,
		confirm: confirm,
		logger:  logger,
	}
}

// Holdings returns the current cached snapshot
func (s *PortfolioStore) Holdings() []models.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}

// Refresh fetches the full holdings collection and replaces the cache
// atomically. Readers never observe a half-updated collection; a failed
// refresh leaves the previous cache in place.
func (s *PortfolioStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if ch := s.inflight; ch != nil {
		s.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.Lock()
		err := s.inflightErr
		s.mu.Unlock()
		return err
	}

	ch := make(chan struct{})
	s.inflight = ch
	s.mu.Unlock()

	holdings, err := s.client.GetPortfolio(ctx)

	s.mu.Lock()
	if err == nil {
		s.holdings = holdings
	} else {
		s.logger.Error().Err(err).Msg("Portfolio refresh failed")
	}
	s.inflightErr = err
	s.inflight = nil
	s.mu.Unlock()
	close(ch)

	return err
}

// Add validates the input locally and, when valid, creates the holding
// through the backend and refreshes the cache. Returns the success message
// (backend-provided when present, default otherwise). Validation failures
// never issue a request.
func (s *PortfolioStore) Add(ctx context.Context, input interfaces.HoldingInput) (string, error) {
	if verr := ValidateHoldingInput(input); verr != nil {
		return "", verr
	}

	message, err := s.client.AddHolding(ctx, input)
	if err != nil {
		return "", err
	}
	if message == "" {
		message = defaultAddMessage
	}

	s.logger.Info().Str("ticker", input.Ticker).Msg("Holding added")

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Post-add refresh failed")
	}

	return message, nil
}

// Remove deletes the holding after interactive confirmation naming the
// target ticker and id. Declined confirmation issues no request and returns
// deleted=false. Failures leave the cached collection untouched.
func (s *PortfolioStore) Remove(ctx context.Context, id int) (message string, deleted bool, err error) {
	ticker, ok := s.tickerFor(id)
	if !ok {
		return "", false, fmt.Errorf("no holding with id %d", id)
	}

	prompt := fmt.Sprintf("Are you sure you want to delete the holding for %s (ID: %d)?", ticker, id)
	if !s.confirm(prompt) {
		s.logger.Debug().Int("id", id).Msg("Delete declined")
		return "", false, nil
	}

	message, err = s.client.DeleteHolding(ctx, id)
	if err != nil {
		return "", false, err
	}
	if message == "" {
		message = defaultDeleteMessage
	}

	s.logger.Info().Int("id", id).Str("ticker", ticker).Msg("Holding deleted")

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Post-delete refresh failed")
	}

	return message, true, nil
}

func (s *PortfolioStore) tickerFor(id int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.holdings {
		if h.ID == id {
			return h.Ticker, true
		}
	}
	return "", false
}

// mutationFailureText converts a mutation error into its user-visible text:
// the backend's message verbatim when it supplied one, otherwise a generic
// line per taxonomy (request vs transport vs validation).
func mutationFailureText(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}

	var rerr *backend.RequestError
	if errors.As(err, &rerr) {
		if rerr.Message != "" {
			return rerr.Message
		}
		return fmt.Sprintf("Request failed (status %d).", rerr.StatusCode)
	}

	var terr *backend.TransportError
	if errors.As(err, &terr) {
		return "Could not reach the server. Please try again."
	}

	return err.Error()
}
