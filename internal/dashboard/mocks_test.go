package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/models"
)

// --- Mocks ---

type mockBackend struct {
	mu sync.Mutex

	stocks    []models.Stock
	stocksErr error

	details    map[string]*models.StockDetails
	detailsErr error
	// detailsGate blocks GetStockDetails per ticker until released, and
	// detailsStarted signals that a fetch is in flight. Used to force
	// out-of-order resolution in the ordering tests.
	detailsGate    map[string]chan struct{}
	detailsStarted chan string

	holdings     []models.Holding
	portfolioErr error
	getCalls     int
	// portfolioGate blocks GetPortfolio until released; portfolioStarted
	// signals each fetch going in flight.
	portfolioGate    chan struct{}
	portfolioStarted chan struct{}

	addMessage string
	addErr     error
	addCalls   int
	lastAdd    interfaces.HoldingInput

	deleteMessage string
	deleteErr     error
	deleteCalls   []int
}

func (m *mockBackend) GetHighlightedStocks(_ context.Context) ([]models.Stock, error) {
	return m.stocks, m.stocksErr
}

func (m *mockBackend) GetStockDetails(_ context.Context, ticker string) (*models.StockDetails, error) {
	m.mu.Lock()
	gate := m.detailsGate[ticker]
	started := m.detailsStarted
	m.mu.Unlock()

	if started != nil {
		started <- ticker
	}
	if gate != nil {
		<-gate
	}

	if m.detailsErr != nil {
		return nil, m.detailsErr
	}
	d, ok := m.details[ticker]
	if !ok {
		return nil, fmt.Errorf("no details for %s", ticker)
	}
	return d, nil
}

func (m *mockBackend) GetPortfolio(_ context.Context) ([]models.Holding, error) {
	m.mu.Lock()
	gate := m.portfolioGate
	started := m.portfolioStarted
	m.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.portfolioErr != nil {
		return nil, m.portfolioErr
	}
	out := make([]models.Holding, len(m.holdings))
	copy(out, m.holdings)
	return out, nil
}

func (m *mockBackend) AddHolding(_ context.Context, input interfaces.HoldingInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls++
	m.lastAdd = input
	return m.addMessage, m.addErr
}

func (m *mockBackend) DeleteHolding(_ context.Context, id int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls = append(m.deleteCalls, id)
	return m.deleteMessage, m.deleteErr
}

var _ interfaces.BackendClient = (*mockBackend)(nil)

type statusEntry struct {
	kind    interfaces.StatusKind
	message string
}

type mockSurface struct {
	mu sync.Mutex

	stockList []string
	details   []string
	clears    int
	portfolio []string
	statuses  []statusEntry
	notifies  []statusEntry

	confirmResult  bool
	confirmPrompts []string
}

func (s *mockSurface) ShowStockList(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stockList = append(s.stockList, content)
}

func (s *mockSurface) ShowDetails(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details = append(s.details, content)
}

func (s *mockSurface) ClearDetails() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
}

func (s *mockSurface) ShowPortfolio(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio = append(s.portfolio, content)
}

func (s *mockSurface) PortfolioStatus(kind interfaces.StatusKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, statusEntry{kind, message})
}

func (s *mockSurface) Notify(kind interfaces.StatusKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifies = append(s.notifies, statusEntry{kind, message})
}

func (s *mockSurface) Confirm(prompt string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmPrompts = append(s.confirmPrompts, prompt)
	return s.confirmResult
}

func (s *mockSurface) lastStockList() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.stockList) == 0 {
		return ""
	}
	return s.stockList[len(s.stockList)-1]
}

func (s *mockSurface) lastPortfolio() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.portfolio) == 0 {
		return ""
	}
	return s.portfolio[len(s.portfolio)-1]
}

func (s *mockSurface) detailRenders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.details))
	copy(out, s.details)
	return out
}

var _ interfaces.Surface = (*mockSurface)(nil)

type mockChart struct {
	mu       sync.Mutex
	renders  int
	disposes int
	active   bool
	path     string
	err      error
}

func (c *mockChart) Render(ticker string, _ []models.PricePoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.renders++
	c.active = true
	c.path = "charts/" + ticker + ".png"
	return nil
}

func (c *mockChart) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposes++
	c.active = false
	c.path = ""
}

func (c *mockChart) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *mockChart) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path
}

var _ interfaces.ChartRenderer = (*mockChart)(nil)

// --- Helpers ---

func strPtr(s string) *string { return &s }
func fPtr(f float64) *float64 { return &f }

func sampleHoldings() []models.Holding {
	return []models.Holding{
		{ID: 1, Ticker: "ACME", Name: strPtr("Acme Industrial Corp"), Quantity: 10,
			PurchasePrice: 100, PurchaseDate: "2024-01-02", LatestPrice: fPtr(120), LatestScore: fPtr(1.2)},
		{ID: 2, Ticker: "BOLT", Name: strPtr("Bolt Fasteners Inc"), Quantity: 5,
			PurchasePrice: 100, PurchaseDate: "2024-03-15", LatestPrice: fPtr(80), LatestScore: fPtr(-1.5)},
	}
}

func validInput() interfaces.HoldingInput {
	return interfaces.HoldingInput{
		Ticker:        "ACME",
		Quantity:      "10",
		PurchasePrice: "99.50",
		PurchaseDate:  "2024-01-02",
	}
}
