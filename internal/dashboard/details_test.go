package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/models"
)

func sampleDetails() map[string]*models.StockDetails {
	return map[string]*models.StockDetails{
		"ACME": {
			Ticker:        "ACME",
			Name:          strPtr("Acme Industrial Corp"),
			Sector:        strPtr("Industrials"),
			GeminiSummary: strPtr("Margins expanded for a third straight quarter."),
			BullishPoints: []string{"Backlog grew 12%"},
			BearishPoints: []string{"Input cost inflation"},
			PriceHistory: []models.PricePoint{
				{Date: "2024-01-01", Price: 42.10},
				{Date: "2024-01-08", Price: 42.40},
			},
		},
		"BOLT": {
			Ticker: "BOLT",
			Name:   strPtr("Bolt Fasteners Inc"),
			Sector: strPtr("Industrials"),
		},
	}
}

func TestOpenRendersDetailsAndChart(t *testing.T) {
	client := &mockBackend{details: sampleDetails()}
	chart := &mockChart{}
	surface := &mockSurface{}
	view := NewDetailsView(client, chart, surface, nil)

	require.NoError(t, view.Open(context.Background(), "ACME"))

	renders := surface.detailRenders()
	require.Len(t, renders, 1)
	assert.Contains(t, renders[0], "# Acme Industrial Corp (ACME)")
	assert.Contains(t, renders[0], "**Sector:** Industrials")
	assert.Contains(t, renders[0], "Margins expanded for a third straight quarter.")
	assert.Contains(t, renders[0], "- Backlog grew 12%")
	assert.Contains(t, renders[0], "charts/ACME.png")
	assert.Equal(t, 1, chart.renders)
}

func TestOpenFailureLeavesViewUntouched(t *testing.T) {
	client := &mockBackend{details: sampleDetails()}
	chart := &mockChart{}
	surface := &mockSurface{}
	view := NewDetailsView(client, chart, surface, nil)

	require.NoError(t, view.Open(context.Background(), "ACME"))

	client.mu.Lock()
	client.detailsErr = errors.New("backend down")
	client.mu.Unlock()

	err := view.Open(context.Background(), "BOLT")
	require.Error(t, err)

	// The prior render is still the latest; the failure surfaced only as a
	// non-blocking notice.
	renders := surface.detailRenders()
	require.Len(t, renders, 1)
	assert.Contains(t, renders[0], "ACME")

	surface.mu.Lock()
	defer surface.mu.Unlock()
	require.Len(t, surface.notifies, 1)
	assert.Equal(t, interfaces.StatusError, surface.notifies[0].kind)
	assert.Equal(t, "Could not load details for BOLT.", surface.notifies[0].message)
}

func TestOpenSupersededResponseIsDiscarded(t *testing.T) {
	gateA := make(chan struct{})
	gateB := make(chan struct{})
	started := make(chan string, 2)
	client := &mockBackend{
		details:        sampleDetails(),
		detailsGate:    map[string]chan struct{}{"ACME": gateA, "BOLT": gateB},
		detailsStarted: started,
	}
	chart := &mockChart{}
	surface := &mockSurface{}
	view := NewDetailsView(client, chart, surface, nil)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		view.Open(context.Background(), "ACME")
	}()
	require.Equal(t, "ACME", <-started)

	go func() {
		defer wg.Done()
		view.Open(context.Background(), "BOLT")
	}()
	require.Equal(t, "BOLT", <-started)

	// Resolve out of order: the later click's fetch finishes first, then the
	// stale one. Only the later click may render.
	close(gateB)
	close(gateA)
	wg.Wait()

	renders := surface.detailRenders()
	require.Len(t, renders, 1)
	assert.Contains(t, renders[0], "BOLT")
	assert.Equal(t, 1, chart.renders)
}

func TestOpenChartFailureStillRendersDetails(t *testing.T) {
	client := &mockBackend{details: sampleDetails()}
	chart := &mockChart{err: errors.New("render failed")}
	surface := &mockSurface{}
	view := NewDetailsView(client, chart, surface, nil)

	require.NoError(t, view.Open(context.Background(), "ACME"))

	renders := surface.detailRenders()
	require.Len(t, renders, 1)
	assert.Contains(t, renders[0], "ACME")
	assert.NotContains(t, renders[0], "Price chart:")
}

func TestCloseDisposesChartAndClearsView(t *testing.T) {
	client := &mockBackend{details: sampleDetails()}
	chart := &mockChart{}
	surface := &mockSurface{}
	view := NewDetailsView(client, chart, surface, nil)

	require.NoError(t, view.Open(context.Background(), "ACME"))
	view.Close()

	assert.False(t, chart.Active())
	surface.mu.Lock()
	defer surface.mu.Unlock()
	assert.Equal(t, 1, surface.clears)
}

func TestCloseWithoutOpenIsSafe(t *testing.T) {
	chart := &mockChart{}
	surface := &mockSurface{}
	view := NewDetailsView(&mockBackend{}, chart, surface, nil)

	view.Close()
	view.Close()

	assert.False(t, chart.Active())
}

func TestFormatDetailsPlaceholders(t *testing.T) {
	d := &models.StockDetails{Ticker: "BOLT"}
	out := formatDetails(d, "")

	assert.Contains(t, out, "# BOLT Details (BOLT)")
	assert.Contains(t, out, "**Sector:** N/A")
	assert.Contains(t, out, "No analysis summary available.")
	// Each list falls back independently.
	assert.Equal(t, 2, strings.Count(out, "None identified in recent results."))
	assert.NotContains(t, out, "Price chart:")
}

func TestFormatDetailsIndependentListFallback(t *testing.T) {
	d := &models.StockDetails{
		Ticker:        "ACME",
		BullishPoints: []string{"Guidance raised"},
	}
	out := formatDetails(d, "")

	assert.Contains(t, out, "- Guidance raised")
	assert.Equal(t, 1, strings.Count(out, "None identified in recent results."))
}
