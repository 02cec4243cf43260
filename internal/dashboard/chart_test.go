package dashboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/models"
)

func newTestChart(t *testing.T) *ChartAdapter {
	t.Helper()
	return NewChartAdapter(common.ChartConfig{
		OutputDir: t.TempDir(),
		Width:     400,
		Height:    200,
	}, nil)
}

func testSeries() []models.PricePoint {
	return []models.PricePoint{
		{Date: "2024-01-01", Price: 42.10},
		{Date: "2024-01-08", Price: 42.40},
		{Date: "2024-01-15", Price: 41.90},
	}
}

func TestChartRenderCreatesArtifact(t *testing.T) {
	chart := newTestChart(t)

	require.NoError(t, chart.Render("acme", testSeries()))

	assert.True(t, chart.Active())
	path := chart.Path()
	assert.Equal(t, "ACME.png", filepath.Base(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestChartRenderReplacesPreviousArtifact(t *testing.T) {
	chart := newTestChart(t)

	require.NoError(t, chart.Render("ACME", testSeries()))
	first := chart.Path()

	require.NoError(t, chart.Render("BOLT", testSeries()))

	_, err := os.Stat(first)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "BOLT.png", filepath.Base(chart.Path()))
}

func TestChartRenderTooFewPoints(t *testing.T) {
	chart := newTestChart(t)

	require.NoError(t, chart.Render("ACME", testSeries()))
	require.NoError(t, chart.Render("BOLT", []models.PricePoint{{Date: "2024-01-01", Price: 10}}))

	// The previous artifact is still released even though nothing replaced it.
	assert.False(t, chart.Active())
	assert.Empty(t, chart.Path())
}

func TestChartRenderBadDate(t *testing.T) {
	chart := newTestChart(t)

	err := chart.Render("ACME", []models.PricePoint{
		{Date: "01/02/2024", Price: 10},
		{Date: "01/09/2024", Price: 11},
	})
	assert.Error(t, err)
	assert.False(t, chart.Active())
}

func TestChartDisposeIsIdempotent(t *testing.T) {
	chart := newTestChart(t)

	require.NoError(t, chart.Render("ACME", testSeries()))
	path := chart.Path()

	chart.Dispose()
	chart.Dispose()

	assert.False(t, chart.Active())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestChartDisposeWithoutRenderIsSafe(t *testing.T) {
	chart := newTestChart(t)
	chart.Dispose()
	assert.False(t, chart.Active())
}
