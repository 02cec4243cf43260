package dashboard

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/models"
)

// ChartAdapter renders the details view's price-history chart. It owns at
// most one rendered instance at a time: Render disposes the previous
// artifact before producing a new one, and Dispose is idempotent.
type ChartAdapter struct {
	outputDir string
	width     int
	height    int
	logger    *common.Logger

	mu      sync.Mutex
	current string // path of the rendered artifact, empty when none
}

// NewChartAdapter creates a chart adapter writing PNGs under cfg.OutputDir
func NewChartAdapter(cfg common.ChartConfig, logger *common.Logger) *ChartAdapter {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &ChartAdapter{
		outputDir: cfg.OutputDir,
		width:     cfg.Width,
		height:    cfg.Height,
		logger:    logger,
	}
}

// Render disposes any existing chart, then renders the ordered (date, price)
// series as a PNG line chart: x axis chronological, y axis price, tick labels
// as human-readable dates. Series with fewer than two points produce no
// chart; the previous instance is still released.
func (a *ChartAdapter) Render(ticker string, series []models.PricePoint) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.disposeLocked()

	if len(series) < 2 {
		a.logger.Debug().Str("ticker", ticker).Int("points", len(series)).Msg("Not enough price history to chart")
		return nil
	}

	xValues := make([]time.Time, len(series))
	yValues := make([]float64, len(series))
	for i, p := range series {
		t, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return fmt.Errorf("bad price history date %q: %w", p.Date, err)
		}
		xValues[i] = t
		yValues[i] = p.Price
	}

	priceSeries := chart.TimeSeries{
		Name: "Close Price",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("4bc0c0"),
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Close Price", ticker),
		Width:  a.width,
		Height: a.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 2, 2006")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{priceSeries},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}

	if err := os.MkdirAll(a.outputDir, 0o755); err != nil {
		return fmt.Errorf("chart output dir: %w", err)
	}

	path := filepath.Join(a.outputDir, strings.ToUpper(ticker)+".png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("chart write failed: %w", err)
	}

	a.current = path
	a.logger.Debug().Str("ticker", ticker).Str("path", path).Msg("Price chart rendered")
	return nil
}

// Dispose destroys the rendered instance and clears the reference.
// Safe to call when no chart exists.
func (a *ChartAdapter) Dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.disposeLocked()
}

func (a *ChartAdapter) disposeLocked() {
	if a.current == "" {
		return
	}
	if err := os.Remove(a.current); err != nil && !os.IsNotExist(err) {
		a.logger.Warn().Str("path", a.current).Err(err).Msg("Failed to remove chart artifact")
	}
	a.current = ""
}

// Active reports whether a rendered chart instance currently exists
func (a *ChartAdapter) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current != ""
}

// Path returns the current artifact location, empty when none exists
func (a *ChartAdapter) Path() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Ensure ChartAdapter implements ChartRenderer
var _ interfaces.ChartRenderer = (*ChartAdapter)(nil)
