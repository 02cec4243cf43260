package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/models"
)

const (
	summaryPlaceholder = "No analysis summary available."
	pointsPlaceholder  = "None identified in recent results."
)

// DetailsView fetches and renders a single stock's narrative analysis and
// delegates the price history to the chart renderer. A details fetch failure
// never partially updates: prior state is left untouched and a non-blocking
// failure notice is surfaced instead.
type DetailsView struct {
	client  interfaces.BackendClient
	chart   interfaces.ChartRenderer
	surface interfaces.Surface
	logger  *common.Logger

	// token orders overlapping opens: each Open takes the next value and a
	// response only renders while its token is still current, so the last
	// issued click wins even when fetch latencies resolve out of order.
	token  atomic.Int64
	render sync.Mutex
}

// NewDetailsView creates a details view
func NewDetailsView(client interfaces.BackendClient, chart interfaces.ChartRenderer, surface interfaces.Surface, logger *common.Logger) *DetailsView {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &DetailsView{
		client:  client,
		chart:   chart,
		surface: surface,
		logger:  logger,
	}
}

// Open fetches and renders details for the ticker. Superseded responses
// (another Open was issued while this one was in flight) are discarded
// without touching the view.
func (v *DetailsView) Open(ctx context.Context, ticker string) error {
	token := v.token.Add(1)

	details, err := v.client.GetStockDetails(ctx, ticker)
	if err != nil {
		v.logger.Error().Str("ticker", ticker).Err(err).Msg("Details fetch failed")
		v.surface.Notify(interfaces.StatusError, fmt.Sprintf("Could not load details for %s.", strings.ToUpper(ticker)))
		return err
	}

	v.render.Lock()
	defer v.render.Unlock()

	if token != v.token.Load() {
		v.logger.Debug().Str("ticker", ticker).Msg("Details response superseded, discarding")
		return nil
	}

	if err := v.chart.Render(details.Ticker, details.PriceHistory); err != nil {
		v.logger.Warn().Str("ticker", details.Ticker).Err(err).Msg("Price chart render failed")
	}

	v.surface.ShowDetails(formatDetails(details, v.chart.Path()))
	return nil
}

// Close hides the view and releases the chart resource.
// Safe to call when no chart exists.
func (v *DetailsView) Close() {
	v.render.Lock()
	defer v.render.Unlock()

	v.chart.Dispose()
	v.surface.ClearDetails()
}

// formatDetails builds the details section as markdown: header fields,
// narrative summary, and the two independent analysis lists, each with its
// own placeholder fallback.
func formatDetails(d *models.StockDetails, chartPath string) string {
	var sb strings.Builder

	name := d.Ticker + " Details"
	if d.Name != nil && *d.Name != "" {
		name = *d.Name
	}
	sb.WriteString(fmt.Sprintf("# %s (%s)\n\n", name, d.Ticker))
	sb.WriteString(fmt.Sprintf("**Sector:** %s\n\n", common.FormatOptString(d.Sector)))

	sb.WriteString("## Analysis\n\n")
	if d.GeminiSummary != nil && *d.GeminiSummary != "" {
		sb.WriteString(*d.GeminiSummary)
	} else {
		sb.WriteString(summaryPlaceholder)
	}
	sb.WriteString("\n\n")

	sb.WriteString("### Bullish Signals\n\n")
	writePoints(&sb, d.BullishPoints)

	sb.WriteString("### Bearish Signals\n\n")
	writePoints(&sb, d.BearishPoints)

	if chartPath != "" {
		sb.WriteString(fmt.Sprintf("Price chart: %s\n", chartPath))
	}

	return sb.String()
}

func writePoints(sb *strings.Builder, points []string) {
	if len(points) == 0 {
		sb.WriteString(fmt.Sprintf("- %s\n\n", pointsPlaceholder))
		return
	}
	for _, p := range points {
		sb.WriteString(fmt.Sprintf("- %s\n", p))
	}
	sb.WriteString("\n")
}
