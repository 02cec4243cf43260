package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/marketdeck/marketdeck/internal/clients/backend"
	"github.com/marketdeck/marketdeck/internal/common"
	"github.com/marketdeck/marketdeck/internal/dashboard"
	"github.com/marketdeck/marketdeck/internal/interfaces"
	"github.com/marketdeck/marketdeck/internal/screen"
)

func main() {
	configPath := os.Getenv("MARKETDECK_CONFIG")

	cfg, err := common.LoadConfig("marketdeck.toml", configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(cfg.Logging.Level)
	logger.Info().
		Str("version", common.GetFullVersion()).
		Str("backend", cfg.Backend.BaseURL).
		Msg("Starting marketdeck")

	client := backend.NewClient(
		backend.WithBaseURL(cfg.Backend.BaseURL),
		backend.WithTimeout(cfg.Backend.GetTimeout()),
		backend.WithRateLimit(cfg.Backend.RateLimit),
		backend.WithLogger(logger),
	)

	surface := newTerminalSurface(bufio.NewReader(os.Stdin), os.Stdout)
	chart := dashboard.NewChartAdapter(cfg.Chart, logger)
	controller := dashboard.NewController(client, chart, surface, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	controller.Start(ctx)
	runLoop(ctx, controller, surface)

	chart.Dispose()
	logger.Info().Msg("Dashboard closed")
}

// runLoop reads one command per line and dispatches it to the controller.
// Every user action is a named operation; there is no background activity.
func runLoop(ctx context.Context, c *dashboard.Controller, s *terminalSurface) {
	printHelp(s)

	for {
		fmt.Fprint(s.out, "\n> ")
		line, err := s.in.ReadString('\n')
		if err != nil {
			return
		}

		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}

		if ctx.Err() != nil {
			return
		}

		switch fields[0] {
		case "quit", "exit", "q":
			return

		case "help":
			printHelp(s)

		case "filter":
			sector := screen.SectorAll
			key := screen.SortScoreDesc
			if len(fields) > 1 {
				sector = fields[1]
			}
			if len(fields) > 2 {
				key = screen.SortKey(fields[2])
			}
			c.ApplyFilters(sector, key)

		case "open":
			if len(fields) < 2 {
				s.Notify(interfaces.StatusError, "usage: open <ticker>")
				continue
			}
			c.OpenDetails(ctx, fields[1])

		case "close":
			c.CloseDetails()

		case "portfolio":
			c.RefreshPortfolio(ctx)

		case "add":
			if len(fields) < 5 {
				s.Notify(interfaces.StatusError, "usage: add <ticker> <quantity> <price> <date>")
				continue
			}
			c.SubmitHolding(ctx, interfaces.HoldingInput{
				Ticker:        fields[1],
				Quantity:      fields[2],
				PurchasePrice: fields[3],
				PurchaseDate:  fields[4],
			})

		case "delete":
			if len(fields) < 2 {
				s.Notify(interfaces.StatusError, "usage: delete <id>")
				continue
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				s.Notify(interfaces.StatusError, "delete takes the numeric holding id")
				continue
			}
			c.DeleteHolding(ctx, id)

		default:
			s.Notify(interfaces.StatusError, fmt.Sprintf("unknown command %q (try help)", fields[0]))
		}
	}
}

func printHelp(s *terminalSurface) {
	fmt.Fprintln(s.out, `Commands:
  filter <sector|all> [score_desc|score_asc|price_change_desc|price_change_asc|sentiment_desc|sentiment_asc]
  open <ticker>      show analysis and price chart for a stock
  close              hide details and release the chart
  portfolio          refresh and show holdings
  add <ticker> <quantity> <price> <YYYY-MM-DD>
  delete <id>        delete a holding by id
  help | quit`)
}
