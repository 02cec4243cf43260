package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/marketdeck/marketdeck/internal/interfaces"
)

// terminalSurface renders dashboard sections to the terminal. The details
// section is markdown and goes through glamour; everything else prints as-is.
type terminalSurface struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalSurface(in *bufio.Reader, out io.Writer) *terminalSurface {
	return &terminalSurface{in: in, out: out}
}

func (s *terminalSurface) ShowStockList(content string) {
	fmt.Fprintf(s.out, "\n=== Highlighted Stocks ===\n%s\n", content)
}

func (s *terminalSurface) ShowDetails(content string) {
	rendered, err := glamour.Render(content, "auto")
	if err != nil {
		rendered = content
	}
	fmt.Fprintf(s.out, "\n=== Stock Details ===\n%s\n", rendered)
}

func (s *terminalSurface) ClearDetails() {
	fmt.Fprintln(s.out, "\n(details closed)")
}

func (s *terminalSurface) ShowPortfolio(content string) {
	fmt.Fprintf(s.out, "\n=== My Portfolio ===\n%s\n", content)
}

func (s *terminalSurface) PortfolioStatus(kind interfaces.StatusKind, message string) {
	s.Notify(kind, message)
}

func (s *terminalSurface) Notify(kind interfaces.StatusKind, message string) {
	if kind == interfaces.StatusError {
		fmt.Fprintln(s.out, text.FgRed.Sprint(message))
		return
	}
	fmt.Fprintln(s.out, text.FgGreen.Sprint(message))
}

// Confirm prompts for a y/n answer; anything but y declines.
func (s *terminalSurface) Confirm(prompt string) bool {
	fmt.Fprintf(s.out, "%s [y/N] ", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

var _ interfaces.Surface = (*terminalSurface)(nil)
