package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// HistoryRenderer renders recorded verification runs
type HistoryRenderer struct {
	out io.Writer
}

// NewHistoryRenderer creates a new history renderer
func NewHistoryRenderer(out io.Writer) *HistoryRenderer {
	return &HistoryRenderer{out: out}
}

// Render renders runs newest first
func (r *HistoryRenderer) Render(entries []usecase.HistoryEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No verification runs recorded")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"#", "STARTED", "ENVIRONMENT", "ADDRESS", "MODE", "RESULT", "DURATION"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.ID,
			e.StartedAt.Local().Format("2006-01-02 15:04:05"),
			e.Environment,
			shortenAddress(e.Address),
			string(e.Mode),
			historyOutcome(e),
			e.Duration.Round(time.Millisecond).String(),
		})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

func historyOutcome(e usecase.HistoryEntry) string {
	total := e.Passed + e.Failed + e.Errored + e.Skipped
	if e.Failed == 0 && e.Errored == 0 && e.Skipped == 0 {
		return passStyle.Sprintf("✓ %d/%d", e.Passed, total)
	}
	return failStyle.Sprintf("✗ %d/%d", e.Passed, total)
}
