package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// CheckProgress reports connection and accessor-check progress on stderr
type CheckProgress struct {
	out         io.Writer
	interactive bool
	spinner     *spinner.Spinner
}

// NewCheckProgress creates a progress reporter. Interactive terminals get a spinner,
// everything else gets one line per stage.
func NewCheckProgress(out io.Writer, interactive bool) *CheckProgress {
	return &CheckProgress{
		out:         out,
		interactive: interactive,
	}
}

// OnProgress handles progress events
func (p *CheckProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage == "done" {
		p.stop()
		return
	}

	if !p.interactive {
		if event.Message == "" {
			return
		}
		if event.Total > 0 {
			fmt.Fprintf(p.out, "[%d/%d] %s\n", event.Current, event.Total, event.Message)
		} else {
			fmt.Fprintln(p.out, event.Message)
		}
		return
	}

	if !event.Spinner {
		p.stop()
		return
	}

	if p.spinner == nil {
		p.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		p.spinner.Writer = p.out
		_ = p.spinner.Color("cyan", "bold")
	}
	p.spinner.Suffix = " " + event.Message
	if !p.spinner.Active() {
		p.spinner.Start()
	}
}

func (p *CheckProgress) stop() {
	if p.spinner != nil && p.spinner.Active() {
		p.spinner.Stop()
	}
}

// Info prints an info message
func (p *CheckProgress) Info(message string) {
	p.withSpinnerPaused(func() {
		color.New(color.FgCyan).Fprintln(p.out, message)
	})
}

// Error prints an error message
func (p *CheckProgress) Error(message string) {
	p.withSpinnerPaused(func() {
		color.New(color.FgRed).Fprintln(p.out, message)
	})
}

func (p *CheckProgress) withSpinnerPaused(fn func()) {
	wasActive := p.spinner != nil && p.spinner.Active()
	if wasActive {
		p.spinner.Stop()
	}
	fn()
	if wasActive {
		p.spinner.Start()
	}
}

// NewProgressSink picks the sink for the current output mode. JSON output gets no
// progress at all; a spinner is used only on a terminal.
func NewProgressSink(jsonOutput, nonInteractive bool, out *os.File) usecase.ProgressSink {
	if jsonOutput {
		return NewNopSink()
	}
	interactive := !nonInteractive && isatty.IsTerminal(out.Fd())
	return NewCheckProgress(out, interactive)
}

var _ usecase.ProgressSink = (*CheckProgress)(nil)
