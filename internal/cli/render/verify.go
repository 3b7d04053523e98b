package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VerifyRenderer renders metadata verification results
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{out: out}
}

// verifyJSON is the --json shape of a run
type verifyJSON struct {
	*domain.VerificationResult
	Passed    bool   `json:"passed"`
	NetworkID uint64 `json:"networkId"`
	Account   string `json:"account,omitempty"`
	RunID     int64  `json:"runId,omitempty"`
}

// RenderJSON renders the run as JSON
func (r *VerifyRenderer) RenderJSON(result *usecase.RunCheckResult) error {
	return RenderJSON(r.out, verifyJSON{
		VerificationResult: result.Result,
		Passed:             result.Result.Passed(),
		NetworkID:          result.NetworkID,
		Account:            result.Account,
		RunID:              result.RunID,
	})
}

// Render renders the check table and a summary line
func (r *VerifyRenderer) Render(result *usecase.RunCheckResult) error {
	res := result.Result

	fmt.Fprintf(r.out, "%s %s %s\n",
		sectionHeaderStyle.Sprint("🔍 Verifying token on"),
		sectionHeaderStyle.Sprint(res.Environment),
		labelStyle.Sprintf("(network %d)", result.NetworkID))
	fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprint("Address:"), addressStyle.Sprint(res.Address))
	if result.Account != "" {
		fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprint("Account:"), addressStyle.Sprint(result.Account))
	}
	fmt.Fprintf(r.out, "   %s %s\n\n", labelStyle.Sprint("Mode:   "), cases.Title(language.English).String(string(res.Mode)))

	t := newTable()
	t.AppendHeader(table.Row{"", "ACCESSOR", "EXPECTED", "ACTUAL", "TIME"})
	for _, check := range res.Checks {
		actual := check.Actual
		if check.Status == domain.CheckErrored {
			actual = errorStyle.Sprint(check.Message)
		}
		elapsed := "-"
		if check.Status != domain.CheckSkipped {
			elapsed = check.Duration.Round(time.Millisecond).String()
		}
		t.AppendRow(table.Row{
			statusIcon(check.Status),
			check.Accessor + "()",
			check.Expected,
			actual,
			elapsed,
		})
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	summary := fmt.Sprintf("%d passed, %d failed, %d errored, %d skipped in %s",
		res.Count(domain.CheckPassed),
		res.Count(domain.CheckFailed),
		res.Count(domain.CheckErrored),
		res.Count(domain.CheckSkipped),
		res.Duration.Round(time.Millisecond))
	if res.Passed() {
		fmt.Fprintln(r.out, FormatSuccess(summary))
	} else {
		fmt.Fprintln(r.out, failStyle.Sprintf("❌ %s", summary))
	}

	if result.RunID > 0 {
		fmt.Fprintln(r.out, labelStyle.Sprintf("   recorded as run #%d", result.RunID))
	}
	return nil
}

func statusIcon(status domain.CheckStatus) string {
	switch status {
	case domain.CheckPassed:
		return passStyle.Sprint("✓")
	case domain.CheckFailed:
		return failStyle.Sprint("✗")
	case domain.CheckErrored:
		return errorStyle.Sprint("!")
	default:
		return skippedStyle.Sprint("⊘")
	}
}
