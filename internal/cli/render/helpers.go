package render

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/tokencheck/internal/domain"
)

var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	labelStyle         = color.New(color.Faint)
	passStyle          = color.New(color.FgGreen)
	failStyle          = color.New(color.FgRed)
	errorStyle         = color.New(color.FgYellow)
	skippedStyle       = color.New(color.Faint)
	addressStyle       = color.New(color.FgWhite)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error for the terminal. Known domain errors keep their full
// message; anything else is reduced to the innermost cause.
func FormatError(err error) string {
	var (
		unknown  *domain.UnknownEnvironmentError
		missing  *domain.MissingCredentialError
		mismatch *domain.MetadataMismatchError
	)
	msg := err.Error()
	switch {
	case errors.As(err, &unknown), errors.As(err, &missing):
	case errors.As(err, &mismatch):
		msg = "token metadata does not match expectations"
	default:
		parts := strings.Split(msg, ": ")
		msg = parts[len(parts)-1]
	}

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// shortenAddress abbreviates a hex address as 0x1234...abcd
func shortenAddress(s string) string {
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

// newTable returns a borderless table writer in the house style
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.Style().Format.Header = text.FormatDefault
	return t
}
