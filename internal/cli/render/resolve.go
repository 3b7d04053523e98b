package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// ResolveRenderer renders a single resolved environment
type ResolveRenderer struct {
	out io.Writer
}

// NewResolveRenderer creates a new resolve renderer
func NewResolveRenderer(out io.Writer) *ResolveRenderer {
	return &ResolveRenderer{out: out}
}

// RenderJSON renders the resolved environment as JSON
func (r *ResolveRenderer) RenderJSON(result *usecase.ResolveEnvironmentResult) error {
	return RenderJSON(r.out, result)
}

// Render renders the descriptor as key/value lines
func (r *ResolveRenderer) Render(result *usecase.ResolveEnvironmentResult) error {
	desc := result.Environment

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Environment '%s' resolved", desc.Name)))
	fmt.Fprintln(r.out)

	line := func(label, value string) {
		fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-12s", label+":"), value)
	}

	line("Endpoint", endpointLabel(desc))
	line("Network ID", desc.NetworkID.String())
	line("Gas limit", gasLabel(desc.GasLimit))
	line("Credential", credentialLabel(desc))
	if desc.Explorer != "" {
		explorer := desc.Explorer
		if !result.ExplorerKey {
			explorer += " (no key)"
		}
		line("Explorer", explorer)
	}
	line("Deployment", deploymentOrNone(result.Deployment))

	if result.Connected {
		fmt.Fprintln(r.out)
		line("Connected", passStyle.Sprintf("network %d", result.NetworkID))
		if result.Account != "" {
			line("Account", addressStyle.Sprint(result.Account))
		}
	}
	return nil
}

func deploymentOrNone(address string) string {
	if address == "" {
		return "(none)"
	}
	return address
}
