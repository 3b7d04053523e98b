package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// NetworksRenderer renders environment lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// networkJSON is the --json shape of one environment
type networkJSON struct {
	domain.EnvironmentDescriptor
	Deployment  string `json:"deployment,omitempty"`
	ExplorerKey bool   `json:"explorerKey"`
	Ready       bool   `json:"ready"`
	Error       string `json:"error,omitempty"`
}

// RenderJSON renders the list as JSON
func (r *NetworksRenderer) RenderJSON(result *usecase.ListEnvironmentsResult) error {
	out := make([]networkJSON, 0, len(result.Environments))
	for _, env := range result.Environments {
		entry := networkJSON{
			EnvironmentDescriptor: env.Environment,
			Deployment:            env.Deployment,
			ExplorerKey:           env.ExplorerKey,
			Ready:                 env.Ready(),
		}
		if env.Error != nil {
			entry.Error = env.Error.Error()
		}
		out = append(out, entry)
	}
	return RenderJSON(r.out, out)
}

// RenderNetworksList renders the environments as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListEnvironmentsResult) error {
	if len(result.Environments) == 0 {
		fmt.Fprintln(r.out, "No environments configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Environments:")
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"", "NAME", "ENDPOINT", "NETWORK ID", "GAS", "CREDENTIAL", "EXPLORER", "DEPLOYMENT"})

	for _, env := range result.Environments {
		desc := env.Environment

		marker := " "
		if desc.Name == result.Current {
			marker = "*"
		}

		status := passStyle.Sprint("✅")
		if !env.Ready() {
			status = failStyle.Sprint("❌")
		}

		t.AppendRow(table.Row{
			marker + " " + status,
			r.style(color.New(color.Bold), desc.Name),
			endpointLabel(desc),
			desc.NetworkID.String(),
			gasLabel(desc.GasLimit),
			credentialLabel(desc),
			r.explorerLabel(desc.Explorer, env.ExplorerKey),
			deploymentLabel(env.Deployment),
		})
	}
	fmt.Fprintln(r.out, t.Render())

	var problems []usecase.EnvironmentStatus
	for _, env := range result.Environments {
		if !env.Ready() {
			problems = append(problems, env)
		}
	}
	if len(problems) > 0 {
		fmt.Fprintln(r.out)
		for _, env := range problems {
			fmt.Fprintln(r.out, FormatWarning(env.Error.Error()))
		}
	}

	return nil
}

func (r *NetworksRenderer) style(c *color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

func (r *NetworksRenderer) explorerLabel(explorer string, hasKey bool) string {
	if explorer == "" {
		return "-"
	}
	if hasKey {
		return explorer
	}
	return explorer + r.style(labelStyle, " (no key)")
}

// endpointLabel shows the configured endpoint; placeholders are kept so secrets never print.
func endpointLabel(desc domain.EnvironmentDescriptor) string {
	if desc.EndpointOverride != "" {
		return "$" + desc.EndpointOverride
	}
	if desc.Endpoint.URL != "" {
		return desc.Endpoint.URL
	}
	return desc.Endpoint.RPCURL()
}

func gasLabel(gas uint64) string {
	if gas == 0 {
		return "-"
	}
	return strconv.FormatUint(gas, 10)
}

func credentialLabel(desc domain.EnvironmentDescriptor) string {
	if !desc.Credential.IsSet() {
		return "none"
	}
	return "$" + string(desc.Credential)
}

func deploymentLabel(address string) string {
	if address == "" {
		return "-"
	}
	return shortenAddress(address)
}
