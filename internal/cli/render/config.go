package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintf(r.out, "Source:       %s\n", result.ConfigSource)
	fmt.Fprintf(r.out, "Project:      %s\n", result.ProjectRoot)
	fmt.Fprintf(r.out, "Network:      %s\n", result.Network)
	fmt.Fprintf(r.out, "Mode:         %s\n", result.Mode)
	fmt.Fprintf(r.out, "Call timeout: %s\n", result.CallTimeout)
	if result.RateLimit > 0 {
		fmt.Fprintf(r.out, "Rate limit:   %g calls/s\n", result.RateLimit)
	} else {
		fmt.Fprintf(r.out, "Rate limit:   unlimited\n")
	}
	fmt.Fprintf(r.out, "History:      %s\n", getRelativePath(result.HistoryPath))

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Compiler"))
	fmt.Fprintf(r.out, "  solc %s", result.Solc.Version)
	if result.Solc.Optimizer {
		fmt.Fprintf(r.out, " (optimizer, %d runs)", result.Solc.OptimizerRuns)
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Expected metadata"))
	for _, exp := range result.Expectations {
		fmt.Fprintf(r.out, "  %-10s %s\n", exp.Accessor+"()", exp.Expected)
	}

	if len(result.Deployments) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Deployments"))
		names := make([]string, 0, len(result.Deployments))
		for name := range result.Deployments {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(r.out, "  %-12s %s\n", name, result.Deployments[name])
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Explorer API keys"))
	for _, key := range result.APIKeys {
		value := labelStyle.Sprint("(not set)")
		if key.Masked != "" {
			value = key.Masked
		}
		fmt.Fprintf(r.out, "  %-12s %s\n", key.Explorer, value)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Secrets"))
	for _, secret := range result.Secrets {
		status := failStyle.Sprint("✗ not set")
		if secret.Set {
			status = passStyle.Sprint("✓ set")
		}
		fmt.Fprintf(r.out, "  %-18s %s\n", secret.Name, status)
	}

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	if result.RemovedValue == "" {
		fmt.Fprintf(r.out, "%s was not set\n", result.Key)
	} else {
		fmt.Fprintf(r.out, "✅ Removed %s (was: %s), the default applies again\n", result.Key, result.RemovedValue)
	}
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
