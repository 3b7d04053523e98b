package config

import (
	"path/filepath"
	"time"

	"github.com/trebuchet-org/tokencheck/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network string // selected environment name

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	CallTimeout    time.Duration
	RateLimit      float64 // accessor calls per second, 0 disables pacing

	// Verify command settings (only populated for relevant commands)
	Mode        domain.VerifyMode
	Address     string
	ExpectFile  string
	MetricsFile string
	NoHistory   bool

	// Config source tracking
	ConfigSource string // "tokencheck.toml" or "defaults"

	// Secrets read once from the process environment (and .env)
	Secrets Secrets

	// Explorer API keys with ${VAR} references expanded; unresolved keys are absent
	APIKeys Secrets

	// Resolved configuration
	File *FileConfig
}

// HistoryPath is where verification runs are recorded.
func (c *RuntimeConfig) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.db")
}
