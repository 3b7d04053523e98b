package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

// ShowConfigResult contains the effective configuration. Secrets are reported by
// presence only; API keys are masked.
type ShowConfigResult struct {
	ProjectRoot  string            `json:"projectRoot"`
	ConfigSource string            `json:"configSource"`
	Network      string            `json:"network"`
	Mode         domain.VerifyMode `json:"mode"`
	CallTimeout  time.Duration     `json:"callTimeout"`
	RateLimit    float64           `json:"rateLimit"`
	HistoryPath  string            `json:"historyPath"`

	Solc         config.SolcConfig         `json:"solc"`
	Expectations []domain.ExpectedMetadata `json:"expectations"`
	Deployments  map[string]string         `json:"deployments,omitempty"`
	APIKeys      []APIKeyStatus            `json:"apiKeys"`
	Secrets      []SecretStatus            `json:"secrets"`
}

type APIKeyStatus struct {
	Explorer string `json:"explorer"`
	Masked   string `json:"masked,omitempty"` // empty when not configured
}

type SecretStatus struct {
	Name string `json:"name"`
	Set  bool   `json:"set"`
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{cfg: cfg}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	cfg := uc.cfg
	result := &ShowConfigResult{
		ProjectRoot:  cfg.ProjectRoot,
		ConfigSource: cfg.ConfigSource,
		Network:      cfg.Network,
		Mode:         cfg.Mode,
		CallTimeout:  cfg.CallTimeout,
		RateLimit:    cfg.RateLimit,
		HistoryPath:  cfg.HistoryPath(),
		Solc:         cfg.File.Compilers.Solc,
		Expectations: cfg.File.Token.Expectations(),
		Deployments:  cfg.File.Deployments,
	}

	for explorer := range cfg.File.APIKeys {
		status := APIKeyStatus{Explorer: explorer}
		if key, ok := cfg.APIKeys.Lookup(explorer); ok {
			status.Masked = key.Masked()
		}
		result.APIKeys = append(result.APIKeys, status)
	}
	sort.Slice(result.APIKeys, func(i, j int) bool {
		return result.APIKeys[i].Explorer < result.APIKeys[j].Explorer
	})

	for _, name := range []string{
		config.EnvMnemonic,
		config.EnvInfuraProjectID,
		config.EnvEtherscanAPIKey,
		config.EnvSnowtraceAPIKey,
	} {
		_, set := cfg.Secrets.Lookup(name)
		result.Secrets = append(result.Secrets, SecretStatus{Name: name, Set: set})
	}

	return result, nil
}
