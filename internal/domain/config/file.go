package config

import (
	"fmt"
	"strconv"

	"github.com/trebuchet-org/tokencheck/internal/domain"
)

// FileConfig represents tokencheck.toml
type FileConfig struct {
	Compilers   CompilersConfig          `toml:"compilers"`
	Token       TokenConfig              `toml:"token"`
	Deployments map[string]string        `toml:"deployments"`
	Networks    map[string]NetworkConfig `toml:"networks"`
	APIKeys     map[string]string        `toml:"api_keys"`
}

type CompilersConfig struct {
	Solc SolcConfig `toml:"solc"`
}

// SolcConfig records the compiler the token was built with. The toolchain itself is external.
type SolcConfig struct {
	Version       string `toml:"version"`
	Docker        bool   `toml:"docker,omitempty"`
	Optimizer     bool   `toml:"optimizer,omitempty"`
	OptimizerRuns int    `toml:"optimizer_runs,omitempty"`
	EVMVersion    string `toml:"evm_version,omitempty"`
}

// TokenConfig holds the expected accessor values.
type TokenConfig struct {
	Name     Literal `toml:"name"`
	Symbol   Literal `toml:"symbol"`
	Decimals Literal `toml:"decimals"`
}

// Expectations returns the name/symbol/decimals checks, in that order.
func (t TokenConfig) Expectations() []domain.ExpectedMetadata {
	return []domain.ExpectedMetadata{
		{Accessor: domain.AccessorName, Expected: t.Name.String()},
		{Accessor: domain.AccessorSymbol, Expected: t.Symbol.String()},
		{Accessor: domain.AccessorDecimals, Expected: t.Decimals.String()},
	}
}

// NetworkConfig is one [networks.<name>] table.
type NetworkConfig struct {
	Host       string  `toml:"host,omitempty"`
	Port       int     `toml:"port,omitempty"`
	URL        string  `toml:"url,omitempty"`
	NetworkID  Literal `toml:"network_id"`
	Gas        uint64  `toml:"gas,omitempty"`
	Credential string  `toml:"credential,omitempty"`
	Explorer   string  `toml:"explorer,omitempty"`
}

// Literal decodes from a TOML string or integer, so `decimals = 18` and
// `network_id = "*"` both work.
type Literal string

func (l *Literal) UnmarshalTOML(v interface{}) error {
	switch val := v.(type) {
	case string:
		*l = Literal(val)
	case int64:
		*l = Literal(strconv.FormatInt(val, 10))
	default:
		return fmt.Errorf("expected string or integer, got %T", v)
	}
	return nil
}

func (l Literal) String() string { return string(l) }
