package config

import (
	"log/slog"
	"sort"
)

// Well-known secret variables.
const (
	EnvMnemonic        = "MNEMONIC"
	EnvInfuraProjectID = "INFURA_PROJECT_ID"
	EnvEtherscanAPIKey = "ETHERSCAN_API_KEY"
	EnvSnowtraceAPIKey = "SNOWTRACE_API_KEY"
)

const redacted = "[redacted]"

// Secret never renders its value through fmt or slog.
type Secret string

func (s Secret) String() string   { return redacted }
func (s Secret) GoString() string { return redacted }

func (s Secret) LogValue() slog.Value { return slog.StringValue(redacted) }

// Reveal returns the raw value. Only provider factories should call it.
func (s Secret) Reveal() string { return string(s) }

// Masked shows the last four characters, for operator display of API keys.
func (s Secret) Masked() string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + string(s[len(s)-4:])
}

// Secrets maps environment variable names to their values.
type Secrets map[string]Secret

// Lookup returns the secret and whether it is present and non-empty.
func (s Secrets) Lookup(name string) (Secret, bool) {
	v, ok := s[name]
	return v, ok && v != ""
}

// Values exposes raw values for ${VAR} expansion.
func (s Secrets) Values() map[string]string {
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[k] = string(v)
	}
	return out
}

// Names returns the names of present secrets, sorted.
func (s Secrets) Names() []string {
	names := make([]string, 0, len(s))
	for k, v := range s {
		if v != "" {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
