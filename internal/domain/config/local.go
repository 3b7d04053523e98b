package config

import "strings"

// LocalConfig holds per-checkout defaults stored in .tokencheck/config.local.json.
// Keys match the viper setting names so the file is read back as a config source.
type LocalConfig struct {
	Network     string `json:"network,omitempty"`
	Mode        string `json:"mode,omitempty"`
	CallTimeout string `json:"call_timeout,omitempty"`
	RateLimit   string `json:"rate_limit,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork     ConfigKey = "network"
	ConfigKeyMode        ConfigKey = "mode"
	ConfigKeyCallTimeout ConfigKey = "call_timeout"
	ConfigKeyRateLimit   ConfigKey = "rate_limit"
)

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyMode,
		ConfigKeyCallTimeout,
		ConfigKeyRateLimit,
	}
}

// NormalizeConfigKey accepts dashed spellings ("call-timeout") and the "net" alias.
// It returns false for unknown keys.
func NormalizeConfigKey(key string) (ConfigKey, bool) {
	k := ConfigKey(strings.ReplaceAll(strings.ToLower(key), "-", "_"))
	if k == "net" {
		return ConfigKeyNetwork, true
	}
	for _, valid := range ValidConfigKeys() {
		if valid == k {
			return k, true
		}
	}
	return "", false
}

// Get returns the stored value for key.
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeyNetwork:
		return c.Network
	case ConfigKeyMode:
		return c.Mode
	case ConfigKeyCallTimeout:
		return c.CallTimeout
	case ConfigKeyRateLimit:
		return c.RateLimit
	}
	return ""
}

// Set stores value under key; an empty value clears it.
func (c *LocalConfig) Set(key ConfigKey, value string) {
	switch key {
	case ConfigKeyNetwork:
		c.Network = value
	case ConfigKeyMode:
		c.Mode = value
	case ConfigKeyCallTimeout:
		c.CallTimeout = value
	case ConfigKeyRateLimit:
		c.RateLimit = value
	}
}
