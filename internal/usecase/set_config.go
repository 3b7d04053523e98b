package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	store    LocalConfigStore
	registry EnvironmentRegistry
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigStore, registry EnvironmentRegistry) *SetConfig {
	return &SetConfig{
		store:    store,
		registry: registry,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, ok := config.NormalizeConfigKey(params.Key)
	if !ok {
		return nil, unknownKeyError(params.Key)
	}

	value := strings.TrimSpace(params.Value)
	if err := uc.validate(key, value); err != nil {
		return nil, err
	}

	localConfig, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	localConfig.Set(key, value)

	if err := uc.store.Save(ctx, localConfig); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: localConfig,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         value,
	}, nil
}

func (uc *SetConfig) validate(key config.ConfigKey, value string) error {
	switch key {
	case config.ConfigKeyNetwork:
		if _, ok := uc.registry.Lookup(value); !ok {
			return &domain.UnknownEnvironmentError{Name: value}
		}
	case config.ConfigKeyMode:
		if _, err := domain.ParseVerifyMode(value); err != nil || value == "" {
			return fmt.Errorf("invalid mode %q (want %s or %s)", value, domain.ModeFailFast, domain.ModeCollectAll)
		}
	case config.ConfigKeyCallTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid call timeout %q: must be a positive duration like 10s", value)
		}
	case config.ConfigKeyRateLimit:
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil || rps < 0 {
			return fmt.Errorf("invalid rate limit %q: must be calls per second, 0 disables pacing", value)
		}
	}
	return nil
}

func unknownKeyError(key string) error {
	valid := make([]string, 0, len(config.ValidConfigKeys()))
	for _, k := range config.ValidConfigKeys() {
		valid = append(valid, string(k))
	}
	return fmt.Errorf("unknown config key: %s\nAvailable keys: %s", key, strings.Join(valid, ", "))
}
