package usecase

import (
	"context"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

// ListEnvironmentsResult contains the result of listing environments
type ListEnvironmentsResult struct {
	Environments []EnvironmentStatus
	Current      string
}

// EnvironmentStatus represents one configured environment and whether it can be used
type EnvironmentStatus struct {
	Environment domain.EnvironmentDescriptor
	Deployment  string
	ExplorerKey bool
	Error       error // resolve error, e.g. a missing credential
}

// Ready reports whether the environment resolved
func (s EnvironmentStatus) Ready() bool { return s.Error == nil }

// ListEnvironments is a use case for listing configured environments
type ListEnvironments struct {
	registry EnvironmentRegistry
	cfg      *config.RuntimeConfig
}

// NewListEnvironments creates a new ListEnvironments use case
func NewListEnvironments(registry EnvironmentRegistry, cfg *config.RuntimeConfig) *ListEnvironments {
	return &ListEnvironments{
		registry: registry,
		cfg:      cfg,
	}
}

// Run executes the use case
func (uc *ListEnvironments) Run(ctx context.Context) (*ListEnvironmentsResult, error) {
	names := uc.registry.Names()

	envs := make([]EnvironmentStatus, 0, len(names))
	for _, name := range names {
		configured, _ := uc.registry.Lookup(name)
		status := EnvironmentStatus{
			Environment: configured,
			Deployment:  uc.cfg.File.Deployments[name],
		}

		resolved, err := uc.registry.Resolve(name)
		if err != nil {
			status.Error = err
		} else {
			status.Environment.EndpointOverride = resolved.EndpointOverride
		}

		if configured.Explorer != "" {
			_, status.ExplorerKey = uc.cfg.APIKeys.Lookup(configured.Explorer)
		}

		envs = append(envs, status)
	}

	return &ListEnvironmentsResult{
		Environments: envs,
		Current:      uc.cfg.Network,
	}, nil
}
