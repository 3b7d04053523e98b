package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

// ResolveEnvironmentParams contains parameters for resolving an environment
type ResolveEnvironmentParams struct {
	Name    string
	Connect bool // also dial the endpoint and report what it returns
}

// ResolveEnvironmentResult describes a resolved environment. Environment is the
// configured descriptor, safe to display; the expanded endpoint is never returned.
type ResolveEnvironmentResult struct {
	Environment domain.EnvironmentDescriptor `json:"environment"`
	Deployment  string                       `json:"deployment,omitempty"`
	ExplorerKey bool                         `json:"explorerKey"`

	Connected bool   `json:"connected"`
	NetworkID uint64 `json:"networkId,omitempty"`
	Account   string `json:"account,omitempty"`
}

// ResolveEnvironment is a use case for looking up a single environment
type ResolveEnvironment struct {
	registry EnvironmentRegistry
	selector InteractiveSelector
	cfg      *config.RuntimeConfig
	log      *slog.Logger
}

// NewResolveEnvironment creates a new ResolveEnvironment use case
func NewResolveEnvironment(
	registry EnvironmentRegistry,
	selector InteractiveSelector,
	cfg *config.RuntimeConfig,
	log *slog.Logger,
) *ResolveEnvironment {
	return &ResolveEnvironment{
		registry: registry,
		selector: selector,
		cfg:      cfg,
		log:      log,
	}
}

// Run executes the use case
func (uc *ResolveEnvironment) Run(ctx context.Context, params ResolveEnvironmentParams) (*ResolveEnvironmentResult, error) {
	name := params.Name
	if name == "" {
		name = uc.cfg.Network
	}

	desc, err := resolveWithSelection(ctx, uc.registry, uc.selector, uc.cfg, name)
	if err != nil {
		return nil, err
	}

	configured, _ := uc.registry.Lookup(desc.Name)
	configured.EndpointOverride = desc.EndpointOverride
	result := &ResolveEnvironmentResult{
		Environment: configured,
		Deployment:  uc.cfg.File.Deployments[desc.Name],
	}
	if desc.Explorer != "" {
		_, result.ExplorerKey = uc.cfg.APIKeys.Lookup(desc.Explorer)
	}

	if !params.Connect {
		return result, nil
	}

	conn, err := desc.Connect(ctx)
	if err != nil {
		return result, err
	}
	conn.Dialer.Close()

	result.Connected = true
	result.NetworkID = conn.NetworkID
	result.Account = conn.Account
	return result, nil
}

// resolveWithSelection resolves name and, when it is unknown and a terminal is
// available, lets the operator pick from the suggestions.
func resolveWithSelection(
	ctx context.Context,
	registry EnvironmentRegistry,
	selector InteractiveSelector,
	cfg *config.RuntimeConfig,
	name string,
) (domain.EnvironmentDescriptor, error) {
	desc, err := registry.Resolve(name)
	if err == nil {
		return desc, nil
	}

	var unknown *domain.UnknownEnvironmentError
	if !errors.As(err, &unknown) || len(unknown.Suggestions) == 0 || cfg.NonInteractive || cfg.JSON {
		return domain.EnvironmentDescriptor{}, err
	}

	choice, selErr := selector.SelectEnvironment(ctx, unknown.Suggestions)
	if selErr != nil {
		return domain.EnvironmentDescriptor{}, err
	}
	return registry.Resolve(choice)
}
