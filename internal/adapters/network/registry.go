package network

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	internalconfig "github.com/trebuchet-org/tokencheck/internal/config"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

const maxSuggestions = 3

// Registry resolves environment names against the configured networks. Descriptors are
// built once at construction; Resolve never touches the network.
type Registry struct {
	descriptors map[string]domain.EnvironmentDescriptor
	names       []string
	secrets     config.Secrets
	provider    domain.ProviderFactory
	log         *slog.Logger
}

// NewRegistry builds the registry from the resolved file configuration
func NewRegistry(cfg *config.RuntimeConfig, provider domain.ProviderFactory, log *slog.Logger) (*Registry, error) {
	r := &Registry{
		descriptors: make(map[string]domain.EnvironmentDescriptor, len(cfg.File.Networks)),
		secrets:     cfg.Secrets,
		provider:    provider,
		log:         log,
	}

	for name, network := range cfg.File.Networks {
		desc, err := describe(name, network)
		if err != nil {
			return nil, err
		}
		r.descriptors[name] = desc
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	return r, nil
}

// describe converts a [networks.<name>] table into an unexpanded descriptor.
func describe(name string, network config.NetworkConfig) (domain.EnvironmentDescriptor, error) {
	if network.URL == "" && network.Host == "" {
		return domain.EnvironmentDescriptor{}, fmt.Errorf("network '%s' has neither url nor host", name)
	}

	id, err := domain.ParseNetworkID(network.NetworkID.String())
	if err != nil {
		return domain.EnvironmentDescriptor{}, fmt.Errorf("network '%s': %w", name, err)
	}

	var required []string
	if network.Credential != "" {
		required = append(required, network.Credential)
	}
	for _, v := range internalconfig.ReferencedVars(network.URL) {
		if v != network.Credential {
			required = append(required, v)
		}
	}

	return domain.EnvironmentDescriptor{
		Name: name,
		Endpoint: domain.Endpoint{
			Host: network.Host,
			Port: network.Port,
			URL:  network.URL,
		},
		NetworkID:    id,
		GasLimit:     network.Gas,
		Credential:   domain.CredentialSource(network.Credential),
		RequiredVars: required,
		Explorer:     network.Explorer,
	}, nil
}

// Names returns every configured environment name, sorted
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Lookup returns the configured descriptor with placeholders intact and no provider
// attached. It does not check credentials.
func (r *Registry) Lookup(name string) (domain.EnvironmentDescriptor, bool) {
	desc, ok := r.find(name)
	return desc, ok
}

// Resolve returns a descriptor ready to connect. Every required variable must be
// present; the endpoint is expanded and a <NAME>_RPC_URL override, if set, replaces it.
func (r *Registry) Resolve(name string) (domain.EnvironmentDescriptor, error) {
	desc, ok := r.find(name)
	if !ok {
		return domain.EnvironmentDescriptor{}, &domain.UnknownEnvironmentError{
			Name:        name,
			Suggestions: r.suggest(name),
		}
	}

	overrideVar := internalconfig.GenerateEnvVarName(desc.Name)
	override, hasOverride := r.secrets.Lookup(overrideVar)
	if hasOverride {
		desc.Endpoint = domain.Endpoint{URL: override.Reveal()}
		desc.EndpointOverride = overrideVar
		desc.RequiredVars = nil
		if desc.Credential.IsSet() {
			desc.RequiredVars = []string{string(desc.Credential)}
		}
	}

	for _, v := range desc.RequiredVars {
		if _, ok := r.secrets.Lookup(v); !ok {
			return domain.EnvironmentDescriptor{}, &domain.MissingCredentialError{
				Environment: desc.Name,
				Variable:    v,
			}
		}
	}

	if desc.Endpoint.URL != "" {
		expanded, missing := internalconfig.ExpandEnvVars(desc.Endpoint.URL, r.secrets.Values())
		if len(missing) > 0 {
			return domain.EnvironmentDescriptor{}, &domain.MissingCredentialError{
				Environment: desc.Name,
				Variable:    missing[0],
			}
		}
		desc.Endpoint.URL = expanded
	}

	desc.Provider = r.provider

	r.log.Debug("resolved environment",
		"environment", desc.Name,
		"network_id", desc.NetworkID,
		"override", hasOverride,
	)
	return desc, nil
}

// find returns a copy of the named descriptor; callers may modify it freely.
func (r *Registry) find(name string) (domain.EnvironmentDescriptor, bool) {
	desc, ok := r.descriptors[name]
	if !ok {
		for _, n := range r.names {
			if strings.EqualFold(n, name) {
				desc, ok = r.descriptors[n], true
				break
			}
		}
	}
	if !ok {
		return domain.EnvironmentDescriptor{}, false
	}
	desc.RequiredVars = slices.Clone(desc.RequiredVars)
	return desc, true
}

func (r *Registry) suggest(name string) []string {
	if name == "" {
		return nil
	}
	var out []string
	for _, m := range fuzzy.Find(strings.ToLower(name), r.names) {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

var _ usecase.EnvironmentRegistry = (*Registry)(nil)
