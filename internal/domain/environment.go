package domain

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// NetworkID identifies the network an environment must be connected to.
// AnyNetwork accepts whatever the endpoint reports.
type NetworkID uint64

const AnyNetwork NetworkID = 0

func (n NetworkID) String() string {
	if n == AnyNetwork {
		return "*"
	}
	return strconv.FormatUint(uint64(n), 10)
}

// ParseNetworkID accepts "*" or a non-zero decimal id.
func ParseNetworkID(s string) (NetworkID, error) {
	if s == "" || s == "*" {
		return AnyNetwork, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return AnyNetwork, fmt.Errorf("invalid network id %q: %w", s, err)
	}
	if id == 0 {
		return AnyNetwork, fmt.Errorf("invalid network id %q: use \"*\" to accept any network", s)
	}
	return NetworkID(id), nil
}

// Matches reports whether an endpoint reporting actual satisfies this id.
func (n NetworkID) Matches(actual uint64) bool {
	return n == AnyNetwork || uint64(n) == actual
}

// Endpoint is either a host/port pair or a URL. URL may contain ${VAR} placeholders
// until the registry resolves it.
type Endpoint struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
	URL  string `json:"url,omitempty"`
}

// RPCURL returns the URL to dial.
func (e Endpoint) RPCURL() string {
	if e.URL != "" {
		return e.URL
	}
	return "http://" + net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// CredentialSource names the environment variable that holds the signing secret.
// Empty means the environment is used unsigned.
type CredentialSource string

func (c CredentialSource) IsSet() bool { return c != "" }

// Connection is what a ProviderFactory hands back when an environment is dialed.
type Connection struct {
	NetworkID uint64
	Account   string // signer address, empty when unsigned
	Dialer    ContractDialer
}

// ContractDialer opens a handle to a deployed contract on an established connection.
type ContractDialer interface {
	Contract(address string) (ContractHandle, error)
	Close()
}

// ContractHandle invokes a read-only accessor and returns its canonical string form.
type ContractHandle interface {
	Call(ctx context.Context, accessor string) (string, error)
}

// ProviderFactory establishes a connection for a descriptor. It is only invoked when a
// connection is actually requested.
type ProviderFactory func(ctx context.Context, env EnvironmentDescriptor) (*Connection, error)

// EnvironmentDescriptor describes how to reach and authenticate against an environment.
type EnvironmentDescriptor struct {
	Name       string           `json:"name"`
	Endpoint   Endpoint         `json:"endpoint"`
	NetworkID  NetworkID        `json:"networkId"`
	GasLimit   uint64           `json:"gasLimit,omitempty"`
	Credential CredentialSource `json:"credential,omitempty"`
	// RequiredVars are secrets that must be present for the environment to resolve.
	RequiredVars []string `json:"requiredVars,omitempty"`
	Explorer     string   `json:"explorer,omitempty"`
	// EndpointOverride names the variable that replaced Endpoint, if any.
	EndpointOverride string `json:"endpointOverride,omitempty"`

	Provider ProviderFactory `json:"-"`
}

// Connect invokes the provider factory.
func (d EnvironmentDescriptor) Connect(ctx context.Context) (*Connection, error) {
	if d.Provider == nil {
		return nil, fmt.Errorf("environment '%s' has no provider", d.Name)
	}
	return d.Provider(ctx, d)
}
