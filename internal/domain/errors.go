package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for domain operations
var (
	// ErrUnknownEnvironment is returned when an environment name is not registered
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrMissingCredential is returned when a secret required by an environment is absent
	ErrMissingCredential = errors.New("missing credential")

	// ErrTransportTimeout is returned when an accessor call did not complete in time
	ErrTransportTimeout = errors.New("transport timeout")

	// ErrMetadataMismatch is returned when an accessor value diverges from its expectation
	ErrMetadataMismatch = errors.New("metadata mismatch")

	// ErrNoDeployment is returned when no contract address is known for an environment
	ErrNoDeployment = errors.New("no deployment")

	// ErrNetworkMismatch is returned when an endpoint reports a different network id
	ErrNetworkMismatch = errors.New("network mismatch")
)

type UnknownEnvironmentError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownEnvironmentError) Error() string {
	msg := fmt.Sprintf("environment '%s' is not configured", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownEnvironmentError) Unwrap() error { return ErrUnknownEnvironment }

// MissingCredentialError names the variable that is absent. It never carries the value.
type MissingCredentialError struct {
	Environment string
	Variable    string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("environment '%s' requires %s to be set", e.Environment, e.Variable)
}

func (e *MissingCredentialError) Unwrap() error { return ErrMissingCredential }

type TransportTimeoutError struct {
	Accessor string
	Timeout  time.Duration
}

func (e *TransportTimeoutError) Error() string {
	return fmt.Sprintf("%s() did not complete within %s", e.Accessor, e.Timeout)
}

func (e *TransportTimeoutError) Unwrap() error { return ErrTransportTimeout }

type MetadataMismatchError struct {
	Accessor string
	Expected string
	Actual   string
}

func (e *MetadataMismatchError) Error() string {
	return fmt.Sprintf("%s() returned %q, expected %q", e.Accessor, e.Actual, e.Expected)
}

func (e *MetadataMismatchError) Unwrap() error { return ErrMetadataMismatch }

type NoDeploymentError struct {
	Environment string
}

func (e *NoDeploymentError) Error() string {
	return fmt.Sprintf("no contract address configured for environment '%s' (set [deployments] in tokencheck.toml or pass --address)", e.Environment)
}

func (e *NoDeploymentError) Unwrap() error { return ErrNoDeployment }

type NetworkMismatchError struct {
	Environment string
	Expected    NetworkID
	Actual      uint64
}

func (e *NetworkMismatchError) Error() string {
	return fmt.Sprintf("network id mismatch for '%s': expected %s, endpoint reports %d", e.Environment, e.Expected, e.Actual)
}

func (e *NetworkMismatchError) Unwrap() error { return ErrNetworkMismatch }
