package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/tokencheck/internal/adapters/signer"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
	"golang.org/x/time/rate"
)

// Connector dials environments over JSON-RPC. It is the ProviderFactory behind every
// resolved descriptor.
type Connector struct {
	wallet      *signer.HDWallet
	secrets     config.Secrets
	dialTimeout time.Duration
	rateLimit   rate.Limit
	log         *slog.Logger
}

// NewConnector creates a new JSON-RPC connector
func NewConnector(cfg *config.RuntimeConfig, wallet *signer.HDWallet, log *slog.Logger) *Connector {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	return &Connector{
		wallet:      wallet,
		secrets:     cfg.Secrets,
		dialTimeout: cfg.CallTimeout,
		rateLimit:   limit,
		log:         log,
	}
}

// Connect derives the signer, dials the endpoint and checks the reported network id.
func (c *Connector) Connect(ctx context.Context, env domain.EnvironmentDescriptor) (*domain.Connection, error) {
	var from common.Address
	conn := &domain.Connection{}

	if env.Credential.IsSet() {
		secret, ok := c.secrets.Lookup(string(env.Credential))
		if !ok {
			return nil, &domain.MissingCredentialError{Environment: env.Name, Variable: string(env.Credential)}
		}
		account, err := c.wallet.Derive(secret)
		if err != nil {
			return nil, fmt.Errorf("environment '%s': %w", env.Name, err)
		}
		from = account.Address
		conn.Account = from.Hex()
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, env.Endpoint.RPCURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to '%s': %w", env.Name, c.redact(err))
	}

	id, err := client.NetworkID(dialCtx)
	if err != nil {
		client.Close()
		if errors.Is(dialCtx.Err(), context.DeadlineExceeded) {
			return nil, &domain.TransportTimeoutError{Accessor: "net_version", Timeout: c.dialTimeout}
		}
		return nil, fmt.Errorf("failed to get network id from '%s': %w", env.Name, c.redact(err))
	}
	if !env.NetworkID.Matches(id.Uint64()) {
		client.Close()
		return nil, &domain.NetworkMismatchError{
			Environment: env.Name,
			Expected:    env.NetworkID,
			Actual:      id.Uint64(),
		}
	}
	conn.NetworkID = id.Uint64()

	c.log.Debug("connected",
		"environment", env.Name,
		"network_id", conn.NetworkID,
		"account", conn.Account,
	)

	conn.Dialer = &session{
		client:  client,
		from:    from,
		gas:     env.GasLimit,
		limiter: rate.NewLimiter(c.rateLimit, 1),
		redact:  c.redact,
	}
	return conn, nil
}

// redact scrubs secret values from transport errors; RPC URLs carry project ids.
func (c *Connector) redact(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	scrubbed := msg
	for _, name := range c.secrets.Names() {
		secret, _ := c.secrets.Lookup(name)
		if v := secret.Reveal(); len(v) >= 4 {
			scrubbed = strings.ReplaceAll(scrubbed, v, "[redacted]")
		}
	}
	if scrubbed == msg {
		return err
	}
	return &redactedError{msg: scrubbed, err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

// session is an established connection to one environment.
type session struct {
	client  *ethclient.Client
	from    common.Address
	gas     uint64
	limiter *rate.Limiter
	redact  func(error) error
}

// Contract returns a handle for the token at address.
func (s *session) Contract(address string) (domain.ContractHandle, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid contract address %q", address)
	}
	return &tokenHandle{session: s, address: common.HexToAddress(address)}, nil
}

func (s *session) Close() {
	s.client.Close()
}

var _ domain.ProviderFactory = (*Connector)(nil).Connect
