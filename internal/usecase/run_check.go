package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

// RunCheckParams contains parameters for a verification run
type RunCheckParams struct {
	Network  string
	Address  string // overrides [deployments]
	Mode     domain.VerifyMode
	Expected []domain.ExpectedMetadata // defaults to the [token] table
}

// RunCheckResult contains the outcome of a verification run
type RunCheckResult struct {
	Result    *domain.VerificationResult
	NetworkID uint64
	Account   string
	RunID     int64 // 0 when history is disabled or could not be written
}

// RunCheck resolves an environment, connects to it and verifies the deployed token
type RunCheck struct {
	registry EnvironmentRegistry
	verifier *VerifyMetadata
	history  RunHistory
	metrics  MetricsRecorder
	selector InteractiveSelector
	progress ProgressSink
	cfg      *config.RuntimeConfig
	log      *slog.Logger
}

// NewRunCheck creates a new RunCheck use case
func NewRunCheck(
	registry EnvironmentRegistry,
	verifier *VerifyMetadata,
	history RunHistory,
	metrics MetricsRecorder,
	selector InteractiveSelector,
	progress ProgressSink,
	cfg *config.RuntimeConfig,
	log *slog.Logger,
) *RunCheck {
	return &RunCheck{
		registry: registry,
		verifier: verifier,
		history:  history,
		metrics:  metrics,
		selector: selector,
		progress: progress,
		cfg:      cfg,
		log:      log,
	}
}

// Run executes the use case. When verification itself fails the result is returned
// together with the error so callers can render it.
func (uc *RunCheck) Run(ctx context.Context, params RunCheckParams) (*RunCheckResult, error) {
	name := params.Network
	if name == "" {
		name = uc.cfg.Network
	}

	env, err := resolveWithSelection(ctx, uc.registry, uc.selector, uc.cfg, name)
	if err != nil {
		return nil, err
	}

	address := params.Address
	if address == "" {
		address = uc.cfg.File.Deployments[env.Name]
	}
	if address == "" {
		return nil, &domain.NoDeploymentError{Environment: env.Name}
	}

	expected := params.Expected
	if len(expected) == 0 {
		expected = uc.cfg.File.Token.Expectations()
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "connect",
		Message: fmt.Sprintf("Connecting to %s", env.Name),
		Spinner: true,
	})
	conn, err := env.Connect(ctx)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "done"})
	if err != nil {
		return nil, err
	}
	defer conn.Dialer.Close()

	handle, err := conn.Dialer.Contract(address)
	if err != nil {
		return nil, err
	}

	uc.log.Info("verifying token metadata",
		"environment", env.Name,
		"address", address,
		"checks", len(expected),
		"mode", params.Mode,
	)

	result, verifyErr := uc.verifier.Verify(ctx, handle, expected, params.Mode)
	result.Environment = env.Name
	result.Address = address

	out := &RunCheckResult{
		Result:    result,
		NetworkID: conn.NetworkID,
		Account:   conn.Account,
	}

	for _, check := range result.Checks {
		uc.metrics.ObserveCheck(env.Name, check)
	}
	if err := uc.metrics.Flush(); err != nil {
		uc.log.Warn("failed to write metrics", "error", err)
	}

	if !uc.cfg.NoHistory {
		id, err := uc.history.Record(ctx, result)
		if err != nil {
			uc.log.Warn("failed to record run", "error", err)
		}
		out.RunID = id
	}

	return out, verifyErr
}
