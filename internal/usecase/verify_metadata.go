package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

// VerifyMetadata compares a deployed contract's read-only accessors against expected
// literals. Calls are issued sequentially, each bounded by the configured timeout.
type VerifyMetadata struct {
	callTimeout time.Duration
	progress    ProgressSink
	log         *slog.Logger
}

// NewVerifyMetadata creates a new metadata verifier
func NewVerifyMetadata(cfg *config.RuntimeConfig, progress ProgressSink, log *slog.Logger) *VerifyMetadata {
	return &VerifyMetadata{
		callTimeout: cfg.CallTimeout,
		progress:    progress,
		log:         log,
	}
}

// Verify runs every expectation against handle. In fail-fast mode the first divergence
// stops the run and is returned as *domain.MetadataMismatchError (or the transport
// error that caused it); remaining checks are marked skipped. In collect-all mode every
// check runs and all failures are returned joined.
//
// The result is always returned, even alongside an error.
func (v *VerifyMetadata) Verify(
	ctx context.Context,
	handle domain.ContractHandle,
	expected []domain.ExpectedMetadata,
	mode domain.VerifyMode,
) (*domain.VerificationResult, error) {
	if mode == "" {
		mode = domain.ModeCollectAll
	}

	result := &domain.VerificationResult{
		Mode:      mode,
		Checks:    make([]domain.CheckResult, 0, len(expected)),
		StartedAt: time.Now(),
	}
	defer func() { result.Duration = time.Since(result.StartedAt) }()

	var errs []error
	for i, exp := range expected {
		v.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "verify",
			Current: i + 1,
			Total:   len(expected),
			Message: fmt.Sprintf("Checking %s()", exp.Accessor),
			Spinner: true,
		})

		check := v.check(ctx, handle, exp)
		result.Checks = append(result.Checks, check)

		v.log.Debug("accessor checked",
			"accessor", check.Accessor,
			"status", check.Status,
			"duration", check.Duration,
		)

		if check.Err == nil {
			continue
		}
		errs = append(errs, check.Err)

		if mode == domain.ModeFailFast {
			for _, rest := range expected[i+1:] {
				result.Checks = append(result.Checks, domain.CheckResult{
					Accessor: rest.Accessor,
					Expected: rest.Expected,
					Status:   domain.CheckSkipped,
				})
			}
			v.progress.OnProgress(ctx, ProgressEvent{Stage: "done"})
			return result, check.Err
		}
	}

	v.progress.OnProgress(ctx, ProgressEvent{Stage: "done"})
	return result, errors.Join(errs...)
}

// check performs a single accessor call under its own deadline.
func (v *VerifyMetadata) check(ctx context.Context, handle domain.ContractHandle, exp domain.ExpectedMetadata) domain.CheckResult {
	check := domain.CheckResult{
		Accessor: exp.Accessor,
		Expected: exp.Expected,
	}

	callCtx, cancel := context.WithTimeout(ctx, v.callTimeout)
	defer cancel()

	start := time.Now()
	actual, err := handle.Call(callCtx, exp.Accessor)
	check.Duration = time.Since(start)

	switch {
	case err != nil && ctx.Err() == nil &&
		(errors.Is(callCtx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded)):
		check.Status = domain.CheckErrored
		check.Err = &domain.TransportTimeoutError{Accessor: exp.Accessor, Timeout: v.callTimeout}
	case err != nil:
		check.Status = domain.CheckErrored
		check.Err = fmt.Errorf("%s(): %w", exp.Accessor, err)
	case actual != exp.Expected:
		check.Actual = actual
		check.Status = domain.CheckFailed
		check.Err = &domain.MetadataMismatchError{
			Accessor: exp.Accessor,
			Expected: exp.Expected,
			Actual:   actual,
		}
	default:
		check.Actual = actual
		check.Status = domain.CheckPassed
	}

	if check.Err != nil {
		check.Message = check.Err.Error()
	}
	return check
}
