package usecase

import (
	"context"
	"time"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

// EnvironmentRegistry resolves environment names to immutable descriptors
type EnvironmentRegistry interface {
	Resolve(name string) (domain.EnvironmentDescriptor, error)
	// Lookup returns the configured descriptor without checking credentials or
	// expanding the endpoint.
	Lookup(name string) (domain.EnvironmentDescriptor, bool)
	Names() []string
}

// RunHistory persists verification runs
type RunHistory interface {
	Record(ctx context.Context, result *domain.VerificationResult) (int64, error)
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
}

// HistoryEntry is a summary row of a recorded run
type HistoryEntry struct {
	ID          int64             `json:"id"`
	Environment string            `json:"environment"`
	Address     string            `json:"address"`
	Mode        domain.VerifyMode `json:"mode"`
	Passed      int               `json:"passed"`
	Failed      int               `json:"failed"`
	Errored     int               `json:"errored"`
	Skipped     int               `json:"skipped"`
	StartedAt   time.Time         `json:"startedAt"`
	Duration    time.Duration     `json:"duration"`
}

// MetricsRecorder observes individual checks
type MetricsRecorder interface {
	ObserveCheck(environment string, check domain.CheckResult)
	Flush() error
}

// InteractiveSelector lets the operator pick an environment
type InteractiveSelector interface {
	SelectEnvironment(ctx context.Context, names []string) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// NopMetrics discards observations
type NopMetrics struct{}

func (NopMetrics) ObserveCheck(string, domain.CheckResult) {}
func (NopMetrics) Flush() error                            { return nil }

// LocalConfigStore manages local configuration persistence
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}
