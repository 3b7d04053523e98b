package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockRegistry serves fixed descriptors; names in missing fail with a missing credential.
type mockRegistry struct {
	envs    map[string]domain.EnvironmentDescriptor
	missing map[string]string
}

func (m *mockRegistry) Resolve(name string) (domain.EnvironmentDescriptor, error) {
	desc, ok := m.envs[name]
	if !ok {
		var suggestions []string
		for n := range m.envs {
			if len(name) > 0 && len(n) >= len(name) && n[:len(name)] == name {
				suggestions = append(suggestions, n)
			}
		}
		return domain.EnvironmentDescriptor{}, &domain.UnknownEnvironmentError{Name: name, Suggestions: suggestions}
	}
	if v, ok := m.missing[name]; ok {
		return domain.EnvironmentDescriptor{}, &domain.MissingCredentialError{Environment: name, Variable: v}
	}
	return desc, nil
}

func (m *mockRegistry) Lookup(name string) (domain.EnvironmentDescriptor, bool) {
	desc, ok := m.envs[name]
	desc.Provider = nil
	return desc, ok
}

func (m *mockRegistry) Names() []string {
	names := make([]string, 0, len(m.envs))
	for n := range m.envs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// mockDialer hands out one handle for every address.
type mockDialer struct {
	handle    domain.ContractHandle
	addresses []string
	closed    bool
}

func (d *mockDialer) Contract(address string) (domain.ContractHandle, error) {
	d.addresses = append(d.addresses, address)
	return d.handle, nil
}

func (d *mockDialer) Close() { d.closed = true }

func providerFor(dialer *mockDialer, networkID uint64, account string) domain.ProviderFactory {
	return func(ctx context.Context, env domain.EnvironmentDescriptor) (*domain.Connection, error) {
		return &domain.Connection{NetworkID: networkID, Account: account, Dialer: dialer}, nil
	}
}

type mockHistory struct {
	recorded []*domain.VerificationResult
	entries  []HistoryEntry
	err      error
}

func (h *mockHistory) Record(ctx context.Context, result *domain.VerificationResult) (int64, error) {
	if h.err != nil {
		return 0, h.err
	}
	h.recorded = append(h.recorded, result)
	return int64(len(h.recorded)), nil
}

func (h *mockHistory) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if h.err != nil {
		return nil, h.err
	}
	if limit < len(h.entries) {
		return h.entries[:limit], nil
	}
	return h.entries, nil
}

type mockMetrics struct {
	observed []domain.CheckResult
	flushed  int
}

func (m *mockMetrics) ObserveCheck(environment string, check domain.CheckResult) {
	m.observed = append(m.observed, check)
}

func (m *mockMetrics) Flush() error {
	m.flushed++
	return nil
}

type mockSelector struct {
	choice  string
	offered []string
}

func (s *mockSelector) SelectEnvironment(ctx context.Context, names []string) (string, error) {
	s.offered = names
	return s.choice, nil
}

// mockLocalConfigStore keeps the local config in memory.
type mockLocalConfigStore struct {
	cfg     *config.LocalConfig
	saves   int
	saveErr error
}

func (s *mockLocalConfigStore) Exists() bool { return s.cfg != nil }

func (s *mockLocalConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	if s.cfg == nil {
		return &config.LocalConfig{}, nil
	}
	c := *s.cfg
	return &c, nil
}

func (s *mockLocalConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	c := *cfg
	s.cfg = &c
	s.saves++
	return nil
}

func (s *mockLocalConfigStore) GetPath() string { return "/project/.tokencheck/config.local.json" }
