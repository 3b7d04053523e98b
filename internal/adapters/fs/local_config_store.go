package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/tokencheck/internal/domain/config"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

const localConfigFile = "config.local.json"

// LocalConfigStoreAdapter keeps the settings written by `config set` in the data dir.
// Viper reads the same file at startup.
type LocalConfigStoreAdapter struct {
	path string
}

// NewLocalConfigStoreAdapter creates a new LocalConfigStoreAdapter
func NewLocalConfigStoreAdapter(cfg *config.RuntimeConfig) *LocalConfigStoreAdapter {
	return &LocalConfigStoreAdapter{path: filepath.Join(cfg.DataDir, localConfigFile)}
}

func (s *LocalConfigStoreAdapter) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load returns the persisted settings, or empty settings when none were saved yet.
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*config.LocalConfig, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &config.LocalConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read local settings %s: %w", s.path, err)
	}

	settings := &config.LocalConfig{}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("local settings %s are not valid JSON: %w", s.path, err)
	}
	return settings, nil
}

// Save replaces the settings file atomically.
func (s *LocalConfigStoreAdapter) Save(ctx context.Context, settings *config.LocalConfig) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create data dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode local settings: %w", err)
	}

	tmp, err := os.CreateTemp(dir, localConfigFile+".*")
	if err != nil {
		return fmt.Errorf("cannot save local settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cannot save local settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot save local settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("cannot save local settings: %w", err)
	}
	return nil
}

// GetPath returns the settings file path
func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.path
}

var _ usecase.LocalConfigStore = (*LocalConfigStoreAdapter)(nil)
