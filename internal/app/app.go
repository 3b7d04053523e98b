package app

import (
	"log/slog"

	"github.com/trebuchet-org/tokencheck/internal/domain/config"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	ListEnvironments   *usecase.ListEnvironments
	ResolveEnvironment *usecase.ResolveEnvironment
	RunCheck           *usecase.RunCheck
	ShowConfig         *usecase.ShowConfig
	ListHistory        *usecase.ListHistory
	SetConfig          *usecase.SetConfig
	RemoveConfig       *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	listEnvironments *usecase.ListEnvironments,
	resolveEnvironment *usecase.ResolveEnvironment,
	runCheck *usecase.RunCheck,
	showConfig *usecase.ShowConfig,
	listHistory *usecase.ListHistory,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) *App {
	return &App{
		Config:             cfg,
		Logger:             logger,
		ListEnvironments:   listEnvironments,
		ResolveEnvironment: resolveEnvironment,
		RunCheck:           runCheck,
		ShowConfig:         showConfig,
		ListHistory:        listHistory,
		SetConfig:          setConfig,
		RemoveConfig:       removeConfig,
	}
}
