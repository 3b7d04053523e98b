//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/tokencheck/internal/adapters"
	"github.com/trebuchet-org/tokencheck/internal/config"
	"github.com/trebuchet-org/tokencheck/internal/logging"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewVerifyMetadata,
		usecase.NewListEnvironments,
		usecase.NewResolveEnvironment,
		usecase.NewRunCheck,
		usecase.NewShowConfig,
		usecase.NewListHistory,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil, nil
}
