package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/tokencheck/internal/adapters/blockchain"
	"github.com/trebuchet-org/tokencheck/internal/adapters/fs"
	"github.com/trebuchet-org/tokencheck/internal/adapters/history"
	"github.com/trebuchet-org/tokencheck/internal/adapters/interactive"
	"github.com/trebuchet-org/tokencheck/internal/adapters/metrics"
	"github.com/trebuchet-org/tokencheck/internal/adapters/network"
	"github.com/trebuchet-org/tokencheck/internal/adapters/signer"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/usecase"
)

// ProvideProviderFactory exposes the connector as the factory attached to descriptors
func ProvideProviderFactory(c *blockchain.Connector) domain.ProviderFactory {
	return c.Connect
}

// NetworkSet provides the environment registry
var NetworkSet = wire.NewSet(
	network.NewRegistry,
	wire.Bind(new(usecase.EnvironmentRegistry), new(*network.Registry)),
)

// BlockchainSet provides JSON-RPC connections and key derivation
var BlockchainSet = wire.NewSet(
	signer.NewHDWallet,
	blockchain.NewConnector,
	ProvideProviderFactory,
)

// HistorySet provides the sqlite run history
var HistorySet = wire.NewSet(
	history.NewSQLiteStore,
	wire.Bind(new(usecase.RunHistory), new(*history.SQLiteStore)),
)

// MetricsSet provides the metrics recorder
var MetricsSet = wire.NewSet(
	metrics.NewTextfileRecorder,
	wire.Bind(new(usecase.MetricsRecorder), new(*metrics.TextfileRecorder)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),
)

// FSSet provides file system implementations
var FSSet = wire.NewSet(
	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	NetworkSet,
	BlockchainSet,
	HistorySet,
	MetricsSet,
	InteractiveSet,
	FSSet,
)
