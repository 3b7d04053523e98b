package config

import (
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

const (
	DefaultNetwork     = "development"
	DefaultSolcVersion = "0.8.9"

	DefaultTokenName     = "BobCoin"
	DefaultTokenSymbol   = "BC"
	DefaultTokenDecimals = "18"

	defaultGas = 5500000
)

// DefaultFileConfig returns the deployment targets the token has always shipped with.
// tokencheck.toml is merged on top of it.
func DefaultFileConfig() *config.FileConfig {
	return &config.FileConfig{
		Compilers: config.CompilersConfig{
			Solc: config.SolcConfig{Version: DefaultSolcVersion},
		},
		Token: config.TokenConfig{
			Name:     DefaultTokenName,
			Symbol:   DefaultTokenSymbol,
			Decimals: DefaultTokenDecimals,
		},
		Deployments: map[string]string{},
		Networks: map[string]config.NetworkConfig{
			"development": {
				Host:      "127.0.0.1",
				Port:      8545,
				NetworkID: "*",
			},
			"ropsten": {
				URL:        "https://ropsten.infura.io/v3/${INFURA_PROJECT_ID}",
				NetworkID:  "3",
				Gas:        defaultGas,
				Credential: config.EnvMnemonic,
				Explorer:   "etherscan",
			},
			"rinkeby": {
				URL:        "https://rinkeby.infura.io/v3/${INFURA_PROJECT_ID}",
				NetworkID:  "4",
				Gas:        defaultGas,
				Credential: config.EnvMnemonic,
				Explorer:   "etherscan",
			},
			"mainnet": {
				URL:        "https://mainnet.infura.io/v3/${INFURA_PROJECT_ID}",
				NetworkID:  "1",
				Gas:        defaultGas,
				Credential: config.EnvMnemonic,
				Explorer:   "etherscan",
			},
			"fuji": {
				URL:        "https://api.avax-test.network/ext/bc/C/rpc",
				NetworkID:  "1",
				Credential: config.EnvMnemonic,
				Explorer:   "snowtrace",
			},
		},
		APIKeys: map[string]string{
			"etherscan": "${" + config.EnvEtherscanAPIKey + "}",
			"snowtrace": "${" + config.EnvSnowtraceAPIKey + "}",
		},
	}
}
