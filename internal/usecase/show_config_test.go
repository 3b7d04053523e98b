package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

func TestShowConfig_MasksSecrets(t *testing.T) {
	cfg := &config.RuntimeConfig{
		DataDir: "/project/.tokencheck",
		File: &config.FileConfig{
			Compilers: config.CompilersConfig{Solc: config.SolcConfig{Version: "0.8.9"}},
			Token:     config.TokenConfig{Name: "BobCoin", Symbol: "BC", Decimals: "18"},
			APIKeys: map[string]string{
				"etherscan": "${ETHERSCAN_API_KEY}",
				"snowtrace": "${SNOWTRACE_API_KEY}",
			},
		},
		Secrets: config.Secrets{
			config.EnvMnemonic:        "test test test test test test test test test test test junk",
			config.EnvEtherscanAPIKey: "ABCDEFGH1234",
		},
		APIKeys: config.Secrets{"etherscan": "ABCDEFGH1234"},
	}

	result, err := NewShowConfig(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0.8.9", result.Solc.Version)
	assert.Equal(t, "/project/.tokencheck/history.db", result.HistoryPath)
	require.Len(t, result.Expectations, 3)
	assert.Equal(t, "BobCoin", result.Expectations[0].Expected)

	require.Len(t, result.APIKeys, 2)
	assert.Equal(t, APIKeyStatus{Explorer: "etherscan", Masked: "****1234"}, result.APIKeys[0])
	assert.Equal(t, APIKeyStatus{Explorer: "snowtrace"}, result.APIKeys[1])

	assert.Equal(t, []SecretStatus{
		{Name: "MNEMONIC", Set: true},
		{Name: "INFURA_PROJECT_ID", Set: false},
		{Name: "ETHERSCAN_API_KEY", Set: true},
		{Name: "SNOWTRACE_API_KEY", Set: false},
	}, result.Secrets)
}
