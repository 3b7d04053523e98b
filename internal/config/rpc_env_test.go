package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferencedVars(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "infura url",
			value: "https://mainnet.infura.io/v3/${INFURA_PROJECT_ID}",
			want:  []string{"INFURA_PROJECT_ID"},
		},
		{
			name:  "whole value",
			value: "${SEPOLIA_RPC_URL}",
			want:  []string{"SEPOLIA_RPC_URL"},
		},
		{
			name:  "repeated and multiple",
			value: "https://${HOST}/${KEY}/${HOST}",
			want:  []string{"HOST", "KEY"},
		},
		{
			name:  "leading underscore",
			value: "${_MY_VAR}",
			want:  []string{"_MY_VAR"},
		},
		{
			name:  "hardcoded URL",
			value: "https://api.avax-test.network/ext/bc/C/rpc",
			want:  nil,
		},
		{
			name:  "not a placeholder",
			value: "$INFURA_PROJECT_ID {X}",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReferencedVars(tt.value))
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	vars := map[string]string{
		"INFURA_PROJECT_ID": "abc123",
		"EMPTY":             "",
	}

	tests := []struct {
		name        string
		value       string
		want        string
		wantMissing []string
	}{
		{
			name:  "expands present variable",
			value: "https://rinkeby.infura.io/v3/${INFURA_PROJECT_ID}",
			want:  "https://rinkeby.infura.io/v3/abc123",
		},
		{
			name:        "missing variable left in place",
			value:       "https://${NODE_HOST}/rpc",
			want:        "https://${NODE_HOST}/rpc",
			wantMissing: []string{"NODE_HOST"},
		},
		{
			name:        "empty variable counts as missing",
			value:       "${EMPTY}",
			want:        "${EMPTY}",
			wantMissing: []string{"EMPTY"},
		},
		{
			name:  "no placeholders",
			value: "http://127.0.0.1:8545",
			want:  "http://127.0.0.1:8545",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := ExpandEnvVars(tt.value, vars)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}

func TestGenerateEnvVarName(t *testing.T) {
	tests := []struct {
		name        string
		networkName string
		want        string
	}{
		{
			name:        "simple network",
			networkName: "sepolia",
			want:        "SEPOLIA_RPC_URL",
		},
		{
			name:        "network with dash",
			networkName: "celo-sepolia",
			want:        "CELO_SEPOLIA_RPC_URL",
		},
		{
			name:        "network with number and dash",
			networkName: "anvil-31337",
			want:        "ANVIL_31337_RPC_URL",
		},
		{
			name:        "already uppercase",
			networkName: "MAINNET",
			want:        "MAINNET_RPC_URL",
		},
		{
			name:        "mixed case with dash",
			networkName: "Base-Sepolia",
			want:        "BASE_SEPOLIA_RPC_URL",
		},
		{
			name:        "network with dot",
			networkName: "polygon.zkevm",
			want:        "POLYGON_ZKEVM_RPC_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateEnvVarName(tt.networkName)
			assert.Equal(t, tt.want, got)
		})
	}
}
