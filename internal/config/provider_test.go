package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, source, err := LoadFileConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "defaults", source)
		assert.Equal(t, DefaultSolcVersion, cfg.Compilers.Solc.Version)
		assert.Equal(t, config.Literal("BobCoin"), cfg.Token.Name)
		assert.Len(t, cfg.Networks, 5)
		assert.Equal(t, config.Literal("*"), cfg.Networks["development"].NetworkID)
		assert.Equal(t, config.Literal("1"), cfg.Networks["fuji"].NetworkID)
	})

	t.Run("file merges over defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, FileName, `
[compilers.solc]
version = "0.8.9"
optimizer = true
optimizer_runs = 200

[token]
decimals = 18

[deployments]
development = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

[networks.staging]
url = "https://rpc.staging.example/${STAGING_KEY}"
network_id = 1337
credential = "STAGING_MNEMONIC"

[networks.rinkeby]
url = "https://rinkeby.example"
network_id = "4"

[api_keys]
etherscan = "${MY_ETHERSCAN}"
`)

		cfg, source, err := LoadFileConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, FileName, source)
		assert.True(t, cfg.Compilers.Solc.Optimizer)
		assert.Equal(t, 200, cfg.Compilers.Solc.OptimizerRuns)

		// Token fields not in the file keep their defaults
		assert.Equal(t, config.Literal("BobCoin"), cfg.Token.Name)
		assert.Equal(t, config.Literal("BC"), cfg.Token.Symbol)
		assert.Equal(t, config.Literal("18"), cfg.Token.Decimals)

		assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Deployments["development"])

		assert.Len(t, cfg.Networks, 6)
		assert.Equal(t, config.Literal("1337"), cfg.Networks["staging"].NetworkID)
		assert.Equal(t, "STAGING_MNEMONIC", cfg.Networks["staging"].Credential)

		// A network table replaces the built-in as a whole
		rinkeby := cfg.Networks["rinkeby"]
		assert.Equal(t, "https://rinkeby.example", rinkeby.URL)
		assert.Empty(t, rinkeby.Credential)
		assert.Zero(t, rinkeby.Gas)

		assert.Equal(t, "${MY_ETHERSCAN}", cfg.APIKeys["etherscan"])
		assert.Equal(t, "${SNOWTRACE_API_KEY}", cfg.APIKeys["snowtrace"])
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, FileName, "[token]\nnmae = \"BobCoin\"\n")

		_, _, err := LoadFileConfig(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown keys")
		assert.Contains(t, err.Error(), "nmae")
	})

	t.Run("literal rejects other types", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, FileName, "[token]\ndecimals = 18.5\n")

		_, _, err := LoadFileConfig(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})
}

func TestReadSecrets(t *testing.T) {
	fileConfig := DefaultFileConfig()
	fileConfig.Networks["staging"] = config.NetworkConfig{
		URL:        "https://${STAGING_HOST}/rpc",
		Credential: "STAGING_MNEMONIC",
	}

	env := map[string]string{
		"MNEMONIC":          "  test test test test test test test test test test test junk \n",
		"INFURA_PROJECT_ID": "abc123",
		"STAGING_HOST":      "node.internal",
		"STAGING_MNEMONIC":  "other words",
		"RINKEBY_RPC_URL":   "http://10.0.0.2:8545",
		"UNRELATED":         "ignored",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	secrets := ReadSecrets(fileConfig, lookup)

	mnemonic, ok := secrets.Lookup("MNEMONIC")
	require.True(t, ok)
	assert.Equal(t, "test test test test test test test test test test test junk", mnemonic.Reveal())

	for _, name := range []string{"INFURA_PROJECT_ID", "STAGING_HOST", "STAGING_MNEMONIC", "RINKEBY_RPC_URL"} {
		_, ok := secrets.Lookup(name)
		assert.True(t, ok, name)
	}
	_, ok = secrets.Lookup("UNRELATED")
	assert.False(t, ok)
	_, ok = secrets.Lookup("ETHERSCAN_API_KEY")
	assert.False(t, ok)
}

func TestResolveAPIKeys(t *testing.T) {
	secrets := config.Secrets{
		"ETHERSCAN_API_KEY": "ETHKEY1234",
	}
	keys := map[string]string{
		"etherscan":  "${ETHERSCAN_API_KEY}",
		"snowtrace":  "${SNOWTRACE_API_KEY}",
		"blockscout": "literal-key",
	}

	resolved := ResolveAPIKeys(keys, secrets)

	etherscan, ok := resolved.Lookup("etherscan")
	require.True(t, ok)
	assert.Equal(t, "ETHKEY1234", etherscan.Reveal())
	assert.Equal(t, "****1234", etherscan.Masked())

	_, ok = resolved.Lookup("snowtrace")
	assert.False(t, ok)

	blockscout, ok := resolved.Lookup("blockscout")
	require.True(t, ok)
	assert.Equal(t, "literal-key", blockscout.Reveal())
}

func TestProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		dir := t.TempDir()
		v := SetupViper(dir, nil)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(dir, ".tokencheck"), cfg.DataDir)
		assert.Equal(t, filepath.Join(dir, ".tokencheck", "history.db"), cfg.HistoryPath())
		assert.Equal(t, DefaultNetwork, cfg.Network)
		assert.Equal(t, domain.ModeCollectAll, cfg.Mode)
		assert.Equal(t, 10*time.Second, cfg.CallTimeout)
		assert.Equal(t, float64(10), cfg.RateLimit)
		assert.Equal(t, "defaults", cfg.ConfigSource)
	})

	t.Run("local config overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, filepath.Join(".tokencheck", "config.local.json"), `{"network": "rinkeby", "mode": "fail-fast"}`)

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)

		assert.Equal(t, "rinkeby", cfg.Network)
		assert.Equal(t, domain.ModeFailFast, cfg.Mode)
	})

	t.Run("invalid mode", func(t *testing.T) {
		v := SetupViper(t.TempDir(), nil)
		v.Set("mode", "best-effort")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid verify mode")
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		v := viper.New()
		v.Set("project_root", t.TempDir())
		v.Set("call_timeout", "0s")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "call timeout must be positive")
	})

	t.Run("dotenv does not override the process environment", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, FileName, `
[networks.staging]
url = "https://${TOKENCHECK_TEST_NODE}/rpc"
network_id = 1337
`)
		writeFile(t, dir, ".env", "TOKENCHECK_TEST_NODE=from-dotenv\nTOKENCHECK_TEST_KEPT=from-dotenv\n")
		t.Setenv("TOKENCHECK_TEST_KEPT", "from-process")
		t.Cleanup(func() { _ = os.Unsetenv("TOKENCHECK_TEST_NODE") })

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)

		node, ok := cfg.Secrets.Lookup("TOKENCHECK_TEST_NODE")
		require.True(t, ok)
		assert.Equal(t, "from-dotenv", node.Reveal())
		assert.Equal(t, "from-process", os.Getenv("TOKENCHECK_TEST_KEPT"))
	})
}

func TestLoadExpectations(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "checks.yaml", `
checks:
  - accessor: name
    expected: BobCoin
  - accessor: decimals
    expected: "18"
`)
		checks, err := LoadExpectations(path)
		require.NoError(t, err)
		assert.Equal(t, []domain.ExpectedMetadata{
			{Accessor: "name", Expected: "BobCoin"},
			{Accessor: "decimals", Expected: "18"},
		}, checks)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "checks.yaml", "checks: []\n")
		_, err := LoadExpectations(path)
		assert.ErrorContains(t, err, "has no checks")
	})

	t.Run("missing accessor", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "checks.yaml", "checks:\n  - expected: BC\n")
		_, err := LoadExpectations(path)
		assert.ErrorContains(t, err, "check 0 has no accessor")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadExpectations(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read expectations file")
	})
}

func TestFindProjectRoot(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeFile(t, dir, FileName, "")
	nested := filepath.Join(dir, "contracts", "token")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)

	root, err := FindProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}
