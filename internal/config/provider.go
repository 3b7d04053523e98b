package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/tokencheck/internal/domain"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	mode, err := domain.ParseVerifyMode(v.GetString("mode"))
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".tokencheck"),
		Network:        v.GetString("network"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		CallTimeout:    v.GetDuration("call_timeout"),
		RateLimit:      v.GetFloat64("rate_limit"),
		Mode:           mode,
		Address:        v.GetString("address"),
		ExpectFile:     v.GetString("expect_file"),
		MetricsFile:    v.GetString("metrics_file"),
		NoHistory:      v.GetBool("no_history"),
	}

	if cfg.CallTimeout <= 0 {
		return nil, fmt.Errorf("call timeout must be positive, got %s", cfg.CallTimeout)
	}

	fileConfig, source, err := LoadFileConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	cfg.File = fileConfig
	cfg.ConfigSource = source

	if err := loadDotEnv(projectRoot); err != nil {
		return nil, err
	}
	cfg.Secrets = ReadSecrets(fileConfig, os.LookupEnv)
	cfg.APIKeys = ResolveAPIKeys(fileConfig.APIKeys, cfg.Secrets)

	return cfg, nil
}

// loadDotEnv loads .env from the project root. Variables already set in the process win.
func loadDotEnv(projectRoot string) error {
	envPath := filepath.Join(projectRoot, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", envPath, err)
	}
	return nil
}

// ReadSecrets collects, exactly once, every variable the configuration can reference:
// the well-known secrets, each network's credential, ${VAR} placeholders in endpoints and
// api keys, and per-network <NAME>_RPC_URL overrides.
func ReadSecrets(fileConfig *config.FileConfig, lookup func(string) (string, bool)) config.Secrets {
	names := []string{
		config.EnvMnemonic,
		config.EnvInfuraProjectID,
		config.EnvEtherscanAPIKey,
		config.EnvSnowtraceAPIKey,
	}
	for name, network := range fileConfig.Networks {
		if network.Credential != "" {
			names = append(names, network.Credential)
		}
		names = append(names, ReferencedVars(network.URL)...)
		names = append(names, GenerateEnvVarName(name))
	}
	for _, key := range fileConfig.APIKeys {
		names = append(names, ReferencedVars(key)...)
	}

	secrets := make(config.Secrets, len(names))
	for _, name := range names {
		if value, ok := lookup(name); ok {
			secrets[name] = config.Secret(strings.TrimSpace(value))
		}
	}
	return secrets
}

// ResolveAPIKeys expands explorer API keys against secrets. Keys that reference an unset
// variable are left out.
func ResolveAPIKeys(keys map[string]string, secrets config.Secrets) config.Secrets {
	resolved := make(config.Secrets, len(keys))
	for explorer, raw := range keys {
		value, missing := ExpandEnvVars(raw, secrets.Values())
		if len(missing) > 0 || value == "" {
			continue
		}
		resolved[explorer] = config.Secret(value)
	}
	return resolved
}

// FindProjectRoot walks up from the current directory looking for tokencheck.toml and
// falls back to the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Local overrides, not committed
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".tokencheck"))

	v.SetEnvPrefix("TOKENCHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("call_timeout", "10s")
	v.SetDefault("rate_limit", 10)
	v.SetDefault("mode", string(domain.ModeCollectAll))
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
