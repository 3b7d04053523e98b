package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/tokencheck/internal/domain/config"
)

const FileName = "tokencheck.toml"

// LoadFileConfig reads tokencheck.toml from projectRoot and merges it over the defaults.
// A missing file is not an error; the returned source is then "defaults".
func LoadFileConfig(projectRoot string) (*config.FileConfig, string, error) {
	cfg := DefaultFileConfig()

	path := filepath.Join(projectRoot, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, "defaults", nil
	}

	var file config.FileConfig
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, "", fmt.Errorf("unknown keys in %s: %v", FileName, undecoded)
	}

	mergeFileConfig(cfg, &file)
	return cfg, FileName, nil
}

// mergeFileConfig overlays non-zero values from src onto dst. A [networks.<name>] table
// replaces the built-in environment of the same name as a whole.
func mergeFileConfig(dst, src *config.FileConfig) {
	if src.Compilers.Solc.Version != "" {
		dst.Compilers.Solc = src.Compilers.Solc
	}
	if src.Token.Name != "" {
		dst.Token.Name = src.Token.Name
	}
	if src.Token.Symbol != "" {
		dst.Token.Symbol = src.Token.Symbol
	}
	if src.Token.Decimals != "" {
		dst.Token.Decimals = src.Token.Decimals
	}
	for name, addr := range src.Deployments {
		dst.Deployments[name] = addr
	}
	for name, network := range src.Networks {
		dst.Networks[name] = network
	}
	for name, key := range src.APIKeys {
		dst.APIKeys[name] = key
	}
}
