package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "stablerand"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".stablerandrc.yaml", ".stablerandrc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches for .stablerandrc.yaml or .stablerandrc.yml in the current directory.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return firstExisting(cwd, LocalConfigFileNames), nil
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir simply means no global config
		return "", nil
	}
	return firstExisting(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames), nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfigFile loads a config Layer from a YAML file. Keys absent from the
// file stay unset.
func LoadConfigFile(path string) (*Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var layer Layer
	if err := yaml.Unmarshal(data, &layer); err != nil {
		return nil, &ConfigError{
			Path:    path,
			Message: err.Error(),
		}
	}
	return &layer, nil
}

// ConfigError represents a configuration file error.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// LoadAll loads configuration from every source except flags and merges them.
// explicitPath, when non-empty, names a file that must exist; it overrides
// STABLERAND_CONFIG.
// Precedence: env > explicit file > local config > global config > defaults
func LoadAll(explicitPath string) (*Config, error) {
	cfg := NewDefault()

	// .env feeds the environment layer, so load it before reading STABLERAND_*.
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}
	env, err := ReadEnv()
	if err != nil {
		return nil, err
	}

	globalPath, err := FindGlobalConfig()
	if err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, globalPath, SourceGlobal); err != nil {
		return nil, err
	}

	localPath, err := FindLocalConfig()
	if err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, localPath, SourceLocal); err != nil {
		return nil, err
	}

	if explicitPath == "" {
		explicitPath = env.Config
	}
	if explicitPath != "" {
		fileCfg, err := LoadConfigFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		MergeConfig(cfg, fileCfg, SourceFile)
	}

	overlay, err := env.toLayer()
	if err != nil {
		return nil, err
	}
	MergeConfig(cfg, overlay, SourceEnv)

	return cfg, nil
}

// mergeFile merges an optional config file. A missing file is not an error;
// a malformed one is.
func mergeFile(cfg *Config, path, source string) error {
	if path == "" {
		return nil
	}
	fileCfg, err := LoadConfigFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	MergeConfig(cfg, fileCfg, source)
	return nil
}
