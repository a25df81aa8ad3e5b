package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tomlrepo "github.com/bnema/tusc/internal/adapters/repo/toml"
	"github.com/bnema/tusc/internal/logging"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "TUSC"
)

// loadConfig reads $HOME/.tusc/config.toml when present. Every key can be
// overridden with a TUSC_ environment variable, e.g. TUSC_LOG_LEVEL.
func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, tomlrepo.ConfigDir))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(logging.LevelKey, logging.DefaultLevel)
	cfg.SetDefault(logging.FormatKey, logging.DefaultFormat)
	cfg.SetDefault(logging.FileKey, "")
	cfg.SetDefault(tomlrepo.AccountsPathKey, "")
	cfg.SetDefault(tomlrepo.ProductsPathKey, "")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}
