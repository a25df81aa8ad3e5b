package toml

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	AccountsPathKey  = "accounts.path"
	ProductsPathKey  = "products.path"
	ConfigDir        = ".tusc"
	accountsFileName = "accounts.toml"
	productsFileName = "products.toml"
)

// DefaultPath returns the store file location under $HOME/.tusc.
func DefaultPath(file string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ConfigDir, file), nil
}

func resolveStorePath(cfg *viper.Viper, key, file string) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(key)
	if path == "" {
		defaultPath, err := DefaultPath(file)
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	return normalizePath(path)
}
