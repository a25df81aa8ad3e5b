package toml

import "fmt"

const (
	currentAccountsSchemaVersion = 1
	currentProductsSchemaVersion = 1
)

type accountsFileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *accountsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentAccountsSchemaVersion
	}
}

func (s accountsFileSchema) validateVersion() error {
	if s.Version > currentAccountsSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentAccountsSchemaVersion)
	}

	return nil
}

// Amounts are stored as unrounded decimal strings so they round-trip exactly.
type accountSchema struct {
	Name     string `toml:"name"`
	Password string `toml:"password"`
	Balance  string `toml:"balance"`
}

type productsFileSchema struct {
	Version  int             `toml:"version"`
	Products []productSchema `toml:"products"`
}

func (s *productsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentProductsSchemaVersion
	}
}

func (s productsFileSchema) validateVersion() error {
	if s.Version > currentProductsSchemaVersion {
		return fmt.Errorf("unsupported products schema version %d (current %d)", s.Version, currentProductsSchemaVersion)
	}

	return nil
}

type productSchema struct {
	Name     string `toml:"name"`
	Price    string `toml:"price"`
	Quantity int    `toml:"quantity"`
}
