package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Account struct {
	Name     string
	Password string
	Balance  decimal.Decimal
}

// Credentials is a candidate name/password pair collected at the login prompt.
type Credentials struct {
	Name     string
	Password string
	Valid    bool
}

func NewCredentials(name, password string) Credentials {
	return Credentials{Name: name, Password: password}
}

// Matches requires both fields to be equal; a name match alone is not enough.
func (c Credentials) Matches(account Account) bool {
	return c.Name == account.Name && c.Password == account.Password
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("name is required")
	}
	if a.Balance.IsNegative() {
		return fmt.Errorf("account %q: balance must not be negative", a.Name)
	}

	return nil
}
