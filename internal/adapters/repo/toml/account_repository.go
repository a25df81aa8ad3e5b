package toml

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tusc/internal/domain"
	"github.com/bnema/tusc/internal/ports"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type AccountRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(cfg *viper.Viper) (*AccountRepository, error) {
	path, err := resolveStorePath(cfg, AccountsPathKey, accountsFileName)
	if err != nil {
		return nil, fmt.Errorf("accounts store: %w", err)
	}

	return &AccountRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *AccountRepository) Path() string {
	return r.path
}

// List returns accounts in file order. A missing file is an empty store.
func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var file accountsFileSchema
	if err := readTOMLFile(r.path, &file); err != nil {
		return nil, fmt.Errorf("accounts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for _, entry := range file.Accounts {
		account, err := accountFromSchema(entry)
		if err != nil {
			return nil, fmt.Errorf("decode accounts file: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// SaveAll replaces the whole store with accounts.
func (r *AccountRepository) SaveAll(ctx context.Context, accounts []domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := accountsFileSchema{Accounts: make([]accountSchema, 0, len(accounts))}
	file.applyDefaults()
	for _, account := range accounts {
		file.Accounts = append(file.Accounts, accountSchema{
			Name:     account.Name,
			Password: account.Password,
			Balance:  account.Balance.String(),
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeTOMLFile(r.path, file); err != nil {
		return fmt.Errorf("accounts file: %w", err)
	}

	return nil
}

func accountFromSchema(entry accountSchema) (domain.Account, error) {
	balance, err := parseAmount(entry.Balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %q: balance: %w", entry.Name, err)
	}

	account := domain.Account{Name: entry.Name, Password: entry.Password, Balance: balance}
	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(raw)
}
