// Package importer reads the legacy JSON data files (Users.json and
// Products.json) into domain values.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bnema/tusc/internal/domain"
	"github.com/shopspring/decimal"
)

type legacyUser struct {
	Name     string          `json:"Name"`
	Password string          `json:"Password"`
	Balance  decimal.Decimal `json:"Balance"`
}

type legacyProduct struct {
	Name     string          `json:"Name"`
	Price    decimal.Decimal `json:"Price"`
	Quantity int             `json:"Quantity"`
}

func ReadUsers(r io.Reader) ([]domain.Account, error) {
	var users []legacyUser
	if err := json.NewDecoder(r).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	accounts := make([]domain.Account, 0, len(users))
	for _, user := range users {
		accounts = append(accounts, domain.Account{
			Name:     user.Name,
			Password: user.Password,
			Balance:  user.Balance,
		})
	}

	return accounts, nil
}

func ReadProducts(r io.Reader) ([]domain.Product, error) {
	var items []legacyProduct
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		products = append(products, domain.Product{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return products, nil
}

func ReadUsersFile(path string) ([]domain.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	return ReadUsers(f)
}

func ReadProductsFile(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open products file: %w", err)
	}
	defer f.Close()

	return ReadProducts(f)
}
