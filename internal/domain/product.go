package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// Cost returns price × quantity. Negative quantities yield a negative cost.
func (p Product) Cost(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

// EvaluatePurchase applies the purchase checks in order and reports the first
// failure. A nil result means the purchase may be committed.
func EvaluatePurchase(balance decimal.Decimal, product Product, quantity int) error {
	if balance.Sub(product.Cost(quantity)).IsNegative() {
		return ErrInsufficientFunds
	}

	// Buying the last unit in stock is rejected as well.
	if product.Quantity <= quantity {
		return ErrInsufficientStock
	}

	if quantity <= 0 {
		return ErrPurchaseCancelled
	}

	return nil
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if !p.Price.IsPositive() {
		return fmt.Errorf("product %q: price must be positive", p.Name)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("product %q: quantity must not be negative", p.Name)
	}

	return nil
}
