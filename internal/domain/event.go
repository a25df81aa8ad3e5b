package domain

import "github.com/shopspring/decimal"

type Event interface{ Type() string }

type LoginSucceeded struct {
	Name string
}

func (e LoginSucceeded) Type() string { return "LoginSucceeded" }

type InvalidUser struct{}

func (e InvalidUser) Type() string { return "InvalidUser" }

type InvalidPassword struct{}

func (e InvalidPassword) Type() string { return "InvalidPassword" }

type BalanceShown struct {
	Amount decimal.Decimal
}

func (e BalanceShown) Type() string { return "BalanceShown" }

// CatalogItem is one menu line. Index is 0-based; the exit entry is not listed.
type CatalogItem struct {
	Index int
	Name  string
	Price decimal.Decimal
}

type CatalogShown struct {
	Items []CatalogItem
}

func (e CatalogShown) Type() string { return "CatalogShown" }

// ExitIndex is the 0-based position of the exit entry, one past the last product.
func (e CatalogShown) ExitIndex() int { return len(e.Items) }

type PurchaseSummary struct {
	Name    string
	Balance decimal.Decimal
}

func (e PurchaseSummary) Type() string { return "PurchaseSummary" }

type NotEnoughMoney struct{}

func (e NotEnoughMoney) Type() string { return "NotEnoughMoney" }

type OutOfStock struct {
	Name string
}

func (e OutOfStock) Type() string { return "OutOfStock" }

type Receipt struct {
	Balance  decimal.Decimal
	Name     string
	Quantity int
}

func (e Receipt) Type() string { return "Receipt" }

type PurchaseCancelled struct{}

func (e PurchaseCancelled) Type() string { return "PurchaseCancelled" }

type InvalidSelection struct{}

func (e InvalidSelection) Type() string { return "InvalidSelection" }

// NewCatalogShown snapshots the catalog into menu items.
func NewCatalogShown(products []Product) CatalogShown {
	items := make([]CatalogItem, 0, len(products))
	for i, product := range products {
		items = append(items, CatalogItem{Index: i, Name: product.Name, Price: product.Price})
	}

	return CatalogShown{Items: items}
}
