package application

import (
	"github.com/bnema/tusc/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountSummary is the listing view of an account; it never carries the password.
type AccountSummary struct {
	Name    string
	Balance decimal.Decimal
}

type SessionResult struct {
	ID        uuid.UUID
	Account   *domain.Account
	Purchases []Purchase
}

func (r SessionResult) Authenticated() bool {
	return r.Account != nil
}
