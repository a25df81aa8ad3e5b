package application

import "github.com/bnema/tusc/internal/domain"

// ImportCommand replaces stored data. A nil slice leaves that store untouched.
type ImportCommand struct {
	Accounts []domain.Account
	Products []domain.Product
}

// CommitPlan describes what the commit-on-exit save is about to write.
type CommitPlan struct {
	Accounts int
	Products int
}
