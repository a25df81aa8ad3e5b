package domain

import "errors"

var (
	ErrUnauthenticated   = errors.New("no valid credentials")
	ErrInvalidUser       = errors.New("invalid user")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidSelection  = errors.New("invalid product selection")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrInsufficientStock = errors.New("out of stock")
	ErrPurchaseCancelled = errors.New("purchase cancelled")
)
