package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/tusc/internal/domain"
	"github.com/bnema/tusc/internal/ports"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type State int

const (
	StateBrowsing State = iota
	StateReviewingSelection
	StateExited
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateReviewingSelection:
		return "reviewing_selection"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Purchase records one committed purchase for the running session only; it is
// never persisted.
type Purchase struct {
	Product  string
	Quantity int
	Cost     decimal.Decimal
	Balance  decimal.Decimal
}

// SessionEngine runs the purchase loop for one authenticated account.
type SessionEngine struct {
	input  ports.LineReader
	sink   ports.EventSink
	logger logrus.FieldLogger
}

func NewSessionEngine(input ports.LineReader, sink ports.EventSink, logger logrus.FieldLogger) *SessionEngine {
	if logger == nil {
		logger = discardLogger()
	}

	return &SessionEngine{input: input, sink: sink, logger: logger}
}

type session struct {
	account   *domain.Account
	balance   decimal.Decimal
	catalog   []domain.Product
	state     State
	selected  int
	purchases []Purchase
}

// Run loops until the exit entry is chosen, then writes the working balance
// back to account. Product quantities in catalog are decremented in place as
// purchases commit. On a read error the account balance is left untouched and
// the caller must not persist the catalog.
func (e *SessionEngine) Run(ctx context.Context, account *domain.Account, catalog []domain.Product) ([]Purchase, error) {
	if account == nil {
		return nil, domain.ErrUnauthenticated
	}

	s := &session{
		account: account,
		balance: account.Balance,
		catalog: catalog,
		state:   StateBrowsing,
	}

	e.sink.Emit(domain.BalanceShown{Amount: s.balance})

	for s.state != StateExited {
		var err error
		switch s.state {
		case StateBrowsing:
			err = e.browse(ctx, s)
		case StateReviewingSelection:
			err = e.review(ctx, s)
		default:
			err = fmt.Errorf("unexpected session state %s", s.state)
		}
		if err != nil {
			return s.purchases, err
		}
	}

	s.account.Balance = s.balance

	return s.purchases, nil
}

func (e *SessionEngine) browse(ctx context.Context, s *session) error {
	e.sink.Emit(domain.NewCatalogShown(s.catalog))

	raw, err := e.input.ReadLine(ctx, domain.PromptSelection)
	if err != nil {
		return fmt.Errorf("read selection: %w", err)
	}

	index, ok := parseSelection(raw)
	switch {
	case ok && index >= 0 && index < len(s.catalog):
		s.selected = index
		s.state = StateReviewingSelection
	case ok && index == len(s.catalog):
		s.state = StateExited
	default:
		e.logger.WithField("input", raw).WithError(domain.ErrInvalidSelection).Debug("selection rejected")
		e.sink.Emit(domain.InvalidSelection{})
	}

	return nil
}

func (e *SessionEngine) review(ctx context.Context, s *session) error {
	product := &s.catalog[s.selected]
	s.state = StateBrowsing

	e.sink.Emit(domain.PurchaseSummary{Name: product.Name, Balance: s.balance})

	raw, err := e.input.ReadLine(ctx, domain.PromptQuantity)
	if err != nil {
		return fmt.Errorf("read quantity: %w", err)
	}

	quantity, ok := parseNumber(raw)
	if !ok {
		e.logger.WithField("input", raw).WithError(domain.ErrPurchaseCancelled).Debug("purchase rejected")
		e.sink.Emit(domain.PurchaseCancelled{})
		return nil
	}

	err = domain.EvaluatePurchase(s.balance, *product, quantity)
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"product":  product.Name,
			"quantity": quantity,
		}).WithError(err).Debug("purchase rejected")
	}

	switch {
	case err == nil:
		e.commit(s, product, quantity)
	case errors.Is(err, domain.ErrInsufficientFunds):
		e.sink.Emit(domain.NotEnoughMoney{})
	case errors.Is(err, domain.ErrInsufficientStock):
		e.sink.Emit(domain.OutOfStock{Name: product.Name})
	default:
		e.sink.Emit(domain.PurchaseCancelled{})
	}

	return nil
}

// commit updates balance and stock together.
func (e *SessionEngine) commit(s *session, product *domain.Product, quantity int) {
	cost := product.Cost(quantity)
	s.balance = s.balance.Sub(cost)
	product.Quantity -= quantity

	s.purchases = append(s.purchases, Purchase{
		Product:  product.Name,
		Quantity: quantity,
		Cost:     cost,
		Balance:  s.balance,
	})

	e.logger.WithFields(logrus.Fields{
		"user":     s.account.Name,
		"product":  product.Name,
		"quantity": quantity,
		"cost":     cost.StringFixed(2),
		"balance":  s.balance.StringFixed(2),
		"stock":    product.Quantity,
	}).Info("purchase committed")

	e.sink.Emit(domain.Receipt{Balance: s.balance, Name: product.Name, Quantity: quantity})
}

// parseSelection converts the 1-based menu number typed by the user to a
// 0-based catalog index.
func parseSelection(raw string) (int, bool) {
	n, ok := parseNumber(raw)
	if !ok {
		return 0, false
	}

	return n - 1, true
}

func parseNumber(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}

	return n, true
}
