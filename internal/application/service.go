package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/tusc/internal/domain"
	"github.com/bnema/tusc/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CommitRunner executes the commit-on-exit save. The terminal front end uses
// it to show progress while the stores are written.
type CommitRunner func(ctx context.Context, plan CommitPlan, commit func(context.Context) error) error

type Service struct {
	accounts ports.AccountRepository
	products ports.ProductRepository
	input    ports.LineReader
	sink     ports.EventSink
	logger   logrus.FieldLogger

	commitRunner CommitRunner
	newID        func() uuid.UUID
}

type Option func(*Service)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithCommitRunner(runner CommitRunner) Option {
	return func(s *Service) {
		if runner != nil {
			s.commitRunner = runner
		}
	}
}

func NewService(accounts ports.AccountRepository, products ports.ProductRepository, input ports.LineReader, sink ports.EventSink, opts ...Option) *Service {
	s := &Service{
		accounts:     accounts,
		products:     products,
		input:        input,
		sink:         sink,
		logger:       discardLogger(),
		commitRunner: runCommit,
		newID:        uuid.New,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RunSession authenticates a user against accounts and runs the purchase loop
// on products. Both slices are mutated in place; on return they hold the final
// state ready for persistence. An abandoned login is not an error: the result
// simply carries no account.
func (s *Service) RunSession(ctx context.Context, accounts []domain.Account, products []domain.Product) (SessionResult, error) {
	result := SessionResult{ID: s.newID()}
	logger := s.logger.WithField("session_id", result.ID.String())
	logger.Info("session started")

	account, err := NewAuthenticator(s.input, s.sink, logger).Authenticate(ctx, accounts)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			logger.Info("session ended without login")
			return result, nil
		}
		return result, fmt.Errorf("authenticate: %w", err)
	}

	logger = logger.WithField("user", account.Name)
	logger.Info("login succeeded")

	purchases, err := NewSessionEngine(s.input, s.sink, logger).Run(ctx, account, products)
	result.Purchases = purchases
	if err != nil {
		return result, fmt.Errorf("run purchase session: %w", err)
	}

	result.Account = account
	logger.WithFields(logrus.Fields{
		"purchases": len(purchases),
		"balance":   account.Balance.StringFixed(2),
	}).Info("session exited")

	return result, nil
}

// Shop loads both stores, runs one session and saves both stores when a user
// logged in and exited normally.
func (s *Service) Shop(ctx context.Context) (SessionResult, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return SessionResult{}, fmt.Errorf("load accounts: %w", err)
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return SessionResult{}, fmt.Errorf("load products: %w", err)
	}
	warnDuplicateNames(s.logger, accounts)

	result, err := s.RunSession(ctx, accounts, products)
	if err != nil {
		return result, err
	}
	if !result.Authenticated() {
		return result, nil
	}

	plan := CommitPlan{Accounts: len(accounts), Products: len(products)}
	err = s.commitRunner(ctx, plan, func(ctx context.Context) error {
		return s.commit(ctx, accounts, products)
	})
	if err != nil {
		s.logger.WithError(err).WithField("session_id", result.ID.String()).Error("commit on exit failed")
		return result, err
	}

	s.logger.WithField("session_id", result.ID.String()).Info("balances and stock saved")

	return result, nil
}

func (s *Service) commit(ctx context.Context, accounts []domain.Account, products []domain.Product) error {
	if err := s.accounts.SaveAll(ctx, accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	if err := s.products.SaveAll(ctx, products); err != nil {
		return fmt.Errorf("save products: %w", err)
	}

	return nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]AccountSummary, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, AccountSummary{Name: account.Name, Balance: account.Balance})
	}

	return summaries, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

// Import validates and replaces the stored accounts and catalog.
func (s *Service) Import(ctx context.Context, cmd ImportCommand) error {
	for i, account := range cmd.Accounts {
		if err := account.Validate(); err != nil {
			return fmt.Errorf("import account #%d: %w", i+1, err)
		}
	}
	for i, product := range cmd.Products {
		if err := product.Validate(); err != nil {
			return fmt.Errorf("import product #%d: %w", i+1, err)
		}
	}
	warnDuplicateNames(s.logger, cmd.Accounts)

	if cmd.Accounts != nil {
		if err := s.accounts.SaveAll(ctx, cmd.Accounts); err != nil {
			return fmt.Errorf("save imported accounts: %w", err)
		}
	}
	if cmd.Products != nil {
		if err := s.products.SaveAll(ctx, cmd.Products); err != nil {
			return fmt.Errorf("save imported products: %w", err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"accounts": len(cmd.Accounts),
		"products": len(cmd.Products),
	}).Info("data imported")

	return nil
}

func runCommit(ctx context.Context, _ CommitPlan, commit func(context.Context) error) error {
	return commit(ctx)
}

func warnDuplicateNames(logger logrus.FieldLogger, accounts []domain.Account) {
	seen := make(map[string]struct{}, len(accounts))
	for _, account := range accounts {
		if _, ok := seen[account.Name]; ok {
			logger.WithField("user", account.Name).Warn("duplicate account name; the last entry wins at login")
			continue
		}
		seen[account.Name] = struct{}{}
	}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
