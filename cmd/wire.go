package cmd

import (
	"fmt"
	"io"
	"os"

	tomlrepo "github.com/bnema/tusc/internal/adapters/repo/toml"
	"github.com/bnema/tusc/internal/application"
	"github.com/bnema/tusc/internal/logging"
	"github.com/bnema/tusc/internal/ports"
	"github.com/sirupsen/logrus"
)

type app struct {
	accounts  *tomlrepo.AccountRepository
	products  *tomlrepo.ProductRepository
	logger    *logrus.Logger
	logCloser io.Closer
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.New(cfg, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	accounts, err := tomlrepo.NewAccountRepository(cfg)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	products, err := tomlrepo.NewProductRepository(cfg)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("wire product repository: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"accounts_path": accounts.Path(),
		"products_path": products.Path(),
	}).Debug("stores wired")

	return &app{
		accounts:  accounts,
		products:  products,
		logger:    logger,
		logCloser: logCloser,
	}, nil
}

func (a *app) newService(input ports.LineReader, sink ports.EventSink, opts ...application.Option) *application.Service {
	opts = append([]application.Option{application.WithLogger(a.logger)}, opts...)
	return application.NewService(a.accounts, a.products, input, sink, opts...)
}

func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
