package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/tusc/internal/domain"
	"github.com/bnema/tusc/internal/ports"
	"github.com/sirupsen/logrus"
)

// Authenticator runs the login prompt loop. There is no attempt limit: the
// loop only ends on valid credentials or an empty user name.
type Authenticator struct {
	input  ports.LineReader
	sink   ports.EventSink
	logger logrus.FieldLogger
}

func NewAuthenticator(input ports.LineReader, sink ports.EventSink, logger logrus.FieldLogger) *Authenticator {
	if logger == nil {
		logger = discardLogger()
	}

	return &Authenticator{input: input, sink: sink, logger: logger}
}

// Authenticate returns a pointer into accounts for the matched account, or
// domain.ErrUnauthenticated when the user submits an empty name.
func (a *Authenticator) Authenticate(ctx context.Context, accounts []domain.Account) (*domain.Account, error) {
	var credentials domain.Credentials

	name, err := a.readCredential(ctx, domain.PromptUserName)
	if err != nil {
		return nil, fmt.Errorf("read user name: %w", err)
	}

	for !credentials.Valid && name != "" {
		if !userNameExists(accounts, name) {
			a.logger.WithField("user", name).WithError(domain.ErrInvalidUser).Debug("login rejected")
			a.sink.Emit(domain.InvalidUser{})

			name, err = a.readCredential(ctx, domain.PromptUserName)
			if err != nil {
				return nil, fmt.Errorf("read user name: %w", err)
			}
			continue
		}

		password, err := a.readCredential(ctx, domain.PromptPassword)
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}

		credentials = domain.NewCredentials(name, password)
		if !passwordIsValid(accounts, credentials) {
			a.logger.WithField("user", name).WithError(domain.ErrInvalidPassword).Debug("login rejected")
			a.sink.Emit(domain.InvalidPassword{})

			name, err = a.readCredential(ctx, domain.PromptUserName)
			if err != nil {
				return nil, fmt.Errorf("read user name: %w", err)
			}
			continue
		}

		credentials.Valid = true
	}

	if !credentials.Valid {
		return nil, domain.ErrUnauthenticated
	}

	a.sink.Emit(domain.LoginSucceeded{Name: credentials.Name})

	return matchAccount(accounts, credentials), nil
}

// readCredential treats end of input as an empty answer so that a closed
// stdin abandons the login instead of looping.
func (a *Authenticator) readCredential(ctx context.Context, prompt domain.Prompt) (string, error) {
	value, err := a.input.ReadLine(ctx, prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return value, nil
		}
		return "", err
	}

	return value, nil
}

func userNameExists(accounts []domain.Account, name string) bool {
	for _, account := range accounts {
		if account.Name == name {
			return true
		}
	}

	return false
}

func passwordIsValid(accounts []domain.Account, credentials domain.Credentials) bool {
	return matchAccount(accounts, credentials) != nil
}

// matchAccount scans the whole list; with duplicate names the last match wins.
func matchAccount(accounts []domain.Account, credentials domain.Credentials) *domain.Account {
	var matched *domain.Account
	for i := range accounts {
		if credentials.Matches(accounts[i]) {
			matched = &accounts[i]
		}
	}

	return matched
}
