package application

import (
	"context"
	"io"
	"testing"

	"github.com/bnema/tusc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type scriptedInput struct {
	lines   []string
	prompts []domain.Prompt
	err     error
}

func newScriptedInput(lines ...string) *scriptedInput {
	return &scriptedInput{lines: lines}
}

func (s *scriptedInput) ReadLine(ctx context.Context, prompt domain.Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}

	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type recordingSink struct {
	events []domain.Event
}

func (r *recordingSink) Emit(event domain.Event) {
	r.events = append(r.events, event)
}

func (r *recordingSink) types() []string {
	out := make([]string, 0, len(r.events))
	for _, event := range r.events {
		out = append(out, event.Type())
	}
	return out
}

// outcomes drops the events that are emitted on every loop iteration.
func (r *recordingSink) outcomes() []string {
	out := make([]string, 0, len(r.events))
	for _, event := range r.events {
		switch event.(type) {
		case domain.CatalogShown, domain.PurchaseSummary, domain.BalanceShown:
			continue
		}
		out = append(out, event.Type())
	}
	return out
}

func money(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", raw, err)
	}
	return d
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func mockAnyContext() interface{} {
	return mock.Anything
}
