package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bnema/tusc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCatalogNumbersFromOneWithExitLast(t *testing.T) {
	output, err := RenderCatalog(domain.NewCatalogShown([]domain.Product{
		{Name: "Chips", Price: decimal.RequireFromString("1.5"), Quantity: 3},
		{Name: "Soda", Price: decimal.RequireFromString("2"), Quantity: 0},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "What would you like to buy?")
	assert.Contains(t, output, "1: Chips ($1.50)")
	assert.Contains(t, output, "2: Soda ($2.00)")
	assert.Contains(t, output, "3: Exit")
}

func TestRenderCatalogEmpty(t *testing.T) {
	output, err := RenderCatalog(domain.NewCatalogShown(nil))

	require.NoError(t, err)
	assert.Contains(t, output, "1: Exit")
}

func TestSinkWritesMessages(t *testing.T) {
	tests := []struct {
		name  string
		event domain.Event
		want  []string
	}{
		{name: "login", event: domain.LoginSucceeded{Name: "alice"}, want: []string{"Login successful! Welcome alice!"}},
		{name: "invalid user", event: domain.InvalidUser{}, want: []string{"You entered an invalid user."}},
		{name: "invalid password", event: domain.InvalidPassword{}, want: []string{"You entered an invalid password."}},
		{name: "balance", event: domain.BalanceShown{Amount: decimal.RequireFromString("12.5")}, want: []string{"Your balance is $12.50"}},
		{
			name:  "summary",
			event: domain.PurchaseSummary{Name: "Chips", Balance: decimal.RequireFromString("3")},
			want:  []string{"You want to buy: Chips", "Your balance is $3.00"},
		},
		{name: "funds", event: domain.NotEnoughMoney{}, want: []string{"You do not have enough money to buy that."}},
		{name: "stock", event: domain.OutOfStock{Name: "Soda"}, want: []string{"Sorry, Soda is out of stock"}},
		{
			name:  "receipt",
			event: domain.Receipt{Balance: decimal.RequireFromString("0.25"), Name: "Chips", Quantity: 2},
			want:  []string{"You bought 2 Chips", "Your new balance is $0.25"},
		},
		{name: "cancelled", event: domain.PurchaseCancelled{}, want: []string{"Purchase cancelled"}},
		{name: "selection", event: domain.InvalidSelection{}, want: []string{"Invalid Product ID selected."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			sink := NewSink(&out)

			sink.Emit(tt.event)

			require.NoError(t, sink.Err())
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestSinkBannerAndCatalog(t *testing.T) {
	var out bytes.Buffer
	sink := NewSink(&out)

	sink.Banner()
	sink.Emit(domain.NewCatalogShown([]domain.Product{{Name: "Gum", Price: decimal.RequireFromString("0.35")}}))

	require.NoError(t, sink.Err())
	assert.Contains(t, out.String(), "Welcome to TUSC")
	assert.Contains(t, out.String(), "---------------")
	assert.Contains(t, out.String(), "1: Gum ($0.35)")
	assert.Contains(t, out.String(), "2: Exit")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestSinkKeepsFirstWriteError(t *testing.T) {
	sink := NewSink(failingWriter{})

	sink.Emit(domain.InvalidUser{})
	sink.Emit(domain.InvalidPassword{})

	require.Error(t, sink.Err())
	assert.ErrorContains(t, sink.Err(), "write output: broken pipe")
}

func TestPrompterReadsLinesAndPrintsPrompts(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("alice\r\np1\n3"), &out)
	ctx := context.Background()

	name, err := prompter.ReadLine(ctx, domain.PromptUserName)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	password, err := prompter.ReadLine(ctx, domain.PromptPassword)
	require.NoError(t, err)
	assert.Equal(t, "p1", password)

	selection, err := prompter.ReadLine(ctx, domain.PromptSelection)
	require.NoError(t, err)
	assert.Equal(t, "3", selection)

	_, err = prompter.ReadLine(ctx, domain.PromptQuantity)
	assert.ErrorIs(t, err, io.EOF)

	assert.Contains(t, out.String(), "Enter Username:")
	assert.Contains(t, out.String(), "Enter Password:")
	assert.Contains(t, out.String(), "Enter a number:")
	assert.Contains(t, out.String(), "Enter amount to purchase:")
}

func TestPrompterEmptyLineIsNotEOF(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("\n"), io.Discard)

	line, err := prompter.ReadLine(context.Background(), domain.PromptUserName)
	require.NoError(t, err)
	assert.Empty(t, line)
}

func TestPrompterCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPrompter(strings.NewReader("alice\n"), io.Discard).ReadLine(ctx, domain.PromptUserName)
	assert.ErrorIs(t, err, context.Canceled)
}
