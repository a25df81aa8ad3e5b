package application

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/bnema/tusc/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEngine(t *testing.T, account *domain.Account, catalog []domain.Product, lines ...string) ([]Purchase, *recordingSink, error) {
	t.Helper()

	sink := &recordingSink{}
	purchases, err := NewSessionEngine(newScriptedInput(lines...), sink, nil).Run(context.Background(), account, catalog)
	return purchases, sink, err
}

func singleProduct(t *testing.T, price string, stock int) []domain.Product {
	t.Helper()
	return []domain.Product{{Name: "Chips", Price: money(t, price), Quantity: stock}}
}

func TestSessionExactFundsPurchaseSucceeds(t *testing.T) {
	account := &domain.Account{Name: "alice", Password: "p1", Balance: money(t, "10.00")}
	catalog := singleProduct(t, "5.00", 10)

	purchases, sink, err := runEngine(t, account, catalog, "1", "2", "2")
	require.NoError(t, err)

	assertMoney(t, "0.00", account.Balance)
	assert.Equal(t, 8, catalog[0].Quantity)
	require.Len(t, purchases, 1)
	assertMoney(t, "10.00", purchases[0].Cost)
	assert.Equal(t, []string{"Receipt"}, sink.outcomes())

	receipt, ok := sink.events[len(sink.events)-2].(domain.Receipt)
	require.True(t, ok)
	assert.Equal(t, "Chips", receipt.Name)
	assert.Equal(t, 2, receipt.Quantity)
	assertMoney(t, "0.00", receipt.Balance)
}

func TestSessionFundsShortfallRejected(t *testing.T) {
	account := &domain.Account{Name: "alice", Balance: money(t, "9.99")}
	catalog := singleProduct(t, "5.00", 10)

	purchases, sink, err := runEngine(t, account, catalog, "1", "2", "2")
	require.NoError(t, err)

	assert.Empty(t, purchases)
	assertMoney(t, "9.99", account.Balance)
	assert.Equal(t, 10, catalog[0].Quantity)
	assert.Equal(t, []string{"NotEnoughMoney"}, sink.outcomes())
}

func TestSessionStockExhaustionRejected(t *testing.T) {
	for _, requested := range []int{3, 4} {
		t.Run(strconv.Itoa(requested), func(t *testing.T) {
			account := &domain.Account{Name: "alice", Balance: money(t, "100.00")}
			catalog := singleProduct(t, "1.00", 3)

			_, sink, err := runEngine(t, account, catalog, "1", strconv.Itoa(requested), "2")
			require.NoError(t, err)

			assert.Equal(t, 3, catalog[0].Quantity)
			assertMoney(t, "100.00", account.Balance)
			assert.Equal(t, []domain.Event{domain.OutOfStock{Name: "Chips"}}, filterOutcomes(sink))
		})
	}
}

func TestSessionNonPositiveQuantityCancels(t *testing.T) {
	for _, raw := range []string{"0", "-1", "lots", ""} {
		t.Run("quantity "+strconv.Quote(raw), func(t *testing.T) {
			account := &domain.Account{Name: "alice", Balance: money(t, "10.00")}
			catalog := singleProduct(t, "1.00", 5)

			_, sink, err := runEngine(t, account, catalog, "1", raw, "2")
			require.NoError(t, err)

			assert.Equal(t, 5, catalog[0].Quantity)
			assertMoney(t, "10.00", account.Balance)
			assert.Equal(t, []string{"PurchaseCancelled"}, sink.outcomes())
		})
	}
}

func TestSessionInvalidSelectionLoopsBackToBrowsing(t *testing.T) {
	account := &domain.Account{Name: "alice", Balance: money(t, "10.00")}
	catalog := singleProduct(t, "1.00", 5)

	_, sink, err := runEngine(t, account, catalog, "0", "3", "-4", "abc", "2")
	require.NoError(t, err)

	assert.Equal(t, []string{"InvalidSelection", "InvalidSelection", "InvalidSelection", "InvalidSelection"}, sink.outcomes())

	catalogs := 0
	for _, event := range sink.events {
		if _, ok := event.(domain.CatalogShown); ok {
			catalogs++
		}
	}
	assert.Equal(t, 5, catalogs)
}

func TestSessionExitRoundTripLeavesStateUnchanged(t *testing.T) {
	account := &domain.Account{Name: "alice", Password: "p1", Balance: money(t, "12.34")}
	catalog := []domain.Product{
		{Name: "Chips", Price: money(t, "1.00"), Quantity: 2},
		{Name: "Soda", Price: money(t, "2.50"), Quantity: 7},
	}
	wantAccount := *account
	wantCatalog := append([]domain.Product(nil), catalog...)

	purchases, sink, err := runEngine(t, account, catalog, "3")
	require.NoError(t, err)

	assert.Empty(t, purchases)
	assert.Equal(t, wantAccount, *account)
	assert.Equal(t, wantCatalog, catalog)
	assert.Equal(t, []string{"BalanceShown", "CatalogShown"}, sink.types())
}

func TestSessionCommitChangesOnlySelectedProduct(t *testing.T) {
	account := &domain.Account{Name: "alice", Password: "p1", Balance: money(t, "20.00")}
	catalog := []domain.Product{
		{Name: "Chips", Price: money(t, "1.25"), Quantity: 4},
		{Name: "Soda", Price: money(t, "2.10"), Quantity: 9},
		{Name: "Gum", Price: money(t, "0.35"), Quantity: 1},
	}

	_, _, err := runEngine(t, account, catalog, "2", "3", "4")
	require.NoError(t, err)

	assertMoney(t, "13.70", account.Balance)
	assert.Equal(t, "p1", account.Password)
	assert.Equal(t, 4, catalog[0].Quantity)
	assert.Equal(t, 6, catalog[1].Quantity)
	assert.Equal(t, 1, catalog[2].Quantity)
	assertMoney(t, "2.10", catalog[1].Price)
}

func TestSessionPurchaseSummaryShowsWorkingBalance(t *testing.T) {
	account := &domain.Account{Name: "alice", Balance: money(t, "10.00")}
	catalog := singleProduct(t, "1.50", 9)

	_, sink, err := runEngine(t, account, catalog, "1", "2", "1", "1", "2")
	require.NoError(t, err)

	var summaries []domain.PurchaseSummary
	for _, event := range sink.events {
		if summary, ok := event.(domain.PurchaseSummary); ok {
			summaries = append(summaries, summary)
		}
	}
	require.Len(t, summaries, 2)
	assertMoney(t, "10.00", summaries[0].Balance)
	assertMoney(t, "7.00", summaries[1].Balance)
	assertMoney(t, "5.50", account.Balance)
	assert.Equal(t, 6, catalog[0].Quantity)
}

func TestSessionRepeatedRejectionIsIdempotent(t *testing.T) {
	account := &domain.Account{Name: "alice", Balance: money(t, "4.00")}
	catalog := singleProduct(t, "5.00", 10)

	lines := []string{}
	for i := 0; i < 10; i++ {
		lines = append(lines, "1", "1")
	}
	lines = append(lines, "2")

	_, sink, err := runEngine(t, account, catalog, lines...)
	require.NoError(t, err)

	outcomes := sink.outcomes()
	require.Len(t, outcomes, 10)
	for _, outcome := range outcomes {
		assert.Equal(t, "NotEnoughMoney", outcome)
	}
	assertMoney(t, "4.00", account.Balance)
	assert.Equal(t, 10, catalog[0].Quantity)
}

func TestSessionReadErrorLeavesAccountBalanceUntouched(t *testing.T) {
	account := &domain.Account{Name: "alice", Balance: money(t, "10.00")}
	catalog := singleProduct(t, "1.00", 5)
	input := newScriptedInput("1", "2")
	input.err = errors.New("stdin closed")

	purchases, err := NewSessionEngine(input, &recordingSink{}, nil).Run(context.Background(), account, catalog)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read selection")
	require.Len(t, purchases, 1)
	assertMoney(t, "10.00", account.Balance)
}

func TestSessionRequiresAccount(t *testing.T) {
	_, err := NewSessionEngine(newScriptedInput(), &recordingSink{}, nil).Run(context.Background(), nil, nil)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionEmptyCatalogOnlyOffersExit(t *testing.T) {
	account := &domain.Account{Name: "alice", Balance: money(t, "1.00")}

	_, sink, err := runEngine(t, account, nil, "2", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"InvalidSelection"}, sink.outcomes())
}

func TestSessionRandomSequencesKeepBalanceAndStockNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		account := &domain.Account{Name: "alice", Balance: money(t, "25.00")}
		catalog := []domain.Product{
			{Name: "Chips", Price: money(t, "1.25"), Quantity: 6},
			{Name: "Soda", Price: money(t, "2.10"), Quantity: 3},
			{Name: "Candy", Price: money(t, "0.99"), Quantity: 12},
		}

		lines := []string{}
		for step := 0; step < 40; step++ {
			lines = append(lines, strconv.Itoa(rng.Intn(6)-1), strconv.Itoa(rng.Intn(10)-3))
		}
		lines = append(lines, "4")

		// Leftover quantity answers may be read as selections; the loop still
		// ends at the final exit entry or at end of input.
		_, _, _ = runEngine(t, account, catalog, lines...)

		assert.False(t, account.Balance.IsNegative(), "round %d balance %s", round, account.Balance)
		for _, product := range catalog {
			assert.GreaterOrEqual(t, product.Quantity, 0, "round %d product %s", round, product.Name)
		}
	}
}

func TestSessionRejectionsAreLoggedWithCause(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)

	account := &domain.Account{Name: "alice", Balance: money(t, "10.00")}
	catalog := singleProduct(t, "1.00", 3)
	engine := NewSessionEngine(newScriptedInput("7", "1", "3", "1", "x", "2"), &recordingSink{}, logger)

	_, err := engine.Run(context.Background(), account, catalog)
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, `"error":"invalid product selection"`)
	assert.Contains(t, logs, `"error":"out of stock"`)
	assert.Contains(t, logs, `"error":"purchase cancelled"`)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "browsing", StateBrowsing.String())
	assert.Equal(t, "reviewing_selection", StateReviewingSelection.String())
	assert.Equal(t, "exited", StateExited.String())
	assert.Equal(t, "state(9)", State(9).String())
}

func filterOutcomes(sink *recordingSink) []domain.Event {
	out := []domain.Event{}
	for _, event := range sink.events {
		switch event.(type) {
		case domain.CatalogShown, domain.PurchaseSummary, domain.BalanceShown:
			continue
		}
		out = append(out, event)
	}
	return out
}
