package console

import (
	"fmt"
	"strings"

	"github.com/bnema/tusc/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const bannerTitle = "Welcome to TUSC"

func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func renderBanner(s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render(bannerTitle),
		s.rule.Render(strings.Repeat("-", len(bannerTitle))),
	)
}

func renderCatalogView(catalog domain.CatalogShown, s styles) string {
	lines := []string{"", s.header.Render("What would you like to buy?")}

	for _, item := range catalog.Items {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.index.Render(fmt.Sprintf("%d:", item.Index+1)),
			" ",
			s.item.Render(item.Name),
			" ",
			s.price.Render("("+formatMoney(item.Price)+")"),
		))
	}

	lines = append(lines, s.exit.Render(fmt.Sprintf("%d: Exit", catalog.ExitIndex()+1)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderEvent returns the text shown for event, or false for events that
// have no plain message.
func renderEvent(event domain.Event, s styles) (string, bool) {
	switch e := event.(type) {
	case domain.LoginSucceeded:
		return "\n" + s.success.Render(fmt.Sprintf("Login successful! Welcome %s!", e.Name)), true
	case domain.InvalidUser:
		return "\n" + s.failure.Render("You entered an invalid user."), true
	case domain.InvalidPassword:
		return "\n" + s.failure.Render("You entered an invalid password."), true
	case domain.BalanceShown:
		return "\n" + s.detail.Render("Your balance is "+formatMoney(e.Amount)), true
	case domain.PurchaseSummary:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			"",
			s.detail.Render("You want to buy: "+e.Name),
			s.detail.Render("Your balance is "+formatMoney(e.Balance)),
		), true
	case domain.NotEnoughMoney:
		return "\n" + s.failure.Render("You do not have enough money to buy that."), true
	case domain.OutOfStock:
		return "\n" + s.failure.Render(fmt.Sprintf("Sorry, %s is out of stock", e.Name)), true
	case domain.Receipt:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			s.success.Render(fmt.Sprintf("You bought %d %s", e.Quantity, e.Name)),
			s.success.Render("Your new balance is "+formatMoney(e.Balance)),
		), true
	case domain.PurchaseCancelled:
		return "\n" + s.warning.Render("Purchase cancelled"), true
	case domain.InvalidSelection:
		return "\n" + s.warning.Render("Invalid Product ID selected."), true
	default:
		return "", false
	}
}

func promptText(prompt domain.Prompt) string {
	switch prompt {
	case domain.PromptUserName:
		return "\nEnter Username:"
	case domain.PromptPassword:
		return "Enter Password:"
	case domain.PromptSelection:
		return "Enter a number:"
	case domain.PromptQuantity:
		return "Enter amount to purchase:"
	default:
		return string(prompt) + ":"
	}
}
