package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	rule    lipgloss.Style
	header  lipgloss.Style
	index   lipgloss.Style
	item    lipgloss.Style
	price   lipgloss.Style
	exit    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	detail  lipgloss.Style
	prompt  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		index:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		item:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		price:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		exit:    lipgloss.NewStyle().Faint(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
