package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/tusc/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type saveDoneMsg struct {
	err error
}

type saveSpinnerModel struct {
	spinner spinner.Model
	plan    application.CommitPlan
	save    tea.Cmd
	err     error
	done    bool
}

func newSaveSpinnerModel(plan application.CommitPlan, save tea.Cmd) saveSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return saveSpinnerModel{
		spinner: s,
		plan:    plan,
		save:    save,
	}
}

func (m saveSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.save)
}

func (m saveSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case saveDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m saveSpinnerModel) View() string {
	switch {
	case !m.done:
		return fmt.Sprintf("%s Saving %s...", m.spinner.View(), planSummary(m.plan))
	case m.err != nil:
		return fmt.Sprintf("Save failed: %v\n", m.err)
	default:
		return fmt.Sprintf("Saved %s\n", planSummary(m.plan))
	}
}

func planSummary(plan application.CommitPlan) string {
	return fmt.Sprintf("%d %s and %d %s",
		plan.Accounts, plural(plan.Accounts, "account", "accounts"),
		plan.Products, plural(plan.Products, "product", "products"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// runSaveSpinner shows progress on output while the commit-on-exit save runs.
// It always waits for save to return; save observes ctx itself.
func runSaveSpinner(ctx context.Context, output io.Writer, plan application.CommitPlan, save func(context.Context) error) error {
	saveCmd := func() tea.Msg {
		return saveDoneMsg{err: save(ctx)}
	}

	p := tea.NewProgram(
		newSaveSpinnerModel(plan, saveCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(saveSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
