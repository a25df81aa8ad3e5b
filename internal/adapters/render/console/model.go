package console

import (
	"errors"
	"io"

	"github.com/bnema/tusc/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type catalogModel struct {
	catalog domain.CatalogShown
	styles  styles
	output  string
}

func (m catalogModel) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m catalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderCatalogView(m.catalog, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m catalogModel) View() string {
	return m.output
}

// RenderCatalog lays out the product menu, numbered from 1 with Exit last.
func RenderCatalog(catalog domain.CatalogShown) (string, error) {
	p := tea.NewProgram(
		catalogModel{catalog: catalog, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(catalogModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
