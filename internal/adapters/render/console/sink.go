package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/tusc/internal/domain"
	"github.com/bnema/tusc/internal/ports"
)

// Sink writes session events to a terminal. Emit has no error return, so the
// first write failure is kept and reported by Err.
type Sink struct {
	out    io.Writer
	styles styles

	mu  sync.Mutex
	err error
}

var _ ports.EventSink = (*Sink)(nil)

func NewSink(out io.Writer) *Sink {
	return &Sink{out: out, styles: newStyles()}
}

func (s *Sink) Banner() {
	s.write(renderBanner(s.styles))
}

func (s *Sink) Emit(event domain.Event) {
	if catalog, ok := event.(domain.CatalogShown); ok {
		rendered, err := RenderCatalog(catalog)
		if err != nil {
			s.fail(fmt.Errorf("render catalog: %w", err))
			rendered = renderCatalogView(catalog, s.styles)
		}
		s.write(rendered)
		return
	}

	if text, ok := renderEvent(event, s.styles); ok {
		s.write(text)
	}
}

func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Sink) write(text string) {
	if _, err := fmt.Fprintln(s.out, text); err != nil {
		s.fail(fmt.Errorf("write output: %w", err))
	}
}

func (s *Sink) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}
