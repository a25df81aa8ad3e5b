package ports

import (
	"context"

	"github.com/bnema/tusc/internal/domain"
)

// LineReader returns one line of user input for the given prompt, without the
// trailing newline. An empty string is a valid answer.
type LineReader interface {
	ReadLine(ctx context.Context, prompt domain.Prompt) (string, error)
}

type EventSink interface {
	Emit(event domain.Event)
}
