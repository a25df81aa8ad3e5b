package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/tusc/internal/domain"
	"github.com/bnema/tusc/internal/ports"
)

// Prompter prints a prompt and reads one line per call.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

var _ ports.LineReader = (*Prompter)(nil)

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, styles: newStyles()}
}

// ReadLine returns the line without its terminator. A final unterminated line
// is returned as is; io.EOF is only reported when nothing was read.
func (p *Prompter) ReadLine(ctx context.Context, prompt domain.Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprintln(p.out, p.styles.prompt.Render(promptText(prompt))); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}

	return line, nil
}
