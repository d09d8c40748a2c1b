package selector

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/marksort/pkg/domain/model"
)

// Prompt asks on a terminal and reads one line per question
type Prompt struct {
	in    *bufio.Reader
	out   io.Writer
	label *color.Color
}

// NewPrompt creates a Prompt reading answers from in and writing questions to out
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:    bufio.NewReader(in),
		out:   out,
		label: color.New(color.FgCyan, color.Bold),
	}
}

// Select asks for a path. An empty answer means not selected.
func (x *Prompt) Select(ctx context.Context, kind model.InputKind) (string, error) {
	x.label.Fprintf(x.out, "%s\n", kind.Prompt())
	fmt.Fprint(x.out, "> ")

	line, err := x.readLine()
	if err != nil {
		return "", err
	}

	path := cleanPath(line)
	if path == "" {
		return "", goerr.Wrap(model.ErrNotSelected, "empty answer", goerr.V("kind", kind))
	}
	return path, nil
}

// Confirm asks a yes/no question; anything but y or yes is no
func (x *Prompt) Confirm(ctx context.Context, question string) (bool, error) {
	x.label.Fprintf(x.out, "%s", question)
	fmt.Fprint(x.out, " [y/N]: ")

	line, err := x.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (x *Prompt) readLine() (string, error) {
	line, err := x.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", goerr.Wrap(err, "failed to read answer")
	}
	return line, nil
}

// cleanPath trims whitespace and the quotes terminals add to dropped files,
// and expands a leading "~/".
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}

	if strings.HasPrefix(s, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			s = filepath.Join(home, s[2:])
		}
	}
	return s
}
