package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/marksort/pkg/cli/config"
	"github.com/m-mizutani/marksort/pkg/domain/types"
)

// streams are the terminal the commands talk to
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// Option is a functional option for Run
type Option func(*streams)

// WithIO replaces stdin, stdout and stderr
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(s *streams) {
		s.in = in
		s.out = out
		s.errOut = errOut
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	s := &streams{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}

	var loggerCfg config.Logger
	var logger *slog.Logger

	app := &cli.Command{
		Name:           "marksort",
		Usage:          "Sort assignment submissions into student folders and hand out feedback",
		Version:        types.Version,
		Flags:          loggerCfg.Flags(),
		Reader:         s.in,
		Writer:         s.out,
		ErrWriter:      s.errOut,
		DefaultCommand: "sort",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			loggerCfg.Output = s.errOut
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}

			logger = logger.With("run_id", uuid.NewString())
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdSort(s),
			cmdParse(s),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

// isTerminal reports whether v is a terminal file
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
