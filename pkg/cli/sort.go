package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/marksort/pkg/cli/config"
	"github.com/m-mizutani/marksort/pkg/controller/console"
	"github.com/m-mizutani/marksort/pkg/domain/interfaces"
	"github.com/m-mizutani/marksort/pkg/domain/model"
	"github.com/m-mizutani/marksort/pkg/infra/opener"
	"github.com/m-mizutani/marksort/pkg/infra/selector"
	"github.com/m-mizutani/marksort/pkg/usecase"
)

func cmdSort(s *streams) *cli.Command {
	var (
		inputCfg   config.Input
		convCfg    config.Convention
		configPath string
	)

	flags := append(inputCfg.Flags(), convCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "TOML config file",
		Destination: &configPath,
		Sources:     cli.EnvVars("MARKSORT_CONFIG"),
	})

	return &cli.Command{
		Name:      "sort",
		Usage:     "Unzip submissions into student folders and copy the feedback file into each",
		ArgsUsage: "[ARCHIVE]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if configPath != "" {
				file, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				inputCfg.Apply(file, c.IsSet)
				convCfg.Apply(file, c.IsSet)
				logger.Debug("Loaded config file", "path", configPath)
			}
			if inputCfg.Archive == "" && c.Args().Len() > 0 {
				inputCfg.Archive = c.Args().First()
			}

			interactive := !inputCfg.NoInteractive && isTerminal(s.in)
			openMode, err := inputCfg.OpenMode(interactive)
			if err != nil {
				return err
			}
			deadline, err := convCfg.ParseDeadline(time.Local)
			if err != nil {
				return err
			}

			extractOpts := []usecase.ExtractOption{
				usecase.WithSeparator(convCfg.Separator),
				usecase.WithDeadline(deadline),
			}
			if len(convCfg.Skip) > 0 {
				extractOpts = append(extractOpts, usecase.WithSkipPatterns(convCfg.Skip))
			}
			if isTerminal(s.errOut) {
				extractOpts = append(extractOpts, usecase.WithProgress(s.errOut))
			}
			extractor, err := usecase.NewExtract(extractOpts...)
			if err != nil {
				return goerr.Wrap(err, "invalid naming convention")
			}

			var sel interfaces.Selector = selector.NewPreset(inputCfg.Values())
			if interactive {
				sel = selector.NewChain(sel, selector.NewPrompt(s.in, s.out))
			}

			sortUC := usecase.NewSort(
				sel,
				extractor,
				usecase.NewDistribute(usecase.WithRenameByStudent(convCfg.RenameFeedback)),
				usecase.WithOpener(opener.New(opener.WithOutput(io.Discard, io.Discard)), openMode),
			)

			report, runErr := sortUC.Run(ctx)

			renderer := console.NewRenderer(console.WithColor(isTerminal(s.out)))
			if err := renderer.Render(s.out, report); err != nil {
				logger.Warn("Failed to render summary", "error", err)
			}

			if isSelectionAbort(runErr) {
				logger.Warn("Sort aborted", "error", runErr)
				return nil
			}
			return runErr
		},
	}
}

// isSelectionAbort reports whether err ends the run because an input was
// not chosen or was not usable. Such a run exits like a completed one.
func isSelectionAbort(err error) bool {
	return errors.Is(err, model.ErrNotSelected) || errors.Is(err, model.ErrNotZipArchive)
}
