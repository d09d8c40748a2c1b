package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/marksort/pkg/domain/model"
)

func cmdParse(s *streams) *cli.Command {
	var separator string

	return &cli.Command{
		Name:      "parse",
		Usage:     "Show the student number and file name derived from entry names",
		ArgsUsage: "NAME...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "separator",
				Usage:       "Literal that precedes the student number in entry names",
				Value:       model.DefaultSeparator,
				Destination: &separator,
				Sources:     cli.EnvVars("MARKSORT_SEPARATOR"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			names := c.Args().Slice()
			if len(names) == 0 {
				return goerr.New("no entry names given")
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Entry", "Student", "File"})
			for _, name := range names {
				parsed, err := model.ParseEntryName(name, separator)
				if err != nil {
					tw.AppendRow(table.Row{name, "-", "error: " + err.Error()})
					continue
				}
				tw.AppendRow(table.Row{name, parsed.StudentNumber, parsed.FileName})
			}

			_, err := fmt.Fprintln(s.out, tw.Render())
			return err
		},
	}
}
