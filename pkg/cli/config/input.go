package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/marksort/pkg/domain/model"
)

// Input holds the paths a sort run works on
type Input struct {
	Archive       string
	Destination   string
	Feedback      string
	Open          string
	NoInteractive bool
}

// Flags returns CLI flags for input configuration
func (c *Input) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "archive",
			Aliases:     []string{"a"},
			Usage:       "Zip archive of assignment submissions (or first argument)",
			Destination: &c.Archive,
			Sources:     cli.EnvVars("MARKSORT_ARCHIVE"),
		},
		&cli.StringFlag{
			Name:        "dest",
			Aliases:     []string{"d"},
			Usage:       "Folder to sort submissions into (default: archive path without extension)",
			Destination: &c.Destination,
			Sources:     cli.EnvVars("MARKSORT_DEST"),
		},
		&cli.StringFlag{
			Name:        "feedback",
			Aliases:     []string{"f"},
			Usage:       "Feedback or marking guide file copied into every student folder",
			Destination: &c.Feedback,
			Sources:     cli.EnvVars("MARKSORT_FEEDBACK"),
		},
		&cli.StringFlag{
			Name:        "open",
			Usage:       "Open the destination folder when done (ask, always, never)",
			Destination: &c.Open,
			Sources:     cli.EnvVars("MARKSORT_OPEN"),
		},
		&cli.BoolFlag{
			Name:        "no-interactive",
			Usage:       "Never prompt; missing inputs count as not selected",
			Destination: &c.NoInteractive,
			Sources:     cli.EnvVars("MARKSORT_NO_INTERACTIVE"),
		},
	}
}

// Apply fills values from the config file that were not set on the command line
func (c *Input) Apply(file *File, isSet func(name string) bool) {
	if file == nil {
		return
	}
	if !isSet("dest") && file.Destination != "" {
		c.Destination = file.Destination
	}
	if !isSet("open") && file.Open != "" {
		c.Open = file.Open
	}
}

// Values returns the preset selector values
func (c *Input) Values() map[model.InputKind]string {
	return map[model.InputKind]string{
		model.InputArchive:     c.Archive,
		model.InputDestination: c.Destination,
		model.InputFeedback:    c.Feedback,
	}
}

// OpenMode returns the configured open mode. Without an explicit mode the
// user is asked when prompting is possible, and never otherwise.
func (c *Input) OpenMode(interactive bool) (model.OpenMode, error) {
	if c.Open == "" {
		if interactive {
			return model.OpenAsk, nil
		}
		return model.OpenNever, nil
	}
	return model.ParseOpenMode(c.Open)
}
