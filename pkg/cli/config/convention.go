package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/marksort/pkg/domain/model"
)

// Convention holds how entry names are parsed and feedback is named
type Convention struct {
	Separator      string
	Skip           []string
	RenameFeedback bool
	Deadline       string
}

// Flags returns CLI flags for naming convention configuration
func (c *Convention) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "separator",
			Usage:       "Literal that precedes the student number in entry names",
			Value:       model.DefaultSeparator,
			Destination: &c.Separator,
			Sources:     cli.EnvVars("MARKSORT_SEPARATOR"),
		},
		&cli.StringSliceFlag{
			Name:        "skip",
			Usage:       "Glob of entries to leave out (repeatable, replaces the defaults)",
			Destination: &c.Skip,
			Sources:     cli.EnvVars("MARKSORT_SKIP"),
		},
		&cli.BoolFlag{
			Name:        "rename-feedback",
			Usage:       "Prefix each feedback copy with the student number",
			Destination: &c.RenameFeedback,
			Sources:     cli.EnvVars("MARKSORT_RENAME_FEEDBACK"),
		},
		&cli.StringFlag{
			Name:        "deadline",
			Usage:       "Report submissions after this local time (e.g. 2021-03-01T23:59)",
			Destination: &c.Deadline,
			Sources:     cli.EnvVars("MARKSORT_DEADLINE"),
		},
	}
}

// Apply fills values from the config file that were not set on the command line
func (c *Convention) Apply(file *File, isSet func(name string) bool) {
	if file == nil {
		return
	}
	if !isSet("separator") && file.Separator != "" {
		c.Separator = file.Separator
	}
	if !isSet("skip") && file.Skip != nil {
		c.Skip = file.Skip
	}
	if !isSet("rename-feedback") && file.RenameFeedback != nil {
		c.RenameFeedback = *file.RenameFeedback
	}
	if !isSet("deadline") && file.Deadline != "" {
		c.Deadline = file.Deadline
	}
}

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDeadline returns the deadline in loc, or the zero time when none is set.
// A date without time means the end of that day.
func (c *Convention) ParseDeadline(loc *time.Location) (time.Time, error) {
	if c.Deadline == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, c.Deadline, loc); err == nil {
			return t, nil
		}
	}
	if day, err := time.ParseInLocation("2006-01-02", c.Deadline, loc); err == nil {
		return day.Add(24*time.Hour - time.Second), nil
	}

	return time.Time{}, goerr.New("invalid deadline", goerr.V("deadline", c.Deadline))
}
