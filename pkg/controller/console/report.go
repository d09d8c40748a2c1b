package console

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/m-mizutani/marksort/pkg/domain/model"
)

// Renderer prints the summary of a sort run
type Renderer struct {
	color bool
}

// Option is a functional option for Renderer
type Option func(*Renderer)

// WithColor enables or disables colored output
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
	}
}

// NewRenderer creates a Renderer
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (x *Renderer) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if x.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Render writes the summary of report to w
func (x *Renderer) Render(w io.Writer, report *model.SortReport) error {
	if report == nil || report.Extract == nil {
		return nil
	}
	extracted := report.Extract

	// The summary is written in one piece so a failing w is reported once
	var b strings.Builder
	if len(extracted.Folders) > 0 {
		fmt.Fprintln(&b, studentTable(report))
	}

	fmt.Fprintf(&b, "Extracted %d entries (%s) into %d student folders under %s\n",
		extracted.Entries, humanize.Bytes(uint64(extracted.Size)), len(extracted.Folders), extracted.DestRoot)
	if len(extracted.Skipped) > 0 {
		fmt.Fprintf(&b, "Skipped %d entries\n", len(extracted.Skipped))
	}

	if len(extracted.Failures) == 0 {
		x.paint(color.FgGreen).Fprintln(&b, "All entries unzipped successfully")
	} else {
		x.paint(color.FgRed).Fprintf(&b, "%d items failed to unzip:\n", len(extracted.Failures))
		fmt.Fprintln(&b, extracted.Failures.Joined())
	}

	switch {
	case report.Distribute == nil:
		x.paint(color.FgYellow).Fprintln(&b, "Feedback was not distributed")
	case len(report.Distribute.Failures) == 0:
		x.paint(color.FgGreen).Fprintf(&b, "Feedback %s copied into all %d folders\n",
			filepath.Base(report.Distribute.Source), len(report.Distribute.Copied))
	default:
		x.paint(color.FgRed).Fprintf(&b, "%d feedback copies failed:\n", len(report.Distribute.Failures))
		fmt.Fprintln(&b, report.Distribute.Failures.Joined())
	}

	if len(extracted.Late) > 0 {
		x.paint(color.FgYellow).Fprintf(&b, "%d late submissions:\n", len(extracted.Late))
		for _, late := range extracted.Late {
			fmt.Fprintf(&b, "%s\t%s\t%s\n", late.StudentNumber, late.SubmittedAt.Format("2006-01-02 15:04:05"), late.Entry)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func studentTable(report *model.SortReport) string {
	status := feedbackStatus(report.Distribute)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Student", "Files", "Feedback"})
	for _, folder := range report.Extract.Folders {
		tw.AppendRow(table.Row{
			folder.StudentNumber,
			strconv.Itoa(len(folder.Files)),
			status(folder.Path),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// feedbackStatus returns a lookup from folder path to the feedback copy state
func feedbackStatus(result *model.DistributeResult) func(folder string) string {
	if result == nil {
		return func(string) string { return "-" }
	}

	states := make(map[string]string)
	for _, dest := range result.Copied {
		states[filepath.Dir(dest)] = "copied"
	}
	for _, f := range result.Failures {
		states[filepath.Dir(f.Item)] = "failed (" + string(f.Kind) + ")"
	}

	return func(folder string) string {
		if s, ok := states[folder]; ok {
			return s
		}
		return "-"
	}
}
