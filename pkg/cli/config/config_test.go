package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/marksort/pkg/cli/config"
	"github.com/m-mizutani/marksort/pkg/domain/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marksort.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func setFlags(names ...string) func(string) bool {
	set := make(map[string]bool)
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
separator = "_s"
skip = ["**/Thumbs.db"]
rename_feedback = true
deadline = "2021-03-01T23:59"
open = "always"
destination = "/marking/HW1"
`)

	file, err := config.LoadFile(path)
	gt.NoError(t, err)
	gt.Equal(t, file.Separator, "_s")
	gt.Equal(t, file.Skip, []string{"**/Thumbs.db"})
	gt.Value(t, file.RenameFeedback).NotNil()
	gt.True(t, *file.RenameFeedback)
	gt.Equal(t, file.Deadline, "2021-03-01T23:59")
	gt.Equal(t, file.Open, "always")
	gt.Equal(t, file.Destination, "/marking/HW1")
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "none.toml"))
		gt.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.LoadFile(writeConfig(t, `seperator = "_c"`))
		gt.Error(t, err)
	})

	t.Run("broken syntax", func(t *testing.T) {
		_, err := config.LoadFile(writeConfig(t, `separator = `))
		gt.Error(t, err)
	})
}

func TestConvention_Apply(t *testing.T) {
	rename := true
	file := &config.File{
		Separator:      "_s",
		Skip:           []string{"**/*.tmp"},
		RenameFeedback: &rename,
		Deadline:       "2021-03-01",
	}

	t.Run("file fills unset flags", func(t *testing.T) {
		c := &config.Convention{Separator: model.DefaultSeparator}
		c.Apply(file, setFlags())

		gt.Equal(t, c.Separator, "_s")
		gt.Equal(t, c.Skip, []string{"**/*.tmp"})
		gt.True(t, c.RenameFeedback)
		gt.Equal(t, c.Deadline, "2021-03-01")
	})

	t.Run("explicit flags win", func(t *testing.T) {
		c := &config.Convention{Separator: "_x", Deadline: "2022-01-01"}
		c.Apply(file, setFlags("separator", "deadline", "rename-feedback"))

		gt.Equal(t, c.Separator, "_x")
		gt.Equal(t, c.Deadline, "2022-01-01")
		gt.Equal(t, c.RenameFeedback, false)
		gt.Equal(t, c.Skip, []string{"**/*.tmp"})
	})

	t.Run("nil file", func(t *testing.T) {
		c := &config.Convention{Separator: "_c"}
		c.Apply(nil, setFlags())
		gt.Equal(t, c.Separator, "_c")
	})
}

func TestConvention_ParseDeadline(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		want     time.Time
		wantErr  bool
	}{
		{name: "none", deadline: "", want: time.Time{}},
		{name: "minutes", deadline: "2021-03-01T23:59", want: time.Date(2021, 3, 1, 23, 59, 0, 0, time.UTC)},
		{name: "seconds with space", deadline: "2021-03-01 23:59:30", want: time.Date(2021, 3, 1, 23, 59, 30, 0, time.UTC)},
		{name: "date only is end of day", deadline: "2021-03-01", want: time.Date(2021, 3, 1, 23, 59, 59, 0, time.UTC)},
		{name: "rfc3339", deadline: "2021-03-01T23:59:00Z", want: time.Date(2021, 3, 1, 23, 59, 0, 0, time.UTC)},
		{name: "invalid", deadline: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &config.Convention{Deadline: tt.deadline}
			got, err := c.ParseDeadline(time.UTC)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.True(t, got.Equal(tt.want))
		})
	}
}

func TestInput(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		c := &config.Input{Archive: "HW1.zip", Feedback: "guide.docx"}
		values := c.Values()
		gt.Equal(t, values[model.InputArchive], "HW1.zip")
		gt.Equal(t, values[model.InputDestination], "")
		gt.Equal(t, values[model.InputFeedback], "guide.docx")
	})

	t.Run("apply file", func(t *testing.T) {
		c := &config.Input{Destination: "/flag"}
		c.Apply(&config.File{Destination: "/file", Open: "never"}, setFlags("dest"))
		gt.Equal(t, c.Destination, "/flag")
		gt.Equal(t, c.Open, "never")
	})

	t.Run("open mode", func(t *testing.T) {
		c := &config.Input{}
		mode, err := c.OpenMode(true)
		gt.NoError(t, err)
		gt.Equal(t, mode, model.OpenAsk)

		mode, err = c.OpenMode(false)
		gt.NoError(t, err)
		gt.Equal(t, mode, model.OpenNever)

		c.Open = "always"
		mode, err = c.OpenMode(false)
		gt.NoError(t, err)
		gt.Equal(t, mode, model.OpenAlways)

		c.Open = "sometimes"
		_, err = c.OpenMode(true)
		gt.Error(t, err)
	})
}
