package config_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/marksort/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "DEBUG"},
		{level: "info"},
		{level: "Info"},
		{level: "warn"},
		{level: "WARN"},
		{level: "error"},
		{level: "ERROR"},
		{level: "verbose", wantErr: true},
		{level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			logger := &config.Logger{
				Level:  tt.level,
				Output: &bytes.Buffer{},
			}

			result, err := logger.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				gt.Value(t, result).Nil()
				return
			}
			gt.NoError(t, err)
			gt.Value(t, result).NotNil()
		})
	}
}

func TestLogger_Configure_Output(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := (&config.Logger{Level: "info", Output: &buf}).Configure()
		gt.NoError(t, err)

		logger.Info("Unzipping entry", "entry", "HW1_c1002003_Cover.docx")
		gt.String(t, buf.String()).Contains("Unzipping entry")
		gt.String(t, buf.String()).Contains("HW1_c1002003_Cover.docx")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := (&config.Logger{Level: "info", JSON: true, Output: &buf}).Configure()
		gt.NoError(t, err)

		logger.Info("Unzipping entry", "student_number", "1002003")
		gt.String(t, buf.String()).Contains(`"msg":"Unzipping entry"`)
		gt.String(t, buf.String()).Contains(`"student_number":"1002003"`)
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := (&config.Logger{Level: "warn", JSON: true, Output: &buf}).Configure()
		gt.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown")
		gt.Equal(t, bytes.Contains(buf.Bytes(), []byte("hidden")), false)
		gt.String(t, buf.String()).Contains("shown")
	})
}

func TestLogger_Flags(t *testing.T) {
	flags := (&config.Logger{}).Flags()
	gt.Number(t, len(flags)).Equal(2)

	names := make(map[string]bool)
	for _, flag := range flags {
		if f, ok := flag.(interface{ Names() []string }); ok {
			names[f.Names()[0]] = true
		}
	}
	gt.True(t, names["log-level"])
	gt.True(t, names["log-json"])
}
