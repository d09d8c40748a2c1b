package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML configuration file
//
//	separator = "_c"
//	skip = ["__MACOSX/**", "**/.DS_Store", "**/Thumbs.db"]
//	rename_feedback = true
//	deadline = "2021-03-01T23:59"
//	open = "always"
//	destination = "/home/me/marking/HW1"
type File struct {
	Separator      string   `toml:"separator"`
	Skip           []string `toml:"skip"`
	RenameFeedback *bool    `toml:"rename_feedback"`
	Deadline       string   `toml:"deadline"`
	Open           string   `toml:"open"`
	Destination    string   `toml:"destination"`
}

// LoadFile reads a config file. Unknown keys are an error.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file", goerr.V("path", path))
	}
	defer f.Close()

	var file File
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&file); err != nil {
		return nil, goerr.Wrap(err, "failed to decode config file", goerr.V("path", path))
	}
	return &file, nil
}
