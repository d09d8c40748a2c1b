package model

import "github.com/m-mizutani/goerr/v2"

// InputKind identifies one of the inputs a sort run asks for
type InputKind string

const (
	InputArchive     InputKind = "archive"
	InputDestination InputKind = "destination"
	InputFeedback    InputKind = "feedback"
)

// Prompt returns the message shown when asking the user for the input
func (x InputKind) Prompt() string {
	switch x {
	case InputArchive:
		return "Select the zip archive that stores the assignment submissions"
	case InputDestination:
		return "Select the folder to sort submissions into (empty for next to the archive)"
	case InputFeedback:
		return "Select the feedback sheet for this assignment. It will be copied into each student's folder"
	default:
		return "Select " + string(x)
	}
}

// OpenMode controls whether the destination folder is opened when a run ends
type OpenMode string

const (
	OpenAsk    OpenMode = "ask"
	OpenAlways OpenMode = "always"
	OpenNever  OpenMode = "never"
)

// ParseOpenMode validates s as an OpenMode
func ParseOpenMode(s string) (OpenMode, error) {
	switch m := OpenMode(s); m {
	case OpenAsk, OpenAlways, OpenNever:
		return m, nil
	default:
		return "", goerr.New("invalid open mode", goerr.V("mode", s))
	}
}
