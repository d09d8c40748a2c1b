package model

import (
	"strings"
	"time"
)

const (
	attemptMarker = "_attempt_"
	attemptLayout = "2006-01-02-15-04-05"
)

// ParseAttemptTime extracts the submission time that the LMS embeds in
// entry names as "_attempt_YYYY-MM-DD-HH-MM-SS". The time is interpreted
// in loc. ok is false when the name carries no valid timestamp.
func ParseAttemptTime(name string, loc *time.Location) (time.Time, bool) {
	idx := strings.Index(name, attemptMarker)
	if idx < 0 {
		return time.Time{}, false
	}
	rest := name[idx+len(attemptMarker):]
	if len(rest) < len(attemptLayout) {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	ts, err := time.ParseInLocation(attemptLayout, rest[:len(attemptLayout)], loc)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// LateSubmission is a student whose entry was submitted after the deadline
type LateSubmission struct {
	StudentNumber string
	Entry         string
	SubmittedAt   time.Time
}
