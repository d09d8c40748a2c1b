package model

import (
	"strings"

	"github.com/samber/lo"
)

// FailureKind classifies a per-item failure
type FailureKind string

const (
	FailureParse             FailureKind = "parse"
	FailureUnsafePath        FailureKind = "unsafe_path"
	FailureRead              FailureKind = "read"
	FailureWrite             FailureKind = "write"
	FailureDestinationExists FailureKind = "destination_exists"
	FailureCopy              FailureKind = "copy"
)

// ItemFailure is one archive entry or feedback copy that did not make it
type ItemFailure struct {
	Item string // Entry name or destination path
	Kind FailureKind
	Err  error
}

// Failures is an ordered list of ItemFailure
type Failures []ItemFailure

// Items returns the failed item names in order
func (x Failures) Items() []string {
	return lo.Map(x, func(f ItemFailure, _ int) string {
		return f.Item
	})
}

// Joined returns the failed item names joined by newlines
func (x Failures) Joined() string {
	return strings.Join(x.Items(), "\n")
}

// CountBy returns the number of failures per kind
func (x Failures) CountBy() map[FailureKind]int {
	counts := make(map[FailureKind]int)
	for _, f := range x {
		counts[f.Kind]++
	}
	return counts
}
