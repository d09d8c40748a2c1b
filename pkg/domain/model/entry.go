package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultSeparator precedes the student number in LMS download names,
// e.g. "Assignment1_c1234567_CoverSheet.pdf".
const DefaultSeparator = "_c"

// ParsedEntry is what an archive entry name tells us
type ParsedEntry struct {
	StudentNumber string // Name of the student folder
	FileName      string // Path of the file inside the student folder
}

// ParseEntryName derives the student number and output file name from an
// archive entry name.
//
// The student number is the text between the first separator and the next
// "_". If the separator occurs a second time after the first one, the file
// name is everything after that second occurrence. Otherwise it is everything
// after the "_" that ends the student number.
//
//	Assignment1_c1234567_CoverSheet.pdf    -> 1234567, CoverSheet.pdf
//	HW1_c1002003_c1002003_Main.docx        -> 1002003, 1002003_Main.docx
//	HW1_c1002003_coverSheet.pdf            -> 1002003, overSheet.pdf
//
// The last case is how the naming convention behaves on a lower case "c"
// after an underscore; run the parse command on real names before sorting.
func ParseEntryName(name, separator string) (*ParsedEntry, error) {
	if separator == "" {
		separator = DefaultSeparator
	}

	idx := strings.Index(name, separator)
	if idx < 0 {
		return nil, goerr.Wrap(ErrSeparatorNotFound, "failed to parse entry name",
			goerr.V("name", name),
			goerr.V("separator", separator))
	}
	removedPrefix := name[idx+len(separator):]

	end := strings.Index(removedPrefix, "_")
	if end < 0 {
		return nil, goerr.Wrap(ErrStudentNumberNotTerminated, "failed to parse entry name",
			goerr.V("name", name))
	}
	studentNo := removedPrefix[:end]
	if studentNo == "" {
		return nil, goerr.Wrap(ErrEmptyStudentNumber, "failed to parse entry name",
			goerr.V("name", name))
	}

	fileName := removedPrefix[end+1:]
	if second := strings.Index(removedPrefix, separator); second >= 0 {
		fileName = removedPrefix[second+len(separator):]
	}
	if fileName == "" {
		return nil, goerr.Wrap(ErrEmptyFileName, "failed to parse entry name",
			goerr.V("name", name))
	}

	return &ParsedEntry{
		StudentNumber: studentNo,
		FileName:      fileName,
	}, nil
}
