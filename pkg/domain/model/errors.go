package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrSeparatorNotFound means an entry name does not contain the student number separator
	ErrSeparatorNotFound = goerr.New("student number separator not found")
	// ErrStudentNumberNotTerminated means no "_" follows the student number
	ErrStudentNumberNotTerminated = goerr.New("student number is not terminated by '_'")
	// ErrEmptyStudentNumber means the separator is directly followed by "_"
	ErrEmptyStudentNumber = goerr.New("student number is empty")
	// ErrEmptyFileName means nothing is left of the entry name after parsing
	ErrEmptyFileName = goerr.New("file name is empty")

	// ErrNotSelected means a required input was not chosen by the user
	ErrNotSelected = goerr.New("input not selected")
	// ErrNotZipArchive means the selected archive does not have a .zip extension
	ErrNotZipArchive = goerr.New("selected file is not a zip archive")
	// ErrFeedbackNotFile means the feedback path is a directory or special file
	ErrFeedbackNotFile = goerr.New("feedback path is not a regular file")
)
