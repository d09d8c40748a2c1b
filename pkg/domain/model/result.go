package model

import "github.com/samber/lo"

// StudentFolder is the destination directory of one student
type StudentFolder struct {
	StudentNumber string
	Path          string
	Files         []string // Extracted file paths in archive order
}

// ExtractResult represents the result of sorting an archive into student folders
type ExtractResult struct {
	DestRoot string
	Folders  []*StudentFolder // Distinct student folders in first-seen order
	Skipped  []string         // Entry names matched by a skip pattern
	Failures Failures
	Entries  int   // Number of entries written to disk
	Size     int64 // Total bytes written
	Late     []LateSubmission
}

// StudentNumbers returns the student numbers of all folders in order
func (x *ExtractResult) StudentNumbers() []string {
	return lo.Map(x.Folders, func(f *StudentFolder, _ int) string {
		return f.StudentNumber
	})
}

// FolderPaths returns the paths of all folders in order
func (x *ExtractResult) FolderPaths() []string {
	return lo.Map(x.Folders, func(f *StudentFolder, _ int) string {
		return f.Path
	})
}

// DistributeResult represents the result of copying the feedback file
type DistributeResult struct {
	Source   string
	Copied   []string // Destination paths that were written
	Failures Failures
}

// SortReport is everything a sort run produced
type SortReport struct {
	Archive    string
	Extract    *ExtractResult
	Distribute *DistributeResult // nil when no feedback file was distributed
	Opened     bool              // Destination folder was opened
}
