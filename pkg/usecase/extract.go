package usecase

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/m-mizutani/marksort/pkg/domain/interfaces"
	"github.com/m-mizutani/marksort/pkg/domain/model"
	"github.com/m-mizutani/marksort/pkg/utils/progress"
)

// DefaultSkipPatterns are archive entries that never belong to a student
var DefaultSkipPatterns = []string{
	"__MACOSX/**",
	"**/.DS_Store",
}

type extractUseCase struct {
	separator string
	skip      []string
	deadline  time.Time
	progress  io.Writer
}

// ExtractOption is a functional option for the extract use case
type ExtractOption func(*extractUseCase)

// WithSeparator sets the literal that precedes the student number in entry names
func WithSeparator(separator string) ExtractOption {
	return func(uc *extractUseCase) {
		uc.separator = separator
	}
}

// WithSkipPatterns replaces DefaultSkipPatterns. Patterns use doublestar syntax.
func WithSkipPatterns(patterns []string) ExtractOption {
	return func(uc *extractUseCase) {
		uc.skip = patterns
	}
}

// WithDeadline enables the late submission check
func WithDeadline(deadline time.Time) ExtractOption {
	return func(uc *extractUseCase) {
		uc.deadline = deadline
	}
}

// WithProgress renders a progress bar on w while extracting
func WithProgress(w io.Writer) ExtractOption {
	return func(uc *extractUseCase) {
		uc.progress = w
	}
}

// NewExtract creates a new instance of ExtractUseCase
func NewExtract(opts ...ExtractOption) (interfaces.ExtractUseCase, error) {
	uc := &extractUseCase{
		separator: model.DefaultSeparator,
		skip:      DefaultSkipPatterns,
	}
	for _, opt := range opts {
		opt(uc)
	}

	if uc.separator == "" {
		return nil, goerr.New("separator must not be empty")
	}
	for _, pattern := range uc.skip {
		if !doublestar.ValidatePattern(pattern) {
			return nil, goerr.New("invalid skip pattern", goerr.V("pattern", pattern))
		}
	}

	return uc, nil
}

// Extract unpacks every entry of archivePath into <destRoot>/<studentNumber>/<fileName>.
// A failing entry is recorded in the result and the next entry is attempted.
// Failing to create destRoot or to open the archive aborts extraction.
func (uc *extractUseCase) Extract(ctx context.Context, archivePath, destRoot string) (*model.ExtractResult, error) {
	logger := ctxlog.From(ctx)

	// Containment checks compare path prefixes, which needs an absolute root
	absRoot, err := filepath.Abs(destRoot)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve destination root", goerr.V("dest_root", destRoot))
	}
	destRoot = absRoot

	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create destination root", goerr.V("dest_root", destRoot))
	}

	zipReader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open archive", goerr.V("archive", archivePath))
	}
	defer zipReader.Close()

	logger.Info("Extracting archive",
		"archive", archivePath,
		"dest_root", destRoot,
		"entries", len(zipReader.File),
	)

	s := &extraction{
		uc:     uc,
		result: &model.ExtractResult{DestRoot: destRoot},
		seen:   make(map[string]*model.StudentFolder),
		late:   make(map[string]bool),
	}

	bar := progress.New(uc.progress, len(zipReader.File), "Extracting")
	entryLevel := slog.LevelInfo
	if uc.progress != nil {
		entryLevel = slog.LevelDebug
	}

	for _, file := range zipReader.File {
		if err := ctx.Err(); err != nil {
			_ = bar.Finish()
			return s.result, goerr.Wrap(err, "extraction interrupted", goerr.V("archive", archivePath))
		}

		name := entryName(file)
		bar.Describe(name)
		s.process(ctx, file, name, entryLevel)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	logger.Info("Extracted archive",
		"dest_root", destRoot,
		"folders", len(s.result.Folders),
		"entries", s.result.Entries,
		"skipped", len(s.result.Skipped),
		"failed", len(s.result.Failures),
		"total_size_bytes", s.result.Size,
	)

	return s.result, nil
}

// extraction is the state of one Extract call
type extraction struct {
	uc     *extractUseCase
	result *model.ExtractResult
	seen   map[string]*model.StudentFolder
	late   map[string]bool
}

func (s *extraction) fail(ctx context.Context, name string, kind model.FailureKind, err error) {
	ctxlog.From(ctx).Warn("Failed to unzip entry",
		"entry", name,
		"kind", kind,
		"error", err,
	)
	s.result.Failures = append(s.result.Failures, model.ItemFailure{
		Item: name,
		Kind: kind,
		Err:  err,
	})
}

func (s *extraction) process(ctx context.Context, file *zip.File, name string, level slog.Level) {
	logger := ctxlog.From(ctx)

	if file.FileInfo().IsDir() {
		logger.Debug("Ignoring directory entry", "entry", name)
		return
	}
	if s.uc.skipped(name) {
		logger.Debug("Skipping entry", "entry", name)
		s.result.Skipped = append(s.result.Skipped, name)
		return
	}

	parsed, err := model.ParseEntryName(name, s.uc.separator)
	if err != nil {
		s.fail(ctx, name, model.FailureParse, err)
		return
	}
	s.checkDeadline(parsed, name)

	folderPath, ok := within(s.result.DestRoot, parsed.StudentNumber)
	if !ok {
		s.fail(ctx, name, model.FailureUnsafePath, goerr.New("student folder escapes destination root",
			goerr.V("student_number", parsed.StudentNumber)))
		return
	}
	destPath, ok := within(folderPath, filepath.FromSlash(parsed.FileName))
	if !ok {
		s.fail(ctx, name, model.FailureUnsafePath, goerr.New("file escapes student folder",
			goerr.V("file_name", parsed.FileName)))
		return
	}

	folder, err := s.folder(parsed.StudentNumber, folderPath)
	if err != nil {
		s.fail(ctx, name, model.FailureWrite, err)
		return
	}

	logger.Log(ctx, level, "Unzipping entry", "entry", name, "path", destPath)

	size, kind, err := extractFile(file, destPath)
	if err != nil {
		s.fail(ctx, name, kind, err)
		return
	}

	folder.Files = append(folder.Files, destPath)
	s.result.Entries++
	s.result.Size += size
}

// folder creates the student folder on first sight and records it once
func (s *extraction) folder(studentNo, path string) (*model.StudentFolder, error) {
	if folder, ok := s.seen[studentNo]; ok {
		return folder, nil
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create student folder", goerr.V("path", path))
	}

	folder := &model.StudentFolder{
		StudentNumber: studentNo,
		Path:          path,
	}
	s.seen[studentNo] = folder
	s.result.Folders = append(s.result.Folders, folder)
	return folder, nil
}

func (s *extraction) checkDeadline(parsed *model.ParsedEntry, name string) {
	if s.uc.deadline.IsZero() || s.late[parsed.StudentNumber] {
		return
	}

	submittedAt, ok := model.ParseAttemptTime(name, s.uc.deadline.Location())
	if !ok || !submittedAt.After(s.uc.deadline) {
		return
	}

	s.late[parsed.StudentNumber] = true
	s.result.Late = append(s.result.Late, model.LateSubmission{
		StudentNumber: parsed.StudentNumber,
		Entry:         name,
		SubmittedAt:   submittedAt,
	})
}

func (uc *extractUseCase) skipped(name string) bool {
	for _, pattern := range uc.skip {
		// Patterns are validated in NewExtract
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// within joins elem to base and reports whether the result stays strictly inside base
func within(base, elem string) (string, bool) {
	if filepath.IsAbs(elem) {
		return "", false
	}
	joined := filepath.Join(base, elem)
	if !strings.HasPrefix(joined, filepath.Clean(base)+string(os.PathSeparator)) {
		return "", false
	}
	return joined, true
}

// entryName returns the entry name as UTF-8 in NFC form. Names written
// without the UTF-8 flag by older Windows tools are IBM code page 437.
func entryName(file *zip.File) string {
	name := file.Name
	if file.NonUTF8 && !utf8.ValidString(name) {
		if decoded, err := charmap.CodePage437.NewDecoder().String(name); err == nil {
			name = decoded
		}
	}
	return norm.NFC.String(name)
}

// extractFile writes a single entry to destPath, overwriting an existing file
func extractFile(file *zip.File, destPath string) (int64, model.FailureKind, error) {
	rc, err := file.Open()
	if err != nil {
		return 0, model.FailureRead, goerr.Wrap(err, "failed to open entry in archive", goerr.V("entry", file.Name))
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return 0, model.FailureWrite, goerr.Wrap(err, "failed to create parent directories", goerr.V("path", filepath.Dir(destPath)))
	}

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, model.FailureWrite, goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}
	defer destFile.Close()

	size, err := io.Copy(destFile, rc)
	if err != nil {
		kind := model.FailureWrite
		if errors.Is(err, zip.ErrChecksum) || errors.Is(err, zip.ErrFormat) || errors.Is(err, io.ErrUnexpectedEOF) {
			kind = model.FailureRead
		}
		return size, kind, goerr.Wrap(err, "failed to copy entry content", goerr.V("path", destPath))
	}

	if err := destFile.Close(); err != nil {
		return size, model.FailureWrite, goerr.Wrap(err, "failed to close destination file", goerr.V("path", destPath))
	}

	return size, "", nil
}
