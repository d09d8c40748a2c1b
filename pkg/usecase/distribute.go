package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/otiai10/copy"

	"github.com/m-mizutani/marksort/pkg/domain/interfaces"
	"github.com/m-mizutani/marksort/pkg/domain/model"
)

type distributeUseCase struct {
	renameByStudent bool
}

// DistributeOption is a functional option for the distribute use case
type DistributeOption func(*distributeUseCase)

// WithRenameByStudent prefixes each copy with the student number,
// e.g. "1002003_MarkingGuide.docx"
func WithRenameByStudent(rename bool) DistributeOption {
	return func(uc *distributeUseCase) {
		uc.renameByStudent = rename
	}
}

// NewDistribute creates a new instance of DistributeUseCase
func NewDistribute(opts ...DistributeOption) interfaces.DistributeUseCase {
	uc := &distributeUseCase{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Distribute copies feedbackPath into every student folder. An existing
// destination is never overwritten; it is recorded as a failure and the
// next folder is attempted. If feedbackPath is not a readable regular file,
// every folder is recorded as a failure.
func (uc *distributeUseCase) Distribute(ctx context.Context, feedbackPath string, folders []*model.StudentFolder) (*model.DistributeResult, error) {
	logger := ctxlog.From(ctx)

	result := &model.DistributeResult{Source: feedbackPath}
	baseName := filepath.Base(feedbackPath)

	srcErr := checkFeedback(feedbackPath)
	if srcErr != nil {
		logger.Warn("Feedback file cannot be copied", "path", feedbackPath, "error", srcErr)
	}

	for _, folder := range folders {
		name := baseName
		if uc.renameByStudent {
			name = folder.StudentNumber + "_" + baseName
		}
		dest := filepath.Join(folder.Path, name)

		if srcErr != nil {
			result.Failures = append(result.Failures, model.ItemFailure{
				Item: dest,
				Kind: model.FailureCopy,
				Err:  srcErr,
			})
			continue
		}

		if kind, err := copyFeedback(feedbackPath, dest); err != nil {
			logger.Warn("Failed to copy feedback",
				"dest", dest,
				"kind", kind,
				"error", err,
			)
			result.Failures = append(result.Failures, model.ItemFailure{
				Item: dest,
				Kind: kind,
				Err:  err,
			})
			continue
		}

		logger.Debug("Copied feedback", "dest", dest)
		result.Copied = append(result.Copied, dest)
	}

	logger.Info("Distributed feedback",
		"source", feedbackPath,
		"copied", len(result.Copied),
		"failed", len(result.Failures),
	)

	return result, nil
}

// checkFeedback returns an error unless path is an existing regular file
func checkFeedback(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat feedback file", goerr.V("path", path))
	}
	if !info.Mode().IsRegular() {
		return goerr.Wrap(model.ErrFeedbackNotFile, "cannot distribute feedback", goerr.V("path", path))
	}
	return nil
}

func copyFeedback(src, dest string) (model.FailureKind, error) {
	if _, err := os.Lstat(dest); err == nil {
		return model.FailureDestinationExists, goerr.New("destination already exists", goerr.V("dest", dest))
	} else if !os.IsNotExist(err) {
		return model.FailureCopy, goerr.Wrap(err, "failed to stat destination", goerr.V("dest", dest))
	}

	if err := copy.Copy(src, dest, copy.Options{Sync: true}); err != nil {
		return model.FailureCopy, goerr.Wrap(err, "failed to copy feedback", goerr.V("src", src), goerr.V("dest", dest))
	}
	return "", nil
}
