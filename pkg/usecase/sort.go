package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/marksort/pkg/domain/interfaces"
	"github.com/m-mizutani/marksort/pkg/domain/model"
)

type sortUseCase struct {
	selector    interfaces.Selector
	opener      interfaces.Opener
	extractor   interfaces.ExtractUseCase
	distributor interfaces.DistributeUseCase
	openMode    model.OpenMode
}

// SortOption is a functional option for the sort use case
type SortOption func(*sortUseCase)

// WithOpener sets how the destination folder is shown when the run ends
func WithOpener(opener interfaces.Opener, mode model.OpenMode) SortOption {
	return func(uc *sortUseCase) {
		uc.opener = opener
		uc.openMode = mode
	}
}

// NewSort creates a new instance of SortUseCase
func NewSort(
	selector interfaces.Selector,
	extractor interfaces.ExtractUseCase,
	distributor interfaces.DistributeUseCase,
	opts ...SortOption,
) interfaces.SortUseCase {
	uc := &sortUseCase{
		selector:    selector,
		extractor:   extractor,
		distributor: distributor,
		openMode:    model.OpenNever,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run asks for the archive, extracts it, asks for the feedback file and
// distributes it. When the feedback file is not selected, the report of the
// extraction is returned together with model.ErrNotSelected.
func (uc *sortUseCase) Run(ctx context.Context) (*model.SortReport, error) {
	logger := ctxlog.From(ctx)

	archive, err := uc.selector.Select(ctx, model.InputArchive)
	if err != nil {
		return nil, goerr.Wrap(err, "no zip file selected")
	}
	logger.Info("Selected zip", "archive", archive)

	if !strings.EqualFold(filepath.Ext(archive), ".zip") {
		return nil, goerr.Wrap(model.ErrNotZipArchive, "no zip file selected", goerr.V("archive", archive))
	}

	destRoot, err := uc.selector.Select(ctx, model.InputDestination)
	if errors.Is(err, model.ErrNotSelected) {
		destRoot = strings.TrimSuffix(archive, filepath.Ext(archive))
	} else if err != nil {
		return nil, goerr.Wrap(err, "failed to select destination")
	}

	extracted, err := uc.extractor.Extract(ctx, archive, destRoot)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unzip archive")
	}

	report := &model.SortReport{
		Archive: archive,
		Extract: extracted,
	}

	feedback, err := uc.selector.Select(ctx, model.InputFeedback)
	if err != nil {
		report.Opened = uc.open(ctx, destRoot)
		return report, goerr.Wrap(err, "no feedback file selected")
	}
	logger.Info("Selected feedback", "feedback", feedback)

	distributed, err := uc.distributor.Distribute(ctx, feedback, extracted.Folders)
	if err != nil {
		report.Opened = uc.open(ctx, destRoot)
		return report, goerr.Wrap(err, "failed to distribute feedback")
	}
	report.Distribute = distributed

	report.Opened = uc.open(ctx, destRoot)
	return report, nil
}

// open shows destRoot according to the open mode. Failures are logged only.
func (uc *sortUseCase) open(ctx context.Context, destRoot string) bool {
	logger := ctxlog.From(ctx)

	if uc.opener == nil {
		return false
	}

	switch uc.openMode {
	case model.OpenNever:
		return false
	case model.OpenAsk:
		ok, err := uc.selector.Confirm(ctx, "Open "+destRoot+"?")
		if err != nil {
			logger.Warn("Failed to ask for opening destination", "error", err)
			return false
		}
		if !ok {
			return false
		}
	}

	if err := uc.opener.Open(ctx, destRoot); err != nil {
		logger.Warn("Failed to open destination", "dest_root", destRoot, "error", err)
		return false
	}
	return true
}
