package interfaces

import (
	"context"

	"github.com/m-mizutani/marksort/pkg/domain/model"
)

// ExtractUseCase sorts archive entries into student folders
type ExtractUseCase interface {
	// Extract unpacks archivePath under destRoot, one folder per student number
	Extract(ctx context.Context, archivePath, destRoot string) (*model.ExtractResult, error)
}

// DistributeUseCase copies a feedback file into student folders
type DistributeUseCase interface {
	// Distribute copies feedbackPath into every folder
	Distribute(ctx context.Context, feedbackPath string, folders []*model.StudentFolder) (*model.DistributeResult, error)
}

// SortUseCase runs the whole select, extract, distribute pipeline
type SortUseCase interface {
	Run(ctx context.Context) (*model.SortReport, error)
}
