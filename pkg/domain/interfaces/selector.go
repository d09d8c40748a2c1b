package interfaces

import (
	"context"

	"github.com/m-mizutani/marksort/pkg/domain/model"
)

// Selector asks the user for the inputs of a sort run
type Selector interface {
	// Select returns a path for kind, or model.ErrNotSelected
	Select(ctx context.Context, kind model.InputKind) (string, error)

	// Confirm asks a yes/no question
	Confirm(ctx context.Context, question string) (bool, error)
}

// Opener shows a directory to the user
type Opener interface {
	Open(ctx context.Context, path string) error
}
