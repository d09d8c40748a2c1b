package selector

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/marksort/pkg/domain/interfaces"
	"github.com/m-mizutani/marksort/pkg/domain/model"
)

// Chain asks each selector in order until one has an answer
type Chain []interfaces.Selector

// NewChain creates a Chain
func NewChain(selectors ...interfaces.Selector) Chain {
	return Chain(selectors)
}

// Select returns the first selected value
func (x Chain) Select(ctx context.Context, kind model.InputKind) (string, error) {
	for _, s := range x {
		v, err := s.Select(ctx, kind)
		if errors.Is(err, model.ErrNotSelected) {
			continue
		}
		return v, err
	}
	return "", goerr.Wrap(model.ErrNotSelected, "no selector provided a value", goerr.V("kind", kind))
}

// Confirm returns the first answer. If no selector answers, the answer is no.
func (x Chain) Confirm(ctx context.Context, question string) (bool, error) {
	for _, s := range x {
		ok, err := s.Confirm(ctx, question)
		if errors.Is(err, model.ErrNotSelected) {
			continue
		}
		return ok, err
	}
	return false, nil
}
