package selector

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/marksort/pkg/domain/model"
)

// Preset answers from values given up front, typically CLI flags
type Preset struct {
	values  map[model.InputKind]string
	confirm *bool
}

// NewPreset creates a Preset. Empty values count as not selected.
func NewPreset(values map[model.InputKind]string) *Preset {
	return &Preset{values: values}
}

// WithConfirm sets the answer to every Confirm question
func (x *Preset) WithConfirm(answer bool) *Preset {
	x.confirm = &answer
	return x
}

// Select returns the preset value for kind
func (x *Preset) Select(ctx context.Context, kind model.InputKind) (string, error) {
	v := strings.TrimSpace(x.values[kind])
	if v == "" {
		return "", goerr.Wrap(model.ErrNotSelected, "no preset value", goerr.V("kind", kind))
	}
	return v, nil
}

// Confirm returns the preset answer, or model.ErrNotSelected if none was set
func (x *Preset) Confirm(ctx context.Context, question string) (bool, error) {
	if x.confirm == nil {
		return false, goerr.Wrap(model.ErrNotSelected, "no preset answer", goerr.V("question", question))
	}
	return *x.confirm, nil
}
