package progress

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar tracks entries as they are processed
type Bar interface {
	Describe(description string)
	Add(num int) error
	Finish() error
}

// New returns a progress bar rendered on w. A nil w returns a Bar that draws nothing.
func New(w io.Writer, total int, description string) Bar {
	if w == nil {
		return nopBar{}
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{Saucer: "#", SaucerPadding: " ", BarStart: "|", BarEnd: "|"}),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

type nopBar struct{}

func (nopBar) Describe(string) {}
func (nopBar) Add(int) error { return nil }
func (nopBar) Finish() error { return nil }
