package opener

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pkg/browser"
)

// Client opens directories with the desktop's default file manager
type Client struct {
	openFile func(path string) error
}

// Option is a functional option for Client
type Option func(*Client)

// WithOpenFunc replaces the function that launches the file manager. For tests.
func WithOpenFunc(fn func(path string) error) Option {
	return func(c *Client) {
		c.openFile = fn
	}
}

// WithOutput redirects what the launched program prints
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Client) {
		browser.Stdout = stdout
		browser.Stderr = stderr
	}
}

// New creates a Client
func New(opts ...Option) *Client {
	c := &Client{
		openFile: browser.OpenFile,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open shows path. path must be an existing directory.
func (c *Client) Open(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat folder", goerr.V("path", path))
	}
	if !info.IsDir() {
		return goerr.New("not a folder", goerr.V("path", path))
	}

	ctxlog.From(ctx).Info("Opening folder", "path", path)
	if err := c.openFile(path); err != nil {
		return goerr.Wrap(err, "failed to open folder", goerr.V("path", path))
	}
	return nil
}
