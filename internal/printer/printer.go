// Package printer runs one stream: it connects a source, pushes every message
// through a renderer and writes the result until the connection ends.
package printer

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"helog/internal/constants"
	"helog/internal/logger"
	"helog/internal/render"
	"helog/internal/source"
	"helog/pkg/logging"
)

type Printer struct {
	client source.Client
	out    io.Writer
	errOut io.Writer
	logger logger.Logger
	now    func() time.Time
	styles styles

	// state mirrors the running session for readers on other goroutines.
	state atomic.Int32
}

type Option func(*Printer)

// WithClock replaces time.Now for receipt timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Printer) {
		p.now = now
	}
}

// WithColor sets the color mode for stderr diagnostics: auto, always or never.
func WithColor(mode string) Option {
	return func(p *Printer) {
		p.styles = newStyles(p.errOut, mode)
	}
}

// New writes records to out and diagnostics to errOut.
func New(client source.Client, out, errOut io.Writer, log logger.Logger, opts ...Option) *Printer {
	p := &Printer{
		client: client,
		out:    out,
		errOut: errOut,
		logger: log,
		now:    time.Now,
	}
	p.styles = newStyles(errOut, constants.ColorAuto)

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run connects to uri and blocks until the connection ends, returning the error
// that ended it. A nil renderer selects raw mode: fragments are written as
// received. Cancelling ctx closes the connection.
func (p *Printer) Run(ctx context.Context, uri string, renderer render.Renderer) error {
	ctx = logging.WithSessionID(ctx, uuid.NewString())

	s := p.newSession(ctx, uri, renderer)
	p.logger.DebugwCtx(ctx, "Connecting", "uri", uri, "raw", renderer == nil)
	p.client.Connect(ctx, uri, s)

	return s.wait()
}

// CheckStreaming reports an error unless a session is currently streaming.
func (p *Printer) CheckStreaming(context.Context) error {
	if st := state(p.state.Load()); st != streaming {
		return fmt.Errorf("connection is %s", st)
	}
	return nil
}
