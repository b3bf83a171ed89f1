// Package render turns assembled messages into output lines.
package render

import (
	"context"
	"time"

	"helog/internal/stream"
	"helog/pkg/models"
)

type Result int

const (
	// Rendered means the returned line should be written.
	Rendered Result = iota
	// Suppressed means the record was filtered out.
	Suppressed
	// Empty means the message held no record.
	Empty
)

func (r Result) String() string {
	switch r {
	case Rendered:
		return "rendered"
	case Suppressed:
		return "suppressed"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Filter decides whether a decoded record is written.
type Filter interface {
	Allow(ctx context.Context, record models.Record) bool
}

type Renderer interface {
	// Header returns the line written once on connection, if any.
	Header() (string, bool)
	// Render decodes, filters and formats one message. A decode failure is
	// returned as an error and leaves the renderer usable.
	Render(ctx context.Context, receivedAt time.Time, text string) (string, Result, error)
}

type formatFunc func(record models.Record, receivedAt time.Time) string

type recordRenderer struct {
	kind   stream.Kind
	filter Filter
	format formatFunc
	header string
}

// NewHuman renders one readable line per record.
func NewHuman(kind stream.Kind, filter Filter) Renderer {
	return &recordRenderer{
		kind:   kind,
		filter: filter,
		format: func(record models.Record, receivedAt time.Time) string {
			return record.Format(receivedAt)
		},
	}
}

// NewCSV renders one CSV row per record after a header row.
func NewCSV(kind stream.Kind, filter Filter) Renderer {
	return &recordRenderer{
		kind:   kind,
		filter: filter,
		format: func(record models.Record, receivedAt time.Time) string {
			return CSVLine(record.CSVRow(receivedAt))
		},
		header: CSVLine(kind.CSVHeader()),
	}
}

func (r *recordRenderer) Header() (string, bool) {
	return r.header, r.header != ""
}

func (r *recordRenderer) Render(ctx context.Context, receivedAt time.Time, text string) (string, Result, error) {
	record, err := r.kind.Decode(text)
	if err != nil {
		return "", Suppressed, err
	}
	if record == nil {
		return "", Empty, nil
	}

	if r.filter != nil && !r.filter.Allow(ctx, record) {
		return "", Suppressed, nil
	}

	return r.format(record, receivedAt), Rendered, nil
}
