package models

import (
	"time"

	"helog/internal/constants"
)

// Record is a decoded entry from either device stream.
type Record interface {
	// MatchesDevice reports whether the record was emitted by the given device,
	// identified by numeric id or full name.
	MatchesDevice(device string) bool
	// MatchesApp reports whether the record was emitted by the given app.
	MatchesApp(app string) bool
	// Format renders the record as a human-readable line.
	Format(receivedAt time.Time) string
	// CSVRow renders the record as unescaped CSV values, localTime first.
	CSVRow(receivedAt time.Time) []string
	// Fields returns the normalised field values keyed by their JSON names.
	Fields() map[string]string
}

// Named is implemented by records that carry an event name.
type Named interface {
	EventName() string
}

// Leveled is implemented by records that carry a log level.
type Leveled interface {
	LogLevel() string
}

func LocalTime(t time.Time) string {
	return t.Format(constants.LocalTimeLayout)
}
