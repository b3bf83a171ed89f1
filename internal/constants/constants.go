package constants

import "time"

const (
	LogSocketPath    = "logsocket"
	EventsSocketPath = "eventsocket"
)

// LocalTimeLayout is ISO-8601 with millisecond precision and a zone offset ("Z" for UTC).
const LocalTimeLayout = "2006-01-02T15:04:05.000Z07:00"

const (
	DefaultHandshakeTimeout = 45 * time.Second
	DefaultReadBufferSize   = 4096
	DefaultMetricsListen    = "127.0.0.1:9464"
	DefaultLogLevel         = "error"
	DefaultLogFormat        = "json"
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	ExitInterrupted = 130
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	FallbackAllow = "allow"
	FallbackDeny  = "deny"
)

const (
	StatusRendered   = "rendered"
	StatusSuppressed = "suppressed"
	StatusMalformed  = "malformed"
	StatusEmpty      = "empty"
)

const EnvPrefix = "HELOG"
