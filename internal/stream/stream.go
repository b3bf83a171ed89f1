// Package stream describes the two device sockets and decodes their messages.
package stream

import (
	"bytes"
	"encoding/json"
	"fmt"

	"helog/internal/constants"
	"helog/pkg/errors"
	"helog/pkg/models"
)

type Kind string

const (
	Log    Kind = "log"
	Events Kind = "events"
)

func (k Kind) String() string {
	return string(k)
}

// Path is the socket path on the device.
func (k Kind) Path() string {
	if k == Events {
		return constants.EventsSocketPath
	}
	return constants.LogSocketPath
}

// URI builds the websocket address for host, which may include a port.
func (k Kind) URI(host string) string {
	return fmt.Sprintf("ws://%s/%s", host, k.Path())
}

func (k Kind) CSVHeader() []string {
	if k == Events {
		return models.EventCSVHeader
	}
	return models.LogCSVHeader
}

// SupportsEventName reports whether records carry an event name (--name).
func (k Kind) SupportsEventName() bool {
	return k == Events
}

// SupportsLogLevel reports whether records carry a log level (--level).
func (k Kind) SupportsLogLevel() bool {
	return k == Log
}

// AppByNameAllowed reports whether app filters may use names as well as numeric ids.
func (k Kind) AppByNameAllowed() bool {
	return k == Log
}

// Decode parses one message. A nil record with a nil error means the message held
// no entry (blank text or a JSON null). Failures are DECODE_ERROR errors.
func (k Kind) Decode(text string) (models.Record, error) {
	data := bytes.TrimSpace([]byte(text))
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var record models.Record
	if k == Events {
		record = &models.EventRecord{}
	} else {
		record = &models.LogRecord{}
	}

	if err := json.Unmarshal(data, record); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode.WithDetail("%s", err.Error()))
	}
	return record, nil
}
