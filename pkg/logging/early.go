package logging

import (
	"fmt"
	"io"
)

// ErrorPrefix starts every argument or configuration error shown to the user.
const ErrorPrefix = "Error: "

// EarlyLog writes to stderr before the structured logger is configured.
type EarlyLog struct {
	w io.Writer
}

func NewEarlyLogTo(w io.Writer) *EarlyLog {
	return &EarlyLog{w: w}
}

func (l *EarlyLog) Error(msg string, args ...interface{}) {
	fmt.Fprintf(l.w, ErrorPrefix+msg+"\n", args...)
}
