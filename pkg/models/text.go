package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Text is a JSON field that the device may send as a string, a number, a boolean
// or null. Numbers and booleans keep their literal text ("id":34 becomes "34").
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n':
		*t = ""
	case '{', '[':
		return fmt.Errorf("expected a string but got %s", describe(data[0]))
	default:
		*t = Text(data)
	}
	return nil
}

func describe(b byte) string {
	if b == '{' {
		return "an object"
	}
	return "an array"
}

// EmptyIfNull returns s unless it is literally "null" (any case), in which case it
// returns the empty string. Absent fields are already empty.
func EmptyIfNull(s Text) string {
	if strings.EqualFold(string(s), "null") {
		return ""
	}
	return string(s)
}

// EmptyIfNullOrZero additionally blanks ids that are "0", which the device uses for
// "not applicable".
func EmptyIfNullOrZero(s Text) string {
	v := EmptyIfNull(s)
	if strings.TrimSpace(v) == "0" {
		return ""
	}
	return v
}
