package assembler

import (
	"strings"
	"time"
)

// Message is a complete piece of text as sent by the device.
type Message struct {
	Text string
	// ReceivedAt is when the first fragment of the message arrived.
	ReceivedAt time.Time
}

type partial struct {
	text    strings.Builder
	started time.Time
	open    bool
}

// Assembler joins fragments into messages. It is not safe for concurrent use;
// the transport serialises fragment delivery.
type Assembler struct {
	now     func() time.Time
	current *partial
}

// New stamps messages with now, or time.Now when nil.
func New(now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{
		now:     now,
		current: &partial{},
	}
}

// Add appends a fragment. When final is set it returns the assembled message
// and starts a new one.
func (a *Assembler) Add(fragment string, final bool) (Message, bool) {
	p := a.current
	p.text.WriteString(fragment)
	if !p.open {
		p.started = a.now()
		p.open = true
	}

	if !final {
		return Message{}, false
	}

	msg := Message{
		Text:       p.text.String(),
		ReceivedAt: p.started,
	}
	a.current = &partial{}
	return msg, true
}

// Pending reports whether fragments are waiting for a final one.
func (a *Assembler) Pending() bool {
	return a.current.open
}
