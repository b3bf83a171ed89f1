// Package source delivers text from a push-based transport to a Listener.
//
// A connection produces, on a goroutine the caller does not own:
// OnOpen at most once, then OnText zero or more times, then OnError exactly
// once. OnError is terminal; no callback follows it. Failures to connect and
// closes after connecting are both reported through OnError, so consumers never
// need to tell "never connected" apart from "disconnected". Callbacks for one
// connection are never invoked concurrently.
package source

import (
	"context"

	"helog/pkg/errors"
)

type Listener interface {
	// OnOpen is called once the connection is established.
	OnOpen()
	// OnText is called for each piece of received text. final marks the last
	// piece of a message.
	OnText(text string, final bool)
	// OnError is called when the connection fails or closes.
	OnError(err *errors.Error)
}

// Client connects to a URI and feeds a Listener. Connect returns immediately;
// cancelling ctx closes the connection.
type Client interface {
	Connect(ctx context.Context, uri string, listener Listener)
}
