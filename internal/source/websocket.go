package source

import (
	"context"
	"io"
	"time"

	"github.com/gorilla/websocket"

	"helog/internal/constants"
	"helog/pkg/errors"
)

// WebSocketClient reads text messages from a websocket. Each message is handed
// to the listener in chunks of at most ReadBufferSize bytes, so large or
// fragmented messages arrive as several OnText calls with only the last marked
// final.
type WebSocketClient struct {
	HandshakeTimeout time.Duration
	ReadBufferSize   int
}

// NewWebSocketClient falls back to the defaults for non-positive values.
func NewWebSocketClient(handshakeTimeout time.Duration, readBufferSize int) *WebSocketClient {
	if handshakeTimeout <= 0 {
		handshakeTimeout = constants.DefaultHandshakeTimeout
	}
	if readBufferSize <= 0 {
		readBufferSize = constants.DefaultReadBufferSize
	}
	return &WebSocketClient{
		HandshakeTimeout: handshakeTimeout,
		ReadBufferSize:   readBufferSize,
	}
}

func (c *WebSocketClient) Connect(ctx context.Context, uri string, listener Listener) {
	go c.run(ctx, uri, listener)
}

func (c *WebSocketClient) run(ctx context.Context, uri string, listener Listener) {
	dialer := &websocket.Dialer{
		HandshakeTimeout: c.HandshakeTimeout,
		ReadBufferSize:   c.ReadBufferSize,
	}

	conn, _, err := dialer.DialContext(ctx, uri, nil)
	if err != nil {
		listener.OnError(errors.Transport("Failed to connect", "%s", err.Error()))
		return
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	listener.OnOpen()

	err = c.readLoop(conn, listener)
	if ctx.Err() != nil {
		listener.OnError(errors.Transport("Interrupted", ""))
		return
	}
	listener.OnError(classify(err))
}

func (c *WebSocketClient) readLoop(conn *websocket.Conn, listener Listener) error {
	buf := make([]byte, c.ReadBufferSize)
	for {
		messageType, r, err := conn.NextReader()
		if err != nil {
			return err
		}

		if messageType != websocket.TextMessage {
			if _, err := io.Copy(io.Discard, r); err != nil {
				return err
			}
			continue
		}

		if err := deliver(r, buf, listener); err != nil {
			return err
		}
	}
}

// deliver forwards one message. A chunk is held back until the next read shows
// whether more follows, so the final flag rides on real text where possible.
func deliver(r io.Reader, buf []byte, listener Listener) error {
	var pending []byte
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if pending != nil {
				listener.OnText(string(pending), false)
			}
			pending = append(pending[:0], buf[:n]...)
		}

		if err == io.EOF {
			listener.OnText(string(pending), true)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func classify(err error) *errors.Error {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return errors.Transport("WebSocket closed", "%d %s", closeErr.Code, closeErr.Text)
	}
	return errors.Transport("WebSocket reported error", "%s", err.Error()).WithCause(err)
}
