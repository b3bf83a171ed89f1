package printer

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"helog/internal/assembler"
	"helog/internal/constants"
	"helog/internal/render"
	"helog/pkg/errors"
	"helog/pkg/metrics"
)

type state int

const (
	connecting state = iota
	streaming
	terminated
)

func (s state) String() string {
	switch s {
	case connecting:
		return "connecting"
	case streaming:
		return "streaming"
	default:
		return "terminated"
	}
}

// session is the source.Listener for one connection. Callbacks arrive serialised
// on the transport goroutine; done is closed exactly once, on termination.
type session struct {
	ctx       context.Context
	p         *Printer
	uri       string
	renderer  render.Renderer
	assembler *assembler.Assembler

	state  state
	result error
	done   chan struct{}
	once   sync.Once
}

func (p *Printer) newSession(ctx context.Context, uri string, renderer render.Renderer) *session {
	s := &session{
		ctx:       ctx,
		p:         p,
		uri:       uri,
		renderer:  renderer,
		assembler: assembler.New(p.now),
		done:      make(chan struct{}),
	}
	s.setState(connecting)
	return s
}

func (s *session) setState(st state) {
	s.state = st
	s.p.state.Store(int32(st))

	switch st {
	case connecting:
		metrics.SetConnectionState(metrics.ConnectionConnecting)
	case streaming:
		metrics.SetConnectionState(metrics.ConnectionStreaming)
	default:
		metrics.SetConnectionState(metrics.ConnectionTerminated)
	}
}

func (s *session) wait() error {
	<-s.done
	return s.result
}

func (s *session) OnOpen() {
	defer s.recoverPanic()

	if s.state != connecting {
		s.p.logger.WarnwCtx(s.ctx, "Ignoring open", "state", s.state.String())
		return
	}

	s.p.logger.InfowCtx(s.ctx, "Connected", "uri", s.uri)
	s.diagnostic(s.p.styles.notice.Render("Connected to " + s.uri))

	if s.renderer != nil {
		if header, ok := s.renderer.Header(); ok {
			if err := s.writeLine(header); err != nil {
				s.terminate(err)
				return
			}
		}
	}

	s.setState(streaming)
}

func (s *session) OnText(text string, final bool) {
	defer s.recoverPanic()

	if s.state != streaming {
		s.p.logger.DebugwCtx(s.ctx, "Ignoring text", "state", s.state.String())
		return
	}
	metrics.IncFragmentsReceived()

	if s.renderer == nil {
		if _, err := io.WriteString(s.p.out, text); err != nil {
			s.terminate(writeError(err))
		}
		return
	}

	msg, ok := s.assembler.Add(text, final)
	if !ok {
		return
	}
	s.handle(msg)
}

func (s *session) OnError(err *errors.Error) {
	defer s.recoverPanic()

	if s.state == terminated {
		return
	}
	if s.assembler.Pending() {
		s.p.logger.DebugwCtx(s.ctx, "Discarding incomplete message")
	}

	if s.ctx.Err() != nil {
		s.p.logger.InfowCtx(s.ctx, "Stream interrupted", "error", err.Error())
	} else {
		s.p.logger.WarnwCtx(s.ctx, "Stream ended", "code", err.Code, "error", err.Error())
		s.report(err)
	}
	s.terminate(err)
}

func (s *session) handle(msg assembler.Message) {
	start := time.Now()
	metrics.ObserveMessageSize(len(msg.Text))

	line, result, err := s.renderer.Render(s.ctx, msg.ReceivedAt, msg.Text)
	if err != nil {
		metrics.IncMessages(constants.StatusMalformed)
		metrics.ObserveRenderDuration(time.Since(start), constants.StatusMalformed)

		var fatal errors.FatalError
		if !errors.As(err, &fatal) || fatal.IsFatal() {
			s.report(err)
			s.terminate(err)
			return
		}

		s.p.logger.WarnwCtx(s.ctx, "Malformed message", "error", err.Error(), "size", len(msg.Text))
		s.report(err)
		s.diagnostic(msg.Text)
		return
	}

	metrics.IncMessages(result.String())
	metrics.ObserveRenderDuration(time.Since(start), result.String())
	s.p.logger.DebugwCtx(s.ctx, "Message processed", "result", result.String(), "size", len(msg.Text))

	if result != render.Rendered {
		return
	}
	if err := s.writeLine(line); err != nil {
		s.terminate(err)
	}
}

func (s *session) writeLine(line string) error {
	if _, err := io.WriteString(s.p.out, line+"\n"); err != nil {
		return writeError(err)
	}
	return nil
}

// report prints an error with its head styled.
func (s *session) report(err error) {
	var appErr *errors.Error
	if !errors.As(err, &appErr) {
		s.diagnostic(s.p.styles.errorHead.Render(err.Error()))
		return
	}

	text := s.p.styles.errorHead.Render(appErr.Message)
	if appErr.Detail != "" {
		text += ": " + appErr.Detail
	}
	s.diagnostic(text)
}

func (s *session) diagnostic(text string) {
	fmt.Fprintln(s.p.errOut, text)
}

func (s *session) terminate(err error) {
	s.once.Do(func() {
		s.setState(terminated)
		s.result = err
		close(s.done)
	})
}

// recoverPanic turns a panic in a callback into a terminal internal error so the
// caller blocked in wait is released.
func (s *session) recoverPanic() {
	if r := recover(); r != nil {
		err := errors.RecoverPanic(r)
		s.p.logger.ErrorwCtx(s.ctx, "Panic in stream callback", "panic", fmt.Sprintf("%v", r))
		s.report(err)
		s.terminate(err)
	}
}

func writeError(err error) *errors.Error {
	return errors.ErrInternal.WithMessage("Failed to write output").WithDetail("%s", err.Error()).WithCause(err)
}
