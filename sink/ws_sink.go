// Package sink contains the delivery adapters between the coordination core
// and live transports.
package sink

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ramyaaaa4/sign-language-recognition/domain/event"
	"github.com/ramyaaaa4/sign-language-recognition/errors"
)

// WsSink buffers outbound events for one websocket connection. The write
// pump drains Events; Consume never blocks longer than the delivery
// timeout. A slow or dead peer loses events instead of stalling the
// coordinator: delivery is at-most-once by design of the core.
type WsSink struct {
	log     *slog.Logger
	events  chan event.Event
	timeout time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

func NewWsSink(log *slog.Logger, bufferSize int, timeout time.Duration) *WsSink {
	return &WsSink{
		log:     log,
		events:  make(chan event.Event, bufferSize),
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

func (s *WsSink) Consume(ctx context.Context, e event.Event) error {
	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return errors.ErrSinkClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.timeout):
		s.log.Debug("sink buffer full, dropping event", "event", e.Name())
		return errors.ErrSinkFull
	}
}

// Events is drained by the connection's write pump.
func (s *WsSink) Events() <-chan event.Event {
	return s.events
}

// Close releases every pending and future Consume. Safe to call twice; the
// unregister path and the pump teardown can both reach it.
func (s *WsSink) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Done signals the write pump that the sink was closed.
func (s *WsSink) Done() <-chan struct{} {
	return s.done
}
