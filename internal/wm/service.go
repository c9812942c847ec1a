package wm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MohitParekh7765/howm/internal/x11"
	"github.com/jezek/xgb"
	"github.com/thejerf/suture/v4"
)

// Service runs the event loop: events are delivered and processed
// strictly one at a time, so all state mutation happens on this
// goroutine.
type Service struct {
	conn    *x11.Conn
	handler *Handler
}

func NewService(conn *x11.Conn, handler *Handler) Service {
	return Service{
		conn:    conn,
		handler: handler,
	}
}

func (s Service) String() string {
	return "wm.Service"
}

func (s Service) Serve(ctx context.Context) error {
	eventC := make(chan xgb.Event)
	go receiveEvents(ctx, s.conn, eventC)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventC:
			if !ok {
				// The manager cannot run without its display connection.
				return fmt.Errorf("x connection closed: %w", suture.ErrTerminateSupervisorTree)
			}
			s.handler.HandleEvent(ev)
		}
	}
}

func receiveEvents(ctx context.Context, conn *x11.Conn, eventC chan<- xgb.Event) {
	defer close(eventC)
	slog := slog.With("func", "wm.receiveEvents")

	for {
		ev, err := conn.WaitForEvent()
		if ev == nil && err == nil {
			slog.Debug("exit: no event or error")
			return
		}

		if err != nil {
			slog.Error("Failed to read event", "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return
		case eventC <- ev:
		}
	}
}
