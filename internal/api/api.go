// Package api exposes a small HTTP surface for bars and scripts: the
// latest state snapshot and an EWMH workspace-switch action. It never
// reads live window manager state; snapshots arrive over the bus and
// actions travel through the X server as client messages so the event
// loop stays the only state mutator.
package api

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/MohitParekh7765/howm/internal/build"
	"github.com/MohitParekh7765/howm/internal/bus"
	"github.com/MohitParekh7765/howm/internal/wm"
	"github.com/MohitParekh7765/howm/internal/x11"
	"github.com/MohitParekh7765/howm/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jezek/xgb/xproto"
)

func NewServer(addr string, conn *x11.Conn) *Server {
	s := &Server{
		addr: addr,
		conn: conn,
	}

	bus.Subscribe("api.Server", func(ctx context.Context, ev wm.StatusEvent) error {
		s.mu.Lock()
		s.snapshot = ev.Snapshot
		s.mu.Unlock()
		return nil
	})

	return s
}

type Server struct {
	addr string
	conn *x11.Conn

	mu       sync.RWMutex
	snapshot wm.Snapshot
}

func (s *Server) String() string {
	return "api.Server"
}

func (s *Server) latest() wm.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// focusedClient resolves the window to address EWMH client messages to:
// the focused client on the focused monitor's active workspace.
func (s *Server) focusedClient() xproto.Window {
	snap := s.latest()
	if snap.FocusedMonitor >= len(snap.Monitors) {
		return 0
	}
	mon := snap.Monitors[snap.FocusedMonitor]
	if mon.ActiveWorkspace >= len(mon.Workspaces) {
		return 0
	}
	return xproto.Window(mon.Workspaces[mon.ActiveWorkspace].Focused)
}

type StateOutput struct {
	Body wm.Snapshot
}

type BuildOutput struct {
	Body build.Build
}

type SwitchWorkspaceInput struct {
	Index uint32 `path:"index" doc:"workspace index on the focused monitor"`
}

type SwitchWorkspaceOutput struct{}

func (s *Server) Serve(ctx context.Context) error {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(chiext.Logger())

	humaAPI := humachi.New(router, huma.DefaultConfig("howm", build.Current.Version))

	huma.Get(humaAPI, "/api/state", func(ctx context.Context, input *struct{}) (*StateOutput, error) {
		return &StateOutput{Body: s.latest()}, nil
	})

	huma.Get(humaAPI, "/api/build", func(ctx context.Context, input *struct{}) (*BuildOutput, error) {
		return &BuildOutput{Body: build.Current}, nil
	})

	huma.Post(humaAPI, "/api/workspaces/{index}", func(ctx context.Context, input *SwitchWorkspaceInput) (*SwitchWorkspaceOutput, error) {
		win := s.focusedClient()
		if win == 0 {
			return nil, huma.Error409Conflict("no focused client to address")
		}
		if err := s.conn.SendCurrentDesktop(win, input.Index); err != nil {
			return nil, huma.Error500InternalServerError("failed to send client message", err)
		}
		return &SwitchWorkspaceOutput{}, nil
	})

	server := &http.Server{
		Addr:    s.addr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
