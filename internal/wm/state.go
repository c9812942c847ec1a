// Package wm holds the window manager state and the event core that
// mutates it: client registry, workspaces, monitors, layouts, focus and
// the per-event handlers.
package wm

import (
	"github.com/MohitParekh7765/howm/internal/config"
	"github.com/MohitParekh7765/howm/internal/x11"
	"github.com/jezek/xgb/xproto"
)

type LayoutMode int

const (
	LayoutHStack LayoutMode = iota
	LayoutVStack
	LayoutGrid
	LayoutZoom
	LayoutFloating
)

func ParseLayoutMode(s string) LayoutMode {
	switch s {
	case "vstack":
		return LayoutVStack
	case "grid":
		return LayoutGrid
	case "zoom":
		return LayoutZoom
	case "floating":
		return LayoutFloating
	default:
		return LayoutHStack
	}
}

func (m LayoutMode) String() string {
	switch m {
	case LayoutVStack:
		return "vstack"
	case LayoutGrid:
		return "grid"
	case LayoutZoom:
		return "zoom"
	case LayoutFloating:
		return "floating"
	default:
		return "hstack"
	}
}

// Client is one managed window. Rect is only meaningful while the
// client floats or is fullscreen; tiled geometry belongs to the layout.
type Client struct {
	Win          xproto.Window
	IsFloating   bool
	IsTransient  bool
	IsFullscreen bool
	Rect         x11.Rect

	ws *Workspace
}

func (c *Client) Workspace() *Workspace { return c.ws }

type Workspace struct {
	UUID      string
	Name      string
	Layout    LayoutMode
	BarHeight uint16

	clients []*Client
	focused *Client
}

func (ws *Workspace) Clients() []*Client { return ws.clients }
func (ws *Workspace) Focused() *Client  { return ws.focused }

// SetFocused marks a client of this workspace as focused. Clients of
// other workspaces are rejected to keep the focus invariant.
func (ws *Workspace) SetFocused(c *Client) {
	if c != nil && c.ws != ws {
		return
	}
	ws.focused = c
}

func (ws *Workspace) insert(c *Client) {
	c.ws = ws
	ws.clients = append(ws.clients, c)
}

func (ws *Workspace) remove(c *Client) {
	for i, cc := range ws.clients {
		if cc != c {
			continue
		}
		ws.clients = append(ws.clients[:i], ws.clients[i+1:]...)
		if ws.focused == c {
			ws.focused = nil
			if len(ws.clients) > 0 {
				if i > 0 {
					ws.focused = ws.clients[i-1]
				} else {
					ws.focused = ws.clients[0]
				}
			}
		}
		c.ws = nil
		return
	}
}

type Monitor struct {
	Rect x11.Rect

	workspaces []*Workspace
	active     int
}

func NewMonitor(rect x11.Rect, cfg config.Config) *Monitor {
	workspaces := make([]*Workspace, 0, len(cfg.Workspaces))
	for _, ws := range cfg.Workspaces {
		workspaces = append(workspaces, &Workspace{
			UUID:      ws.UUID,
			Name:      ws.Name,
			Layout:    ParseLayoutMode(ws.Layout),
			BarHeight: cfg.BarHeight,
		})
	}
	if len(workspaces) == 0 {
		workspaces = append(workspaces, &Workspace{Name: "one", BarHeight: cfg.BarHeight})
	}

	return &Monitor{
		Rect:       rect,
		workspaces: workspaces,
	}
}

func (m *Monitor) ActiveWorkspace() *Workspace { return m.workspaces[m.active] }
func (m *Monitor) ActiveIndex() int            { return m.active }
func (m *Monitor) WorkspaceCount() int         { return len(m.workspaces) }

func (m *Monitor) Workspaces() []*Workspace { return m.workspaces }

func (m *Monitor) WorkspaceByIndex(i int) *Workspace {
	if i < 0 || i >= len(m.workspaces) {
		return nil
	}
	return m.workspaces[i]
}

func (m *Monitor) activate(i int) {
	if i >= 0 && i < len(m.workspaces) {
		m.active = i
	}
}

func (m *Monitor) Contains(x, y int16) bool {
	return x >= m.Rect.X && int(x) < int(m.Rect.X)+int(m.Rect.Width) &&
		y >= m.Rect.Y && int(y) < int(m.Rect.Y)+int(m.Rect.Height)
}

// State is the session state every handler operates on explicitly.
// It is mutated only from the event loop goroutine.
type State struct {
	monitors []*Monitor
	focused  *Monitor
}

func NewState(monitors []*Monitor) *State {
	return &State{
		monitors: monitors,
		focused:  monitors[0],
	}
}

func (s *State) Monitors() []*Monitor     { return s.monitors }
func (s *State) FocusedMonitor() *Monitor { return s.focused }

func (s *State) ActiveWorkspace() *Workspace {
	return s.focused.ActiveWorkspace()
}

func (s *State) SetFocusedMonitor(m *Monitor) {
	for _, mon := range s.monitors {
		if mon == m {
			s.focused = m
			return
		}
	}
}

// MonitorAt resolves the monitor containing the given root coordinates,
// falling back to the focused monitor.
func (s *State) MonitorAt(x, y int16) *Monitor {
	for _, m := range s.monitors {
		if m.Contains(x, y) {
			return m
		}
	}
	return s.focused
}

func (s *State) MonitorOf(ws *Workspace) *Monitor {
	for _, m := range s.monitors {
		for _, w := range m.workspaces {
			if w == ws {
				return m
			}
		}
	}
	return s.focused
}

// FindClient looks up a managed client by window handle, nil when the
// window is not managed. Handlers re-resolve by handle on every event
// because clients can be destroyed between deliveries.
func (s *State) FindClient(win xproto.Window) *Client {
	for _, m := range s.monitors {
		for _, ws := range m.workspaces {
			for _, c := range ws.clients {
				if c.Win == win {
					return c
				}
			}
		}
	}
	return nil
}

// CreateClient registers a new client on the active workspace of the
// focused monitor.
func (s *State) CreateClient(win xproto.Window) *Client {
	c := &Client{Win: win}
	s.ActiveWorkspace().insert(c)
	return c
}

// RemoveClient drops the client from its workspace and re-points the
// workspace focus. Protocol-level cleanup is the caller's business.
func (s *State) RemoveClient(c *Client) {
	if c.ws != nil {
		c.ws.remove(c)
	}
}
