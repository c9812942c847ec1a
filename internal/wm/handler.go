package wm

import (
	"log/slog"

	"github.com/MohitParekh7765/howm/internal/bus"
	"github.com/MohitParekh7765/howm/internal/config"
	"github.com/MohitParekh7765/howm/internal/x11"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/k0kubun/pp"
)

// _NET_WM_STATE client message actions.
const (
	netWMStateRemove = 0
	netWMStateAdd    = 1
	netWMStateToggle = 2
)

// XConn is the slice of the protocol connection the event core needs.
// Queries are best-effort: a false/nil result means "use the default",
// never an error that aborts handling.
type XConn interface {
	Attributes(win xproto.Window) (x11.WindowAttributes, bool)
	WindowTypes(win xproto.Window) []xproto.Atom
	TransientFor(win xproto.Window) (xproto.Window, bool)
	Geometry(win xproto.Window) (x11.Rect, bool)

	MapWindow(win xproto.Window)
	ConfigureWindow(win xproto.Window, mask uint16, values []uint32)
	MoveResize(win xproto.Window, r x11.Rect)
	SetInputFocus(win xproto.Window)
	SetBorder(win xproto.Window, width uint16, pixel uint32)
	SetActiveWindow(win xproto.Window)
	SelectClientEvents(win xproto.Window)
	GrabButtons(win xproto.Window)
	UngrabButtons(win xproto.Window)
	ReplayPointer(t xproto.Timestamp)
	Flush()
}

// Handler turns one X event into one deterministic state mutation.
type Handler struct {
	conn  XConn
	atoms x11.Atoms
	cfg   config.Config
	state *State
	root  xproto.Window
}

func NewHandler(conn XConn, atoms x11.Atoms, cfg config.Config, state *State, root xproto.Window) *Handler {
	return &Handler{
		conn:  conn,
		atoms: atoms,
		cfg:   cfg,
		state: state,
		root:  root,
	}
}

// HandleEvent routes one event to its handler. Pure routing: any state
// access happens inside the handlers. Nothing here returns an error;
// every handler absorbs its own failure modes.
func (h *Handler) HandleEvent(ev xgb.Event) {
	switch ev := ev.(type) {
	case xproto.ButtonPressEvent:
		h.buttonPress(ev)
	case xproto.MapRequestEvent:
		h.mapRequest(ev)
	case xproto.DestroyNotifyEvent:
		h.destroyNotify(ev)
	case xproto.EnterNotifyEvent:
		h.enterNotify(ev)
	case xproto.ConfigureRequestEvent:
		h.configureRequest(ev)
	case xproto.UnmapNotifyEvent:
		h.unmapNotify(ev)
	case xproto.ClientMessageEvent:
		h.clientMessage(ev)
	default:
		h.unhandled(ev)
	}
}

func (h *Handler) mapRequest(ev xproto.MapRequestEvent) {
	h.manage(ev.Window)
}

// manage runs the map-request state transition for one window. Every
// protocol query here is best-effort; a missing reply degrades to a
// default instead of aborting the registration.
func (h *Handler) manage(win xproto.Window) {
	attrs, ok := h.conn.Attributes(win)
	if !ok || attrs.OverrideRedirect || h.state.FindClient(win) != nil {
		return
	}

	slog.Info("Mapping request", "wid", win)

	c := h.state.CreateClient(win)

	for _, a := range h.conn.WindowTypes(win) {
		switch a {
		case h.atoms.NetWMWindowTypeDock, h.atoms.NetWMWindowTypeToolbar:
			// Docks and toolbars are never tiled clients.
			h.conn.MapWindow(win)
			h.removeClient(c, false)
			return
		case h.atoms.NetWMWindowTypeNotification,
			h.atoms.NetWMWindowTypeDropdownMenu,
			h.atoms.NetWMWindowTypeSplash,
			h.atoms.NetWMWindowTypePopupMenu,
			h.atoms.NetWMWindowTypeTooltip,
			h.atoms.NetWMWindowTypeDialog:
			c.IsFloating = true
		}
	}

	// Transient windows MUST float.
	if transient, ok := h.conn.TransientFor(win); ok && transient != 0 {
		c.IsTransient = true
		c.IsFloating = true
	}

	if geom, ok := h.conn.Geometry(win); ok {
		slog.Info("Mapped client's initial geometry",
			"width", geom.Width, "height", geom.Height, "x", geom.X, "y", geom.Y)
		if c.IsFloating {
			mon := h.state.FocusedMonitor()
			ws := c.Workspace()

			c.Rect.Width = h.cfg.FloatSpawnWidth
			if geom.Width > 1 {
				c.Rect.Width = geom.Width
			}
			c.Rect.Height = h.cfg.FloatSpawnHeight
			if geom.Height > 1 {
				c.Rect.Height = geom.Height
			}

			if h.cfg.CenterFloating {
				c.Rect.X = int16(int(mon.Rect.Width)/2 - int(c.Rect.Width)/2)
				c.Rect.Y = int16((int(mon.Rect.Height) - int(ws.BarHeight) - int(c.Rect.Height)) / 2)
			} else {
				c.Rect.X = geom.X
				c.Rect.Y = geom.Y
			}
		}
	}

	h.arrange(c.Workspace())
	h.conn.MapWindow(win)
	h.conn.SelectClientEvents(win)
	h.focusClient(c)
	h.conn.GrabButtons(win)
}

func (h *Handler) destroyNotify(ev xproto.DestroyNotifyEvent) {
	c := h.state.FindClient(ev.Window)
	if c == nil {
		return
	}
	slog.Info("Client wants to be destroyed", "wid", ev.Window)

	ws := c.Workspace()
	h.removeClient(c, true)
	h.arrange(ws)
}

func (h *Handler) unmapNotify(ev xproto.UnmapNotifyEvent) {
	c := h.state.FindClient(ev.Window)
	if c == nil {
		return
	}
	slog.Info("Received unmap request", "wid", ev.Window)

	// Withdrawing clients send a synthetic unmap addressed to the root
	// window; those must not drop the client.
	if ev.Event != h.root {
		ws := c.Workspace()
		h.removeClient(c, false)
		h.arrange(ws)
	}
	h.statusRefresh()
}

func (h *Handler) configureRequest(ev xproto.ConfigureRequestEvent) {
	slog.Info("Received configure request", "wid", ev.Window)

	mon := h.state.FocusedMonitor()
	ws := mon.ActiveWorkspace()

	// Value list in protocol field order, honoring only the masked
	// fields. Only width and height are clamped; positions are applied
	// as requested, even off-screen.
	vals := make([]uint32, 0, 7)
	if ev.ValueMask&xproto.ConfigWindowX != 0 {
		vals = append(vals, uint32(uint16(ev.X)))
	}
	if ev.ValueMask&xproto.ConfigWindowY != 0 {
		y := ev.Y
		if !h.cfg.BarBottom {
			y += int16(ws.BarHeight)
		}
		vals = append(vals, uint32(uint16(y)))
	}
	if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
		max := mon.Rect.Width - h.cfg.BorderPx
		width := ev.Width
		if width >= max {
			width = max
		}
		vals = append(vals, uint32(width))
	}
	if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
		max := mon.Rect.Height - h.cfg.BorderPx
		height := ev.Height
		if height >= max {
			height = max
		}
		vals = append(vals, uint32(height))
	}
	if ev.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		vals = append(vals, uint32(ev.BorderWidth))
	}
	if ev.ValueMask&xproto.ConfigWindowSibling != 0 {
		vals = append(vals, uint32(ev.Sibling))
	}
	if ev.ValueMask&xproto.ConfigWindowStackMode != 0 {
		vals = append(vals, uint32(ev.StackMode))
	}

	h.conn.ConfigureWindow(ev.Window, ev.ValueMask, vals)
	h.arrange(ws)
}

func (h *Handler) clientMessage(ev xproto.ClientMessageEvent) {
	c := h.state.FindClient(ev.Window)
	data := ev.Data.Data32
	if ev.Format != 32 || len(data) < 3 {
		slog.Debug("Malformed client message", "type", ev.Type)
		return
	}

	mon := h.state.FocusedMonitor()

	switch {
	case c != nil && ev.Type == h.atoms.NetWMState:
		h.processWMState(c, xproto.Atom(data[1]), data[0])
		if data[2] != 0 {
			h.processWMState(c, xproto.Atom(data[2]), data[0])
		}
	case c != nil && ev.Type == h.atoms.NetCloseWindow:
		slog.Info("_NET_CLOSE_WINDOW: Removing client", "wid", ev.Window)
		ws := c.Workspace()
		h.removeClient(c, true)
		h.arrange(ws)
	case c != nil && ev.Type == h.atoms.NetActiveWindow:
		slog.Info("_NET_ACTIVE_WINDOW: Focusing client", "wid", ev.Window)
		h.focusClient(c)
	case c != nil && ev.Type == h.atoms.NetCurrentDesktop && data[0] < uint32(mon.WorkspaceCount()):
		slog.Info("_NET_CURRENT_DESKTOP: Changing workspace", "index", data[0])
		h.changeWorkspace(mon, int(data[0]))
	default:
		slog.Debug("Unhandled client message", "type", ev.Type)
	}
}

func (h *Handler) processWMState(c *Client, state xproto.Atom, action uint32) {
	if state != h.atoms.NetWMStateFullscreen {
		slog.Debug("Unhandled window state", "atom", state)
		return
	}

	switch action {
	case netWMStateRemove:
		c.IsFullscreen = false
	case netWMStateAdd:
		c.IsFullscreen = true
	case netWMStateToggle:
		c.IsFullscreen = !c.IsFullscreen
	default:
		slog.Debug("Unknown window state action", "action", action)
		return
	}

	if !c.IsFullscreen {
		h.conn.SetBorder(c.Win, h.cfg.BorderPx, h.cfg.BorderUnfocus)
	}
	h.arrange(c.Workspace())
}

func (h *Handler) enterNotify(ev xproto.EnterNotifyEvent) {
	slog.Debug("Enter event", "wid", ev.Event)

	h.focusMonitor(h.state.MonitorAt(ev.RootX, ev.RootY))

	// Zoom shows a single window whose focus is implicit, so pointer
	// crossings must not steal it.
	if h.cfg.FocusMouse && h.state.ActiveWorkspace().Layout != LayoutZoom {
		h.focusWindow(ev.Event)
	}
}

func (h *Handler) buttonPress(ev xproto.ButtonPressEvent) {
	slog.Info("Button pressed", "button", ev.Detail, "x", ev.EventX, "y", ev.EventY)

	// The reported event window does not always resolve to a managed
	// client; focusWindow stays best-effort.
	if h.cfg.FocusMouseClick && ev.Detail == xproto.ButtonIndex1 {
		h.focusWindow(ev.Event)
	}

	if h.cfg.FocusMouseClick {
		h.conn.ReplayPointer(ev.Time)
		h.conn.Flush()
	}
}

func (h *Handler) unhandled(ev xgb.Event) {
	slog.Debug("Unhandled event", "event", pp.Sprint(ev))
}

// removeClient drops a client from the registry. Forced removal skips
// protocol-level cleanup because the window itself is already gone.
func (h *Handler) removeClient(c *Client, forced bool) {
	if !forced {
		h.conn.UngrabButtons(c.Win)
	}

	ws := c.Workspace()
	refocus := ws != nil && ws.Focused() == c
	h.state.RemoveClient(c)

	if refocus {
		if next := ws.Focused(); next != nil {
			h.focusClient(next)
		}
	}
}

func (h *Handler) changeWorkspace(m *Monitor, index int) {
	old := m.ActiveWorkspace()
	next := m.WorkspaceByIndex(index)
	if next == nil || next == old {
		return
	}

	for _, c := range old.Clients() {
		h.conn.MoveResize(c.Win, hiddenRect(m.Rect, clientRect(m, c)))
	}

	m.activate(index)
	h.arrange(next)

	if c := next.Focused(); c != nil {
		h.focusClient(c)
	} else {
		h.statusRefresh()
	}
}

func clientRect(m *Monitor, c *Client) x11.Rect {
	if c.IsFloating || c.IsFullscreen {
		return c.Rect
	}
	return m.Rect
}

func (h *Handler) arrange(ws *Workspace) {
	Arrange(h.conn, h.cfg, h.state.MonitorOf(ws), ws)
	h.statusRefresh()
}

func (h *Handler) statusRefresh() {
	bus.Publish(StatusEvent{Snapshot: h.state.Snapshot()})
}

// Adopt manages windows that already existed before the manager
// started, the same way a map request would.
func (h *Handler) Adopt(windows []xproto.Window) {
	for _, win := range windows {
		attrs, ok := h.conn.Attributes(win)
		if !ok || attrs.OverrideRedirect || !attrs.Viewable {
			continue
		}
		h.manage(win)
	}
}
