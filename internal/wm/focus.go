package wm

import (
	"log/slog"

	"github.com/jezek/xgb/xproto"
)

// focusClient transfers input focus to a managed client and swaps the
// border colors between the previously focused client and the new one.
func (h *Handler) focusClient(c *Client) {
	if c == nil {
		return
	}

	ws := c.Workspace()
	if ws == nil {
		return
	}

	if prev := ws.Focused(); prev != nil && prev != c {
		h.conn.SetBorder(prev.Win, h.cfg.BorderPx, h.cfg.BorderUnfocus)
	}
	ws.SetFocused(c)

	if !c.IsFullscreen {
		h.conn.SetBorder(c.Win, h.cfg.BorderPx, h.cfg.BorderFocus)
	}
	h.conn.SetInputFocus(c.Win)
	h.conn.SetActiveWindow(c.Win)

	if ws.Layout == LayoutZoom {
		h.arrange(ws)
		return
	}
	h.statusRefresh()
}

// focusWindow focuses the client owning the window handle. Best-effort:
// the handle may belong to an unmanaged window.
func (h *Handler) focusWindow(win xproto.Window) {
	c := h.state.FindClient(win)
	if c == nil {
		slog.Debug("No client for window", "wid", win)
		return
	}
	h.focusClient(c)
}

func (h *Handler) focusMonitor(m *Monitor) {
	if m == nil || m == h.state.FocusedMonitor() {
		return
	}

	h.state.SetFocusedMonitor(m)
	if c := m.ActiveWorkspace().Focused(); c != nil {
		h.conn.SetInputFocus(c.Win)
	}
	h.statusRefresh()
}
