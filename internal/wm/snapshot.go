package wm

import "github.com/MohitParekh7765/howm/internal/x11"

// StatusEvent carries a fresh snapshot over the bus after every
// structural change. Consumers never see live state.
type StatusEvent struct {
	Snapshot Snapshot
}

type Snapshot struct {
	FocusedMonitor int               `json:"focused_monitor"`
	Monitors       []MonitorSnapshot `json:"monitors"`
}

type MonitorSnapshot struct {
	Rect            x11.Rect            `json:"rect"`
	ActiveWorkspace int                 `json:"active_workspace"`
	Workspaces      []WorkspaceSnapshot `json:"workspaces"`
}

type WorkspaceSnapshot struct {
	UUID    string           `json:"uuid"`
	Name    string           `json:"name"`
	Layout  string           `json:"layout"`
	Focused uint32           `json:"focused,omitempty"`
	Clients []ClientSnapshot `json:"clients"`
}

type ClientSnapshot struct {
	Window     uint32   `json:"window"`
	Floating   bool     `json:"floating"`
	Transient  bool     `json:"transient"`
	Fullscreen bool     `json:"fullscreen"`
	Rect       x11.Rect `json:"rect"`
}

// Snapshot copies the visible state into an immutable value.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Monitors: make([]MonitorSnapshot, 0, len(s.monitors)),
	}

	for i, m := range s.monitors {
		if m == s.focused {
			snap.FocusedMonitor = i
		}

		ms := MonitorSnapshot{
			Rect:            m.Rect,
			ActiveWorkspace: m.ActiveIndex(),
			Workspaces:      make([]WorkspaceSnapshot, 0, m.WorkspaceCount()),
		}
		for _, ws := range m.Workspaces() {
			wss := WorkspaceSnapshot{
				UUID:    ws.UUID,
				Name:    ws.Name,
				Layout:  ws.Layout.String(),
				Clients: make([]ClientSnapshot, 0, len(ws.Clients())),
			}
			if f := ws.Focused(); f != nil {
				wss.Focused = uint32(f.Win)
			}
			for _, c := range ws.Clients() {
				wss.Clients = append(wss.Clients, ClientSnapshot{
					Window:     uint32(c.Win),
					Floating:   c.IsFloating,
					Transient:  c.IsTransient,
					Fullscreen: c.IsFullscreen,
					Rect:       c.Rect,
				})
			}
			ms.Workspaces = append(ms.Workspaces, wss)
		}
		snap.Monitors = append(snap.Monitors, ms)
	}

	return snap
}
