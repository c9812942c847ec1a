package wm

import (
	"testing"

	"github.com/MohitParekh7765/howm/internal/x11"
)

func TestParseLayoutMode(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want LayoutMode
	}{
		{"hstack", LayoutHStack},
		{"vstack", LayoutVStack},
		{"grid", LayoutGrid},
		{"zoom", LayoutZoom},
		{"floating", LayoutFloating},
		{"", LayoutHStack},
		{"bogus", LayoutHStack},
	} {
		if got := ParseLayoutMode(tt.in); got != tt.want {
			t.Errorf("ParseLayoutMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWorkspaceRemoveRefocuses(t *testing.T) {
	ws := &Workspace{}
	a := &Client{Win: 1}
	b := &Client{Win: 2}
	c := &Client{Win: 3}
	ws.insert(a)
	ws.insert(b)
	ws.insert(c)

	ws.SetFocused(b)
	ws.remove(b)
	if got := ws.Focused(); got != a {
		t.Fatalf("removing focused middle client must focus the previous one, got %+v", got)
	}

	ws.SetFocused(a)
	ws.remove(a)
	if got := ws.Focused(); got != c {
		t.Fatalf("removing focused head must focus the next one, got %+v", got)
	}

	ws.remove(c)
	if ws.Focused() != nil {
		t.Fatalf("empty workspace must have no focus")
	}
}

func TestWorkspaceSetFocusedRejectsForeignClient(t *testing.T) {
	ws := &Workspace{}
	other := &Workspace{}
	c := &Client{Win: 1}
	other.insert(c)

	ws.SetFocused(c)
	if ws.Focused() != nil {
		t.Fatalf("client of another workspace must not become focused")
	}
}

func TestMonitorAtFallsBackToFocused(t *testing.T) {
	cfg := testConfig()
	left := NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)
	right := NewMonitor(x11.Rect{X: 1920, Width: 1920, Height: 1080}, cfg)
	state := NewState([]*Monitor{left, right})

	if got := state.MonitorAt(100, 100); got != left {
		t.Fatalf("expected left monitor")
	}
	if got := state.MonitorAt(2000, 100); got != right {
		t.Fatalf("expected right monitor")
	}
	// Outside every monitor falls back to the focused one.
	state.SetFocusedMonitor(right)
	if got := state.MonitorAt(-5000, -5000); got != right {
		t.Fatalf("expected fallback to the focused monitor")
	}
}

func TestSetFocusedMonitorIgnoresUnknown(t *testing.T) {
	cfg := testConfig()
	mon := NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)
	state := NewState([]*Monitor{mon})

	state.SetFocusedMonitor(NewMonitor(x11.Rect{Width: 100, Height: 100}, cfg))
	if state.FocusedMonitor() != mon {
		t.Fatalf("unknown monitor must not become focused")
	}
}

func TestCreateAndFindClient(t *testing.T) {
	cfg := testConfig()
	state := NewState([]*Monitor{NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)})

	c := state.CreateClient(10)
	if c.Workspace() != state.ActiveWorkspace() {
		t.Fatalf("new client must live on the active workspace")
	}
	if state.FindClient(10) != c {
		t.Fatalf("FindClient must resolve the created client")
	}
	if state.FindClient(11) != nil {
		t.Fatalf("FindClient must return nil for unmanaged windows")
	}

	state.RemoveClient(c)
	if state.FindClient(10) != nil {
		t.Fatalf("removed client must not resolve")
	}
}

func TestFindClientSearchesAllWorkspaces(t *testing.T) {
	cfg := testConfig()
	mon := NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)
	state := NewState([]*Monitor{mon})

	c := state.CreateClient(10)
	mon.activate(1)

	if state.FindClient(10) != c {
		t.Fatalf("clients on inactive workspaces must still resolve")
	}
}

func TestMonitorWithoutConfiguredWorkspacesGetsDefault(t *testing.T) {
	cfg := testConfig()
	cfg.Workspaces = nil
	mon := NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)

	if mon.WorkspaceCount() != 1 {
		t.Fatalf("expected one default workspace, got %d", mon.WorkspaceCount())
	}
	if mon.ActiveWorkspace().BarHeight != cfg.BarHeight {
		t.Fatalf("default workspace must carry the bar height")
	}
}

func TestSnapshotContent(t *testing.T) {
	cfg := testConfig()
	mon := NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)
	state := NewState([]*Monitor{mon})

	c := state.CreateClient(10)
	c.IsFloating = true
	c.Rect = x11.Rect{X: 5, Y: 6, Width: 300, Height: 200}
	state.ActiveWorkspace().SetFocused(c)

	snap := state.Snapshot()

	if snap.FocusedMonitor != 0 || len(snap.Monitors) != 1 {
		t.Fatalf("unexpected monitor snapshot: %+v", snap)
	}
	ms := snap.Monitors[0]
	if ms.ActiveWorkspace != 0 || len(ms.Workspaces) != 3 {
		t.Fatalf("unexpected workspace snapshot: %+v", ms)
	}
	ws := ms.Workspaces[0]
	if ws.Name != "one" || ws.Layout != "hstack" || ws.Focused != 10 {
		t.Fatalf("unexpected workspace content: %+v", ws)
	}
	if len(ws.Clients) != 1 {
		t.Fatalf("expected one client, got %d", len(ws.Clients))
	}
	cs := ws.Clients[0]
	if cs.Window != 10 || !cs.Floating || cs.Fullscreen || cs.Rect != c.Rect {
		t.Fatalf("unexpected client snapshot: %+v", cs)
	}

	// Snapshots are values; mutating live state must not leak through.
	c.IsFullscreen = true
	if snap.Monitors[0].Workspaces[0].Clients[0].Fullscreen {
		t.Fatalf("snapshot must not alias live state")
	}
}
