package wm

import (
	"testing"

	"github.com/MohitParekh7765/howm/internal/x11"
)

func TestUsableRect(t *testing.T) {
	mon := x11.Rect{Width: 1920, Height: 1080}

	for _, tt := range []struct {
		name      string
		barHeight uint16
		barBottom bool
		want      x11.Rect
	}{
		{"top bar", 20, false, x11.Rect{Y: 20, Width: 1920, Height: 1060}},
		{"bottom bar", 20, true, x11.Rect{Width: 1920, Height: 1060}},
		{"no bar", 0, false, x11.Rect{Width: 1920, Height: 1080}},
		{"bar taller than monitor", 2000, false, x11.Rect{Width: 1920, Height: 1080}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := UsableRect(mon, tt.barHeight, tt.barBottom); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTileRectsSingleClientFillsArea(t *testing.T) {
	area := x11.Rect{Y: 20, Width: 1920, Height: 1060}

	for _, mode := range []LayoutMode{LayoutHStack, LayoutVStack, LayoutGrid} {
		rects := TileRects(mode, area, 1)
		if len(rects) != 1 || rects[0] != area {
			t.Fatalf("%s: single client must fill the area, got %+v", mode, rects)
		}
	}
}

func TestTileRectsHStack(t *testing.T) {
	area := x11.Rect{Y: 20, Width: 1920, Height: 1060}
	rects := TileRects(LayoutHStack, area, 3)

	want := []x11.Rect{
		{X: 0, Y: 20, Width: 960, Height: 1060},
		{X: 960, Y: 20, Width: 960, Height: 530},
		{X: 960, Y: 550, Width: 960, Height: 530},
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d: got %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestTileRectsVStack(t *testing.T) {
	area := x11.Rect{Width: 1000, Height: 800}
	rects := TileRects(LayoutVStack, area, 3)

	want := []x11.Rect{
		{X: 0, Y: 0, Width: 1000, Height: 400},
		{X: 0, Y: 400, Width: 500, Height: 400},
		{X: 500, Y: 400, Width: 500, Height: 400},
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d: got %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestTileRectsGrid(t *testing.T) {
	area := x11.Rect{Width: 1000, Height: 800}
	rects := TileRects(LayoutGrid, area, 4)

	want := []x11.Rect{
		{X: 0, Y: 0, Width: 500, Height: 400},
		{X: 500, Y: 0, Width: 500, Height: 400},
		{X: 0, Y: 400, Width: 500, Height: 400},
		{X: 500, Y: 400, Width: 500, Height: 400},
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d: got %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestTileRectsGridUnevenCount(t *testing.T) {
	area := x11.Rect{Width: 1200, Height: 800}
	rects := TileRects(LayoutGrid, area, 3)

	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	// 3 clients fit a 2x2 grid with one cell left empty.
	if rects[0].Width != 600 || rects[0].Height != 400 {
		t.Fatalf("expected 600x400 cells, got %+v", rects[0])
	}
	if rects[2].X != 0 || rects[2].Y != 400 {
		t.Fatalf("third cell belongs on the second row, got %+v", rects[2])
	}
}

func TestHiddenRectParksOffscreen(t *testing.T) {
	mon := x11.Rect{Width: 1920, Height: 1080}
	r := hiddenRect(mon, x11.Rect{X: 100, Y: 20, Width: 800, Height: 600})

	if int(r.X) < int(mon.X)+int(mon.Width) {
		t.Fatalf("hidden rect must be past the right edge, got x=%d", r.X)
	}
	if r.Width != 800 || r.Height != 600 || r.Y != 20 {
		t.Fatalf("hidden rect must keep size and vertical position, got %+v", r)
	}
}

func TestArrangeZoomShowsOnlyFocused(t *testing.T) {
	cfg := testConfig()
	conn := newFakeConn()
	mon := NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)
	ws := mon.WorkspaceByIndex(2) // zoom layout

	a := &Client{Win: 10}
	b := &Client{Win: 11}
	ws.insert(a)
	ws.insert(b)
	ws.SetFocused(b)

	Arrange(conn, cfg, mon, ws)

	usable := UsableRect(mon.Rect, ws.BarHeight, cfg.BarBottom)
	if got := conn.moved[11]; got != usable {
		t.Fatalf("focused client must fill the usable area, got %+v", got)
	}
	if got := conn.moved[10]; int(got.X) < int(mon.Rect.Width) {
		t.Fatalf("unfocused client must be parked off-screen, got %+v", got)
	}
}

func TestArrangeFullscreenCoversMonitor(t *testing.T) {
	cfg := testConfig()
	conn := newFakeConn()
	mon := NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)
	ws := mon.ActiveWorkspace()

	c := &Client{Win: 10, IsFullscreen: true}
	ws.insert(c)

	Arrange(conn, cfg, mon, ws)

	if got := conn.moved[10]; got != mon.Rect {
		t.Fatalf("fullscreen client must cover the monitor, got %+v", got)
	}
}

func TestArrangeFloatingKeepsOwnRect(t *testing.T) {
	cfg := testConfig()
	conn := newFakeConn()
	mon := NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)
	ws := mon.ActiveWorkspace()

	own := x11.Rect{X: 50, Y: 60, Width: 300, Height: 200}
	c := &Client{Win: 10, IsFloating: true, Rect: own}
	ws.insert(c)

	Arrange(conn, cfg, mon, ws)

	if got := conn.moved[10]; got != own {
		t.Fatalf("floating client must keep its rect, got %+v", got)
	}
}

func TestArrangeFloatingLayoutTouchesNothing(t *testing.T) {
	cfg := testConfig()
	conn := newFakeConn()
	mon := NewMonitor(x11.Rect{Width: 1920, Height: 1080}, cfg)
	ws := mon.ActiveWorkspace()
	ws.Layout = LayoutFloating

	ws.insert(&Client{Win: 10})
	ws.insert(&Client{Win: 11})

	Arrange(conn, cfg, mon, ws)

	if len(conn.moved) != 0 {
		t.Fatalf("floating layout must not move tiled clients, got %v", conn.moved)
	}
}
