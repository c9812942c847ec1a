package wm

import (
	"github.com/MohitParekh7765/howm/internal/config"
	"github.com/MohitParekh7765/howm/internal/x11"
)

// Arrange recomputes and applies geometry for every client on the
// workspace. Idempotent, safe to call after any structural change.
// Floating clients keep their own rect, fullscreen clients cover the
// whole monitor, hidden clients are parked off-screen.
func Arrange(conn XConn, cfg config.Config, mon *Monitor, ws *Workspace) {
	if mon == nil || ws == nil {
		return
	}

	usable := UsableRect(mon.Rect, ws.BarHeight, cfg.BarBottom)

	var tiled []*Client
	for _, c := range ws.Clients() {
		switch {
		case c.IsFullscreen:
			conn.SetBorder(c.Win, 0, cfg.BorderUnfocus)
			conn.MoveResize(c.Win, mon.Rect)
		case c.IsFloating:
			conn.MoveResize(c.Win, c.Rect)
		default:
			tiled = append(tiled, c)
		}
	}
	if len(tiled) == 0 {
		return
	}

	switch ws.Layout {
	case LayoutZoom:
		// One visible window; the rest are parked until they gain focus.
		zoomed := ws.Focused()
		if zoomed == nil || zoomed.IsFloating || zoomed.IsFullscreen {
			zoomed = tiled[0]
		}
		for _, c := range tiled {
			if c == zoomed {
				conn.MoveResize(c.Win, usable)
			} else {
				conn.MoveResize(c.Win, hiddenRect(mon.Rect, usable))
			}
		}
	case LayoutFloating:
		// Geometry is client/user controlled, nothing to tile.
	default:
		rects := TileRects(ws.Layout, usable, len(tiled))
		for i, c := range tiled {
			conn.MoveResize(c.Win, rects[i])
		}
	}
}

// UsableRect is the monitor rect minus the status bar strip.
func UsableRect(mon x11.Rect, barHeight uint16, barBottom bool) x11.Rect {
	r := mon
	if barHeight >= r.Height {
		return r
	}
	r.Height -= barHeight
	if !barBottom {
		r.Y += int16(barHeight)
	}
	return r
}

// TileRects computes one rect per tiled client within the usable area.
func TileRects(mode LayoutMode, area x11.Rect, n int) []x11.Rect {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []x11.Rect{area}
	}

	switch mode {
	case LayoutVStack:
		return stackRects(area, n, false)
	case LayoutGrid:
		return gridRects(area, n)
	default:
		return stackRects(area, n, true)
	}
}

// stackRects splits the area into a master half and an evenly divided
// stack. Horizontal puts the master on the left with the stack rows on
// the right; vertical puts the master on top with stack columns below.
func stackRects(area x11.Rect, n int, horizontal bool) []x11.Rect {
	rects := make([]x11.Rect, n)

	if horizontal {
		masterWidth := area.Width / 2
		rects[0] = x11.Rect{X: area.X, Y: area.Y, Width: masterWidth, Height: area.Height}

		stackX := area.X + int16(masterWidth)
		stackWidth := area.Width - masterWidth
		rowHeight := area.Height / uint16(n-1)
		for i := 1; i < n; i++ {
			rects[i] = x11.Rect{
				X:      stackX,
				Y:      area.Y + int16(rowHeight*uint16(i-1)),
				Width:  stackWidth,
				Height: rowHeight,
			}
		}
		return rects
	}

	masterHeight := area.Height / 2
	rects[0] = x11.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: masterHeight}

	stackY := area.Y + int16(masterHeight)
	stackHeight := area.Height - masterHeight
	colWidth := area.Width / uint16(n-1)
	for i := 1; i < n; i++ {
		rects[i] = x11.Rect{
			X:      area.X + int16(colWidth*uint16(i-1)),
			Y:      stackY,
			Width:  colWidth,
			Height: stackHeight,
		}
	}
	return rects
}

func gridRects(area x11.Rect, n int) []x11.Rect {
	columns, rows := 0, 0
	for columns*rows < n {
		columns++
		if columns*rows >= n {
			break
		}
		rows++
	}

	cellWidth := area.Width / uint16(columns)
	cellHeight := area.Height / uint16(rows)

	rects := make([]x11.Rect, n)
	for i := range rects {
		col := i % columns
		row := i / columns
		rects[i] = x11.Rect{
			X:      area.X + int16(cellWidth*uint16(col)),
			Y:      area.Y + int16(cellHeight*uint16(row)),
			Width:  cellWidth,
			Height: cellHeight,
		}
	}
	return rects
}

// hiddenRect keeps the size but parks the window past the monitor's
// right edge where it cannot be seen.
func hiddenRect(mon x11.Rect, r x11.Rect) x11.Rect {
	r.X = int16(int(mon.X) + int(mon.Width)*2)
	return r
}
