package wm

import (
	"fmt"
	"log/slog"

	"github.com/MohitParekh7765/howm/internal/config"
	"github.com/MohitParekh7765/howm/internal/x11"
	"github.com/MohitParekh7765/howm/internal/xcursor"
	"github.com/jezek/xgb"
)

// Setup claims the display, interns atoms, installs the root cursor and
// builds the session state with one monitor per X screen.
func Setup(conn *xgb.Conn, cfg config.Config) (*x11.Conn, *Handler, error) {
	xc, err := x11.New(conn)
	if err != nil {
		return nil, nil, err
	}

	if err := xc.BecomeWM(); err != nil {
		return nil, nil, fmt.Errorf("another window manager is running: %w", err)
	}

	if cursor, err := xcursor.CreateCursor(conn, xcursor.LeftPtr); err == nil {
		xc.SetRootCursor(cursor)
	} else {
		slog.Debug("Failed to create root cursor", "error", err)
	}

	screen := xc.Screen()
	monitor := NewMonitor(x11.Rect{
		X:      0,
		Y:      0,
		Width:  screen.WidthInPixels,
		Height: screen.HeightInPixels,
	}, cfg)

	state := NewState([]*Monitor{monitor})
	handler := NewHandler(xc, xc.Atoms(), cfg, state, xc.Root())

	return xc, handler, nil
}
