// Package x11 wraps the xgb connection behind the small set of queries
// and side effects the window manager core needs. Classification queries
// are best-effort: a failed round-trip yields the zero value and false,
// never an error.
package x11

import (
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type Rect struct {
	X      int16  `json:"x"`
	Y      int16  `json:"y"`
	Width  uint16 `json:"width"`
	Height uint16 `json:"height"`
}

type WindowAttributes struct {
	OverrideRedirect bool
	Viewable         bool
}

type Conn struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	atoms  Atoms
}

func New(conn *xgb.Conn) (*Conn, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)

	atoms, err := internAtoms(conn)
	if err != nil {
		return nil, err
	}

	return &Conn{
		conn:   conn,
		screen: screen,
		atoms:  atoms,
	}, nil
}

func (c *Conn) Atoms() Atoms               { return c.atoms }
func (c *Conn) Root() xproto.Window        { return c.screen.Root }
func (c *Conn) Screen() *xproto.ScreenInfo { return c.screen }

// BecomeWM claims substructure redirection on the root window. Fails if
// another window manager is already running on the display.
func (c *Conn) BecomeWM() error {
	return xproto.ChangeWindowAttributesChecked(c.conn, c.screen.Root,
		xproto.CwEventMask,
		[]uint32{
			xproto.EventMaskSubstructureRedirect |
				xproto.EventMaskSubstructureNotify |
				xproto.EventMaskButtonPress,
		}).Check()
}

func (c *Conn) SetRootCursor(cursor xproto.Cursor) {
	xproto.ChangeWindowAttributes(c.conn, c.screen.Root, xproto.CwCursor, []uint32{uint32(cursor)})
}

// TopLevelWindows lists the current children of the root window.
func (c *Conn) TopLevelWindows() []xproto.Window {
	tree, err := xproto.QueryTree(c.conn, c.screen.Root).Reply()
	if err != nil {
		slog.Debug("Query tree failed", "error", err)
		return nil
	}
	return tree.Children
}

func (c *Conn) WaitForEvent() (xgb.Event, error) {
	return c.conn.WaitForEvent()
}

func (c *Conn) Attributes(win xproto.Window) (WindowAttributes, bool) {
	reply, err := xproto.GetWindowAttributes(c.conn, win).Reply()
	if err != nil || reply == nil {
		return WindowAttributes{}, false
	}
	return WindowAttributes{
		OverrideRedirect: reply.OverrideRedirect,
		Viewable:         reply.MapState == xproto.MapStateViewable,
	}, true
}

// WindowTypes returns the window's _NET_WM_WINDOW_TYPE atoms in server
// order, or nil when the property is absent or the query fails.
func (c *Conn) WindowTypes(win xproto.Window) []xproto.Atom {
	reply, err := xproto.GetProperty(c.conn, false, win, c.atoms.NetWMWindowType,
		xproto.AtomAtom, 0, 32).Reply()
	if err != nil || reply == nil || reply.Format != 32 {
		return nil
	}

	types := make([]xproto.Atom, 0, reply.ValueLen)
	for v := reply.Value; len(v) >= 4; v = v[4:] {
		types = append(types, xproto.Atom(decode32(v)))
	}
	return types
}

// TransientFor reports the window named by WM_TRANSIENT_FOR. The second
// return is false when the property is absent, zero or unreadable.
func (c *Conn) TransientFor(win xproto.Window) (xproto.Window, bool) {
	reply, err := xproto.GetProperty(c.conn, false, win, xproto.AtomWmTransientFor,
		xproto.AtomWindow, 0, 1).Reply()
	if err != nil || reply == nil || reply.Format != 32 || len(reply.Value) < 4 {
		return 0, false
	}

	transient := xproto.Window(decode32(reply.Value))
	return transient, transient != 0
}

func (c *Conn) Geometry(win xproto.Window) (Rect, bool) {
	reply, err := xproto.GetGeometry(c.conn, xproto.Drawable(win)).Reply()
	if err != nil || reply == nil {
		return Rect{}, false
	}
	return Rect{X: reply.X, Y: reply.Y, Width: reply.Width, Height: reply.Height}, true
}

func (c *Conn) MapWindow(win xproto.Window) {
	xproto.MapWindow(c.conn, win)
}

func (c *Conn) ConfigureWindow(win xproto.Window, mask uint16, values []uint32) {
	xproto.ConfigureWindow(c.conn, win, mask, values)
}

func (c *Conn) MoveResize(win xproto.Window, r Rect) {
	xproto.ConfigureWindow(c.conn, win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(uint16(r.X)), uint32(uint16(r.Y)), uint32(r.Width), uint32(r.Height)})
}

func (c *Conn) SetInputFocus(win xproto.Window) {
	xproto.SetInputFocus(c.conn, xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime)
}

func (c *Conn) SetBorder(win xproto.Window, width uint16, pixel uint32) {
	xproto.ConfigureWindow(c.conn, win, xproto.ConfigWindowBorderWidth, []uint32{uint32(width)})
	xproto.ChangeWindowAttributes(c.conn, win, xproto.CwBorderPixel, []uint32{pixel})
}

// SelectClientEvents subscribes to the events a managed window must
// report (pointer entry and focus changes).
func (c *Conn) SelectClientEvents(win xproto.Window) {
	xproto.ChangeWindowAttributes(c.conn, win, xproto.CwEventMask,
		[]uint32{xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange})
}

// GrabButtons installs the click-to-focus button grabs. The pointer is
// grabbed synchronously so the press can be replayed to the client.
func (c *Conn) GrabButtons(win xproto.Window) {
	for _, button := range []byte{
		byte(xproto.ButtonIndex1),
		byte(xproto.ButtonIndex2),
		byte(xproto.ButtonIndex3),
	} {
		xproto.GrabButton(c.conn, false, win, uint16(xproto.EventMaskButtonPress),
			xproto.GrabModeSync, xproto.GrabModeAsync,
			xproto.WindowNone, xproto.CursorNone, button, xproto.ModMaskAny)
	}
}

func (c *Conn) UngrabButtons(win xproto.Window) {
	xproto.UngrabButton(c.conn, byte(xproto.ButtonIndexAny), win, xproto.ModMaskAny)
}

// ReplayPointer releases a synchronously grabbed button press back to
// the client that would have received it.
func (c *Conn) ReplayPointer(t xproto.Timestamp) {
	xproto.AllowEvents(c.conn, xproto.AllowReplayPointer, t)
}

// Flush forces a round-trip so queued one-way requests reach the server.
func (c *Conn) Flush() {
	c.conn.Sync()
}

func (c *Conn) SetActiveWindow(win xproto.Window) {
	data := make([]byte, 4)
	encode32(data, uint32(win))
	xproto.ChangeProperty(c.conn, xproto.PropModeReplace, c.screen.Root,
		c.atoms.NetActiveWindow, xproto.AtomWindow, 32, 1, data)
}

// SendCurrentDesktop emits a _NET_CURRENT_DESKTOP client message to the
// root window, the way an EWMH pager requests a workspace switch. The
// message re-enters the event loop like any other client message.
func (c *Conn) SendCurrentDesktop(win xproto.Window, index uint32) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   c.atoms.NetCurrentDesktop,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{index, 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(c.conn, false, c.screen.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes())).Check()
}

func decode32(v []byte) uint32 {
	return uint32(v[0]) | uint32(v[1])<<8 | uint32(v[2])<<16 | uint32(v[3])<<24
}

func encode32(v []byte, u uint32) {
	v[0] = byte(u)
	v[1] = byte(u >> 8)
	v[2] = byte(u >> 16)
	v[3] = byte(u >> 24)
}
