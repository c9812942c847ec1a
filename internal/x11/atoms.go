package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Atoms holds the EWMH atoms used for window classification and client
// messages, interned once when the connection is set up.
type Atoms struct {
	NetWMWindowType             xproto.Atom
	NetWMWindowTypeDock         xproto.Atom
	NetWMWindowTypeToolbar      xproto.Atom
	NetWMWindowTypeNotification xproto.Atom
	NetWMWindowTypeDropdownMenu xproto.Atom
	NetWMWindowTypeSplash       xproto.Atom
	NetWMWindowTypePopupMenu    xproto.Atom
	NetWMWindowTypeTooltip      xproto.Atom
	NetWMWindowTypeDialog       xproto.Atom
	NetWMState                  xproto.Atom
	NetWMStateFullscreen        xproto.Atom
	NetCloseWindow              xproto.Atom
	NetActiveWindow             xproto.Atom
	NetCurrentDesktop           xproto.Atom
}

func internAtoms(conn *xgb.Conn) (Atoms, error) {
	var atoms Atoms
	for _, a := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"_NET_WM_WINDOW_TYPE", &atoms.NetWMWindowType},
		{"_NET_WM_WINDOW_TYPE_DOCK", &atoms.NetWMWindowTypeDock},
		{"_NET_WM_WINDOW_TYPE_TOOLBAR", &atoms.NetWMWindowTypeToolbar},
		{"_NET_WM_WINDOW_TYPE_NOTIFICATION", &atoms.NetWMWindowTypeNotification},
		{"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU", &atoms.NetWMWindowTypeDropdownMenu},
		{"_NET_WM_WINDOW_TYPE_SPLASH", &atoms.NetWMWindowTypeSplash},
		{"_NET_WM_WINDOW_TYPE_POPUP_MENU", &atoms.NetWMWindowTypePopupMenu},
		{"_NET_WM_WINDOW_TYPE_TOOLTIP", &atoms.NetWMWindowTypeTooltip},
		{"_NET_WM_WINDOW_TYPE_DIALOG", &atoms.NetWMWindowTypeDialog},
		{"_NET_WM_STATE", &atoms.NetWMState},
		{"_NET_WM_STATE_FULLSCREEN", &atoms.NetWMStateFullscreen},
		{"_NET_CLOSE_WINDOW", &atoms.NetCloseWindow},
		{"_NET_ACTIVE_WINDOW", &atoms.NetActiveWindow},
		{"_NET_CURRENT_DESKTOP", &atoms.NetCurrentDesktop},
	} {
		reply, err := xproto.InternAtom(conn, false, uint16(len(a.name)), a.name).Reply()
		if err != nil {
			return Atoms{}, err
		}
		*a.dst = reply.Atom
	}
	return atoms, nil
}
