package config

var defaultConfig = Config{
	FocusMouse:       true,
	FocusMouseClick:  true,
	CenterFloating:   true,
	BarBottom:        false,
	BarHeight:        20,
	BorderPx:         2,
	BorderFocus:      0x70898f,
	BorderUnfocus:    0x555555,
	FloatSpawnWidth:  500,
	FloatSpawnHeight: 500,
	Workspaces: []Workspace{
		{Name: "one", Layout: "hstack"},
		{Name: "two", Layout: "hstack"},
		{Name: "three", Layout: "hstack"},
		{Name: "four", Layout: "grid"},
		{Name: "five", Layout: "zoom"},
	},
}

type Config struct {
	FocusMouse       bool        `yaml:"focus_mouse"`
	FocusMouseClick  bool        `yaml:"focus_mouse_click"`
	CenterFloating   bool        `yaml:"center_floating"`
	BarBottom        bool        `yaml:"bar_bottom"`
	BarHeight        uint16      `yaml:"bar_height"`
	BorderPx         uint16      `yaml:"border_px"`
	BorderFocus      uint32      `yaml:"border_focus"`
	BorderUnfocus    uint32      `yaml:"border_unfocus"`
	FloatSpawnWidth  uint16      `yaml:"float_spawn_width"`
	FloatSpawnHeight uint16      `yaml:"float_spawn_height"`
	Workspaces       []Workspace `yaml:"workspaces"`
}

type Workspace struct {
	UUID   string `yaml:"uuid"`
	Name   string `yaml:"name"`
	Layout string `yaml:"layout"` // [hstack, vstack, grid, zoom, floating]
}
