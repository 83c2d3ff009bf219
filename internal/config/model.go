package config

var defaultConfig = Config{
	Colors: Colors{
		Focus:   "#f9f5d7",
		Unfocus: "#282828",
	},
	Font:           "fixed",
	Gap:            10,
	BarHeight:      20,
	MasterFraction: 0.55,
	Terminal:       []string{"kitty"},
	Launcher:       []string{"dmenu_run"},
	Bindings:       []Binding{},
}

type Config struct {
	Colors         Colors    `yaml:"colors"`
	Font           string    `yaml:"font"`
	Gap            int       `yaml:"gap"`
	BarHeight      int       `yaml:"bar_height"`
	MasterFraction float64   `yaml:"master_fraction"`
	Terminal       []string  `yaml:"terminal"`
	Launcher       []string  `yaml:"launcher"`
	Bindings       []Binding `yaml:"bindings"`
}

type Colors struct {
	Focus   string `yaml:"focus"`
	Unfocus string `yaml:"unfocus"`
}

// Binding spawns a command on Super+Shift+<key>. Key is a single
// character; letters and digits map directly onto keysyms.
type Binding struct {
	UUID string   `yaml:"uuid"`
	Key  string   `yaml:"key"`
	Exec []string `yaml:"exec"`
}
