package config

import "testing"

func TestStoreSeedsDefaults(t *testing.T) {
	store, err := NewStore(NewMemory())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	cfg, err := store.GetConfig()
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if cfg.Colors.Focus != "#f9f5d7" || cfg.Colors.Unfocus != "#282828" {
		t.Fatalf("default colors = %+v", cfg.Colors)
	}
	if cfg.Gap != 10 || cfg.BarHeight != 20 || cfg.MasterFraction != 0.55 {
		t.Fatalf("default layout constants = %+v", cfg)
	}
	if len(cfg.Terminal) == 0 || len(cfg.Launcher) == 0 {
		t.Fatalf("default commands missing: %+v", cfg)
	}
}

func TestNormalizeAssignsBindingUUIDs(t *testing.T) {
	driver := NewMemory()
	store, err := NewStore(driver)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	err = store.UpdateConfig(func(cfg Config) (Config, error) {
		cfg.Bindings = []Binding{{Key: "z", Exec: []string{"firefox"}}}
		return cfg, nil
	})
	if err != nil {
		t.Fatalf("update config: %v", err)
	}

	if err := Normalize(store); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	cfg, err := store.GetConfig()
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if cfg.Bindings[0].UUID == "" {
		t.Fatalf("normalize must assign a uuid")
	}
}

func TestNormalizeRejectsBadValues(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"master fraction": func(cfg *Config) { cfg.MasterFraction = 1.5 },
		"gap":             func(cfg *Config) { cfg.Gap = -1 },
		"bar height":      func(cfg *Config) { cfg.BarHeight = 0 },
		"font":            func(cfg *Config) { cfg.Font = "" },
		"binding key":     func(cfg *Config) { cfg.Bindings = []Binding{{Key: "zz", Exec: []string{"x"}}} },
		"binding exec":    func(cfg *Config) { cfg.Bindings = []Binding{{Key: "z"}} },
	} {
		store, err := NewStore(NewMemory())
		if err != nil {
			t.Fatalf("%s: new store: %v", name, err)
		}
		err = store.UpdateConfig(func(cfg Config) (Config, error) {
			mutate(&cfg)
			return cfg, nil
		})
		if err != nil {
			t.Fatalf("%s: update config: %v", name, err)
		}
		if err := Normalize(store); err == nil {
			t.Fatalf("%s: normalize must reject the config", name)
		}
	}
}
