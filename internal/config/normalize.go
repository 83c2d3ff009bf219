package config

import (
	"fmt"

	"github.com/google/uuid"
)

// Normalize assigns identifiers to bindings that are missing one and
// validates the fields the layout engine cannot tolerate being wrong.
func Normalize(store Store) error {
	return store.UpdateConfig(func(cfg Config) (Config, error) {
		for i := range cfg.Bindings {
			if cfg.Bindings[i].UUID == "" {
				cfg.Bindings[i].UUID = uuid.NewString()
			}
			if len(cfg.Bindings[i].Key) != 1 {
				return Config{}, fmt.Errorf("binding %s: key must be a single character, got %q", cfg.Bindings[i].UUID, cfg.Bindings[i].Key)
			}
			if len(cfg.Bindings[i].Exec) == 0 {
				return Config{}, fmt.Errorf("binding %s: exec is empty", cfg.Bindings[i].UUID)
			}
		}

		if cfg.MasterFraction <= 0 || cfg.MasterFraction >= 1 {
			return Config{}, fmt.Errorf("master_fraction %v is out of (0, 1)", cfg.MasterFraction)
		}
		if cfg.Gap < 0 {
			return Config{}, fmt.Errorf("gap %d is negative", cfg.Gap)
		}
		if cfg.BarHeight <= 0 {
			return Config{}, fmt.Errorf("bar_height %d must be positive", cfg.BarHeight)
		}
		if cfg.Font == "" {
			return Config{}, fmt.Errorf("font is empty")
		}

		return cfg, nil
	})
}
