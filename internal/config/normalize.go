package config

import "github.com/google/uuid"

// Normalize assigns identities to workspaces that were added to the
// config file by hand without one.
func Normalize(store Store) error {
	return store.UpdateConfig(func(cfg Config) (Config, error) {
		for i := range cfg.Workspaces {
			if cfg.Workspaces[i].UUID == "" {
				cfg.Workspaces[i].UUID = uuid.NewString()
			}
		}

		return cfg, nil
	})
}
