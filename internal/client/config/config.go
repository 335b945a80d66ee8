// Package config assembles the client's runtime settings from defaults,
// an optional JSON file, and command-line flags, in that order; later
// sources win.
package config

// Config holds runtime settings for the eventos CLI.
//
// Fields:
//   - BaseURL: base address of the REST backend, including the /api prefix.
//   - StatePath: path of the SQLite file holding durable client state
//     (the persisted bearer token).
type Config struct {
	BaseURL   string
	StatePath string
}

// LoadDefaults populates c with the development defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000/api"
	c.StatePath = "eventos.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
