package config

import (
	"encoding/json"
	"os"

	"github.com/kevinsebalee/eventos-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; parsed
// values are copied into the runtime Config.
type JsonConfig struct {
	BaseURL   string `json:"base_url"`
	StatePath string `json:"state_path"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag, no file, no effect. Empty JSON fields leave
// the current value alone. Read or unmarshal errors panic; the config
// file being present but broken is not a state to limp on from.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.StatePath != "" {
		cfg.StatePath = jc.StatePath
	}
}
