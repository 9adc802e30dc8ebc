package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/printdvor/storefront-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// strings in time.ParseDuration format ("15s", "1m30s"). Zero values mean
// "keep the current setting".
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	RequestTimeout string `json:"request_timeout"`
	DatabasePath   string `json:"database_path"`
	MaxQuantity    int    `json:"max_quantity"`
}

// parseJson overlays cfg with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags (flagx.JsonConfigFlags); when
// no path is given nothing is loaded. Read or unmarshal errors panic, the
// intended usage being defaults -> parseJson -> parseFlags at startup.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.MaxQuantity > 0 {
		cfg.MaxQuantity = jc.MaxQuantity
	}
}
