package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ekozlova/artshop/internal/flagx"
	"github.com/ekozlova/artshop/internal/timex"
)

// jsonConfig is the DTO for the optional JSON config file. timex.Duration
// lets the file say "10s" as well as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LocalDBPath    string         `json:"local_db_path"`
}

// parseJSON overlays Config with values from the file given via -c/-config.
// Absent flag means no file is loaded. Only fields present in the file
// override the current values. Read or parse errors panic; config is loaded
// once at startup and a broken file should stop the program.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
}
