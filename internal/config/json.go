package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"hackline/internal/flagx"
)

// jsonDuration lets JSON specify intervals either as strings like "10s"
// or as integer nanoseconds.
type jsonDuration struct {
	time.Duration
}

func (d *jsonDuration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		d.Duration = time.Duration(t)
		return nil
	case string:
		parsed, err := time.ParseDuration(t)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value %s", string(b))
	}
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	ServerBaseURL   string       `json:"server_base_url"`
	RequestTimeout  jsonDuration `json:"request_timeout"`
	CredentialsPath string       `json:"credentials_path"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is set, nothing is
// loaded. Panics on read or unmarshal errors. Only fields present in the
// file override the current values.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CredentialsPath != "" {
		cfg.CredentialsPath = jc.CredentialsPath
	}
}
