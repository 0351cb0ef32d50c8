package config

import (
	"encoding/json"
	"os"

	"github.com/ekuzmina/shopfront/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero so the JSON file only overrides
// what it mentions.
type JsonConfig struct {
	Backend         *string `json:"backend"`
	SQLitePath      *string `json:"sqlite_path"`
	PostgresDSN     *string `json:"postgres_dsn"`
	S3Region        *string `json:"s3_region"`
	S3BaseEndpoint  *string `json:"s3_base_endpoint"`
	S3AccessKey     *string `json:"s3_access_key"`
	S3SecretKey     *string `json:"s3_secret_key"`
	S3Bucket        *string `json:"s3_bucket"`
	S3Prefix        *string `json:"s3_prefix"`
	GatewayBaseURL  *string `json:"gateway_base_url"`
	SimulateLatency *bool   `json:"simulate_latency"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
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

	if jc.Backend != nil {
		cfg.Backend = Backend(*jc.Backend)
	}
	if jc.SQLitePath != nil {
		cfg.SQLitePath = *jc.SQLitePath
	}
	if jc.PostgresDSN != nil {
		cfg.PostgresDSN = *jc.PostgresDSN
	}
	if jc.S3Region != nil {
		cfg.S3.Region = *jc.S3Region
	}
	if jc.S3BaseEndpoint != nil {
		cfg.S3.BaseEndpoint = *jc.S3BaseEndpoint
	}
	if jc.S3AccessKey != nil {
		cfg.S3.AccessKey = *jc.S3AccessKey
	}
	if jc.S3SecretKey != nil {
		cfg.S3.SecretKey = *jc.S3SecretKey
	}
	if jc.S3Bucket != nil {
		cfg.S3.Bucket = *jc.S3Bucket
	}
	if jc.S3Prefix != nil {
		cfg.S3.Prefix = *jc.S3Prefix
	}
	if jc.GatewayBaseURL != nil {
		cfg.GatewayBaseURL = *jc.GatewayBaseURL
	}
	if jc.SimulateLatency != nil {
		cfg.SimulateLatency = *jc.SimulateLatency
	}
}
