// Package config holds runtime settings for the shopfront demo client and
// the layered loading: defaults, then a JSON file, then command-line flags,
// each overriding the previous source.
package config

// Backend selects the durable key/value medium.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendS3       Backend = "s3"
)

// S3Config carries bucket settings for the s3 backend.
type S3Config struct {
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	Bucket       string
	Prefix       string
}

// Config holds runtime settings for the demo client.
//
// Fields:
//   - Backend: which durable medium stores collections and the session.
//   - SQLitePath: database file for the sqlite backend.
//   - PostgresDSN: connection string for the postgres backend.
//   - S3: bucket settings for the s3 backend.
//   - GatewayBaseURL: base URL of the real API the gateway seam points at.
//   - SimulateLatency: whether store operations wait out mock delays.
type Config struct {
	Backend         Backend
	SQLitePath      string
	PostgresDSN     string
	S3              S3Config
	GatewayBaseURL  string
	SimulateLatency bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.SQLitePath = "shopfront.db"
	c.GatewayBaseURL = "/api"
	c.SimulateLatency = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
