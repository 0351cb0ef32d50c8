package config

import (
	"flag"
	"os"

	"github.com/ekuzmina/shopfront/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   durable backend: memory|sqlite|postgres|s3
//	-d string   sqlite database path
//	-p string   postgres DSN
//	-g string   gateway base URL
//	-f          fast mode: disable simulated latency
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-p", "-g", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	backend := fs.String("b", string(cfg.Backend), "durable backend: memory|sqlite|postgres|s3")
	fs.StringVar(&cfg.SQLitePath, "d", cfg.SQLitePath, "sqlite database path")
	fs.StringVar(&cfg.PostgresDSN, "p", cfg.PostgresDSN, "postgres DSN")
	fs.StringVar(&cfg.GatewayBaseURL, "g", cfg.GatewayBaseURL, "gateway base URL")
	fast := fs.Bool("f", !cfg.SimulateLatency, "disable simulated latency")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Backend = Backend(*backend)
	cfg.SimulateLatency = !*fast
}
