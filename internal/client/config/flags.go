package config

import (
	"flag"
	"os"

	"github.com/kevinsebalee/eventos-cli/internal/flagx"
)

// parseFlags populates Config fields from command-line flags:
//
//	-a string   base address of the REST backend
//	-d string   path of the local state database
//
// os.Args is filtered down to the flags handled here so the config-file
// flag parsed elsewhere does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base address of the REST backend")
	fs.StringVar(&cfg.StatePath, "d", cfg.StatePath, "path of the local state database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
