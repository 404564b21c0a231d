package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -a and -t are looked at; everything else in os.Args is left to the
// CLI command parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "blog list server base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
