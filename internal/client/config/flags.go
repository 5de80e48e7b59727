package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/flagx"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   collection endpoint URL
//	-t int      request timeout in seconds
//	-l string   log level
//	-f string   log format
//
// Only the flags listed here are looked at (see flagx.FilterArgs), so the
// -c/-config flag consumed by parseJson does not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Endpoint, "a", cfg.Endpoint, "URL of the user collection endpoint")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = transport default)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	format := fs.String("f", string(cfg.LogFormat), "log format: text or json")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	cfg.LogFormat = logging.Format(*format)
}
