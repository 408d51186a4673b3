package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the service logger. APP_ENV=dev (or development) switches
// to a human-friendly console writer; everything else emits JSON with the
// service name stamped on every line.
func NewLogger(env string) zerolog.Logger {
	var out zerolog.Logger
	if env == "dev" || env == "development" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		out = zerolog.New(os.Stdout)
	}
	return out.With().
		Timestamp().
		Str("service", "orient-insight").
		Logger()
}
