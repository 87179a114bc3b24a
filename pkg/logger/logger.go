package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// Init configures the global zerolog logger. In development the console
// writer is used; in production plain JSON lines go to stdout.
func Init(environment string) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339

		logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
		if environment != "production" {
			logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
		}

		log.Logger = logger
	})
}

// Error logs a server-side error for a route. The client never sees the
// underlying error, only the generic message the handler returns.
func Error(route string, err error) {
	log.Error().Str("route", route).Err(err).Msg("request failed")
}
