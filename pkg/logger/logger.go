package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "rentreview-api"

// Init configures the global logger: human-readable console output and
// debug level in development, JSON at info level everywhere else. Every
// line carries the service name and environment.
func Init(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	base := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if env == "development" {
		base = base.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = base.With().
		Str("service", serviceName).
		Str("env", env).
		Logger()
}

func Info(msg string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(msg)
}

func Debug(msg string) {
	log.Debug().Msg(msg)
}

func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
