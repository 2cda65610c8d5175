package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New настраивает логгер сервиса: JSON в production,
// человекочитаемый консольный вывод в остальных окружениях.
func New(env string) zerolog.Logger {
	if env == "production" {
		return zerolog.New(os.Stdout).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Str("service", "license-plate-api").
			Logger()
	}

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	return zerolog.New(output).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
