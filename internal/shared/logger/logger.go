package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New initializes the root zerolog.Logger for the process.
// 'devMode' enables human-readable console logging at debug level;
// production gets JSON at info level.
func New(devMode bool) zerolog.Logger {
	if devMode {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		return zerolog.New(consoleWriter).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}
