// Package logging настраивает общий zerolog-логгер игры.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger общий логгер. До вызова Setup пишет в stderr с уровнем info.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// ParseLevel переводит строку из конфигурации в уровень zerolog.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup переинициализирует Logger. Если console=true, вывод
// форматируется для человека.
func Setup(level string, w io.Writer, console bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	Logger = zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
	return Logger
}

// For возвращает дочерний логгер с полем component.
func For(component string) *zerolog.Logger {
	l := Logger.With().Str("component", component).Logger()
	return &l
}
