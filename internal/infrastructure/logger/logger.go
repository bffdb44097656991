package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	usecasecontract "github.com/mikiasgoitom/Storefront/internal/usecase/contract"
)

// ZeroLogger adapts a zerolog.Logger to the IAppLogger port.
type ZeroLogger struct {
	zl zerolog.Logger
}

var _ usecasecontract.IAppLogger = (*ZeroLogger)(nil)

// NewLogger creates a logger writing to stdout. format is "json" or "console".
func NewLogger(level, format string) *ZeroLogger {
	var out io.Writer = os.Stdout
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, level)
}

// NewWithWriter creates a JSON logger on w.
func NewWithWriter(w io.Writer, level string) *ZeroLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &ZeroLogger{zl: zl}
}

// NewNop returns a logger that discards everything.
func NewNop() *ZeroLogger {
	return &ZeroLogger{zl: zerolog.Nop()}
}

// Zerolog exposes the underlying logger for structured call sites such as
// the request logging middleware.
func (l *ZeroLogger) Zerolog() *zerolog.Logger {
	return &l.zl
}

// Debugf logs a debug message.
func (l *ZeroLogger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

// Infof logs an info message.
func (l *ZeroLogger) Infof(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Warnf logs a warning message.
func (l *ZeroLogger) Warnf(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

// Warningf logs a warning message.
func (l *ZeroLogger) Warningf(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

// Errorf logs an error message.
func (l *ZeroLogger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *ZeroLogger) Fatalf(format string, args ...interface{}) {
	l.zl.Fatal().Msgf(format, args...)
}
