// Package debuglog provides DebugLog implementations: an slog-backed
// logger for real use and a silent one for callers that want resolution
// without traces.
package debuglog

import (
	"io"
	"log/slog"

	"github.com/openpuyo/assetman/pkg/types"
)

// Logger adapts a slog.Logger to the types.DebugLog collaborator
// contract.
type Logger struct {
	slog *slog.Logger
}

// New creates a DebugLog writing to w. Level is one of debug, info,
// warn, error (default info); format is text or json (default text). It
// does not touch the global slog logger.
func New(level, format string, w io.Writer) *Logger {
	var lv slog.Level
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "info":
		lv = slog.LevelInfo
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lv}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{slog: slog.New(handler)}
}

// Wrap adapts an existing slog.Logger.
func Wrap(l *slog.Logger) *Logger {
	return &Logger{slog: l}
}

// Log implements types.DebugLog.
func (l *Logger) Log(message string, kind types.MessageKind) {
	switch kind {
	case types.MessageError:
		l.slog.Error(message)
	case types.MessageInfo:
		l.slog.Info(message)
	default:
		l.slog.Debug(message)
	}
}

// nop discards every entry.
type nop struct{}

func (nop) Log(string, types.MessageKind) {}

// Nop returns a DebugLog that discards everything.
func Nop() types.DebugLog {
	return nop{}
}
