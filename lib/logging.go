package lib

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
)

type LoggerStruct struct {
	Flush    func()
	slog     *slog.Logger
	level    *slog.LevelVar
	disabled bool
}

var Logger = NewLogger(os.Stderr)

// NewLogger writes text to a terminal and json everywhere else, which
// includes lambda where stderr goes to cloudwatch.
func NewLogger(w io.Writer) *LoggerStruct {
	level := &slog.LevelVar{}
	level.Set(ParseLevel(os.Getenv("LOG_LEVEL")))
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: RedactAttr(),
	}
	var handler slog.Handler
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return &LoggerStruct{
		Flush:    func() {},
		slog:     slog.New(handler),
		level:    level,
		disabled: strings.ToLower(os.Getenv("LOGGING") + " ")[:1] == "n",
	}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *LoggerStruct) SetLevel(level string) {
	l.level.Set(ParseLevel(level))
}

func caller() string {
	_, file, line, _ := runtime.Caller(2)
	parts := strings.Split(file, "/")
	if len(parts) >= 2 {
		file = strings.Join(parts[len(parts)-2:], "/")
	}
	return fmt.Sprintf("%s:%d", file, line)
}

func join(v []interface{}) (string, slog.Level) {
	level := slog.LevelInfo
	var xs []string
	for i, x := range v {
		s := strings.TrimSpace(fmt.Sprint(x))
		if i == 0 && strings.HasPrefix(s, "error:") {
			level = slog.LevelError
		}
		xs = append(xs, s)
	}
	return strings.Join(xs, " "), level
}

func (l *LoggerStruct) Println(v ...interface{}) {
	if !l.disabled {
		msg, level := join(v)
		l.slog.Log(context.Background(), level, msg, "caller", caller())
	}
}

func (l *LoggerStruct) Printf(format string, v ...interface{}) {
	if !l.disabled {
		msg, level := join([]interface{}{fmt.Sprintf(format, v...)})
		l.slog.Log(context.Background(), level, msg, "caller", caller())
	}
}

// Event logs a structured message. Attribute values pass through redaction,
// so request payloads carrying credentials are safe to hand over whole.
func (l *LoggerStruct) Event(msg string, args ...any) {
	if !l.disabled {
		l.slog.Info(msg, append(args, "caller", caller())...)
	}
}

func (l *LoggerStruct) Debug(msg string, args ...any) {
	if !l.disabled {
		l.slog.Debug(msg, append(args, "caller", caller())...)
	}
}

func (l *LoggerStruct) Fatal(v ...interface{}) {
	msg, _ := join(v)
	l.slog.Error(msg, "caller", caller())
	l.Flush()
	os.Exit(1)
}

func (l *LoggerStruct) Fatalf(format string, v ...interface{}) {
	l.slog.Error(fmt.Sprintf(format, v...), "caller", caller())
	l.Flush()
	os.Exit(1)
}
