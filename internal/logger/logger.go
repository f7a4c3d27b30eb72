// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors, context merging and a few structured helpers
// (timers and HTTP request summaries) used throughout the application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// ContextFieldName is the field a string label is attached under.
	ContextFieldName = "context"
	// ErrorFieldName is the field an error passed as metadata is
	// normalized under.
	ErrorFieldName = "err"
)

// Fields is a set of structured key/value pairs attached to log entries.
type Fields map[string]any

// Logger is a thin wrapper around zerolog.Logger.
//
// Besides the embedded logger it remembers the bare root logger and the
// fields bound to it, so that children can be rebuilt with merged context
// instead of stacking duplicate keys.
type Logger struct {
	zerolog.Logger

	root   zerolog.Logger
	fields Fields
}

type options struct {
	out         io.Writer
	development bool
}

// Option configures a logger built by NewLogger or NewLoggerWithFields.
type Option func(*options)

// WithOutput sets the writer log entries go to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithDevelopment switches between the development profile (debug level,
// human-readable console output) and the production profile (info level,
// JSON lines).
func WithDevelopment(development bool) Option {
	return func(o *options) {
		o.development = development
	}
}

var setupOnce sync.Once

func newRoot(opts []Option) zerolog.Logger {
	setupOnce.Do(func() {
		zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
			return runtime.FuncForPC(pc).Name() // return function name
		}
		zerolog.CallerFieldName = "func"
		zerolog.ErrorFieldName = ErrorFieldName
	})

	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	w, level := o.out, zerolog.InfoLevel
	if o.development {
		w = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.RFC3339}
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).Level(level).With().
		Timestamp().
		Caller().
		Logger()
}

// NewLogger constructs a *Logger whose entries carry label under the
// "context" field (e.g. "server", "landing").
func NewLogger(label string, opts ...Option) *Logger {
	return build(newRoot(opts), Fields{ContextFieldName: label})
}

// NewLoggerWithFields constructs a *Logger whose entries carry fields.
func NewLoggerWithFields(fields Fields, opts ...Option) *Logger {
	return build(newRoot(opts), maps.Clone(fields))
}

func build(root zerolog.Logger, fields Fields) *Logger {
	l := root
	if len(fields) > 0 {
		l = root.With().Fields(map[string]any(fields)).Logger()
	}
	return &Logger{Logger: l, root: root, fields: fields}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop(), root: zerolog.Nop()}
}

// Child returns a logger whose context label is replaced by label.
func (l *Logger) Child(label string) *Logger {
	return l.ChildWithFields(Fields{ContextFieldName: label})
}

// ChildWithFields returns a logger carrying the parent's fields merged with
// fields. On conflicting keys the child's value wins. The parent is not
// modified.
func (l *Logger) ChildWithFields(fields Fields) *Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	maps.Copy(merged, l.fields)
	maps.Copy(merged, fields)
	return build(l.root, merged)
}

// Emit writes msg at level with optional metadata. meta may be nil, Fields,
// a plain map, or an error, which is recorded under ErrorFieldName. Any
// other value is recorded under "meta".
func (l *Logger) Emit(level zerolog.Level, msg string, meta any) {
	ev := l.WithLevel(level)

	switch m := meta.(type) {
	case nil:
	case error:
		ev = ev.AnErr(ErrorFieldName, m)
	case Fields:
		ev = ev.Fields(map[string]any(m))
	case map[string]any:
		ev = ev.Fields(m)
	default:
		ev = ev.Interface("meta", m)
	}

	ev.Msg(msg)
}

// Time starts a timer. Calling the returned function logs "Timer: <label>"
// with the elapsed milliseconds.
func (l *Logger) Time(label string) func() {
	start := time.Now()
	return func() {
		l.Info().
			Str("duration", formatMillis(time.Since(start))).
			Msg("Timer: " + label)
	}
}

// RequestInfo summarizes a served HTTP request.
type RequestInfo struct {
	Method     string
	URL        string
	StatusCode int
	Duration   time.Duration
	Size       int
}

// Request logs a summary of a served HTTP request. Responses with a status
// of 400 or above are logged at error level.
func (l *Logger) Request(info RequestInfo) {
	ev, msg := l.Info(), "HTTP Request"
	if info.StatusCode >= http.StatusBadRequest {
		ev, msg = l.Error(), "HTTP Request Error"
	}

	ev.Str("method", info.Method).
		Str("url", info.URL).
		Int("status", info.StatusCode).
		Str("duration", formatMillis(info.Duration)).
		Int("size", info.Size).
		Msg(msg)
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying l. The embedded zerolog logger is
// attached as well, so log.Ctx keeps working for code that only knows zerolog.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	ctx = l.Logger.WithContext(ctx)
	return context.WithValue(ctx, ctxKey{}, l)
}

var fallback = sync.OnceValue(func() *Logger {
	return NewLogger("app")
})

// FromRequest returns the *Logger attached to the request's context.
// See FromContext.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the *Logger attached to ctx by WithContext.
//
// A zerolog.Logger attached directly through zerolog is wrapped as a root
// logger without fields. With neither present, log.Ctx yields a disabled
// logger, so a process-wide "app" logger writing to stdout is returned
// instead. The result is never nil.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}

	zl := *log.Ctx(ctx)
	if zl.GetLevel() == zerolog.Disabled {
		return fallback()
	}
	return &Logger{Logger: zl, root: zl}
}
