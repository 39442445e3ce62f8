// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the go-food-order server.
//
// A root *Logger is built once in main and handed to every component.
// HTTP middleware derives request-scoped loggers from it (trace_id, user_id)
// and stores them in the request context, where handlers and services pick
// them up with FromRequest and FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role, a timestamp and the calling function name under "func".
// The global level starts at debug; see SetLevel.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return New(os.Stdout, role)
}

// New is NewLogger with an explicit writer and no change to the global level.
func New(w io.Writer, role string) *Logger {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// SetLevel applies a zerolog level name (trace, debug, info, warn, error,
// fatal, panic, disabled) globally. An empty name keeps the current level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromRequest returns the logger bound to the request context, or zerolog's
// disabled default logger when none is bound. It never returns nil.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext is FromRequest for a bare context.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithTraceID returns a child logger adding trace_id to every entry.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return l.with("trace_id", traceID)
}

// WithUserID returns a child logger adding user_id to every entry.
func (l *Logger) WithUserID(userID string) *Logger {
	return l.with("user_id", userID)
}

func (l *Logger) with(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}
