package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldQueue is the structured logging key for queue names.
	FieldQueue = "queue"
	// FieldInvocation is the structured logging key for per-process correlation ids.
	FieldInvocation = "invocation"
	// FieldFlag is the structured logging key for the command-line flag a diagnostic refers to.
	FieldFlag = "flag"
	// FieldArg is the structured logging key for skipped command-line tokens.
	FieldArg = "arg"
)

type Attr = slog.Attr

func Int(key string, value int) Attr { return slog.Int(key, value) }

func Int64(key string, value int64) Attr { return slog.Int64(key, value) }

func Uint64(key string, value uint64) Attr { return slog.Uint64(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Queue(name string) Attr { return slog.String(FieldQueue, name) }

// NoopHandler drops every record.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h NoopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h NoopHandler) WithGroup(string) slog.Handler           { return h }

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}
