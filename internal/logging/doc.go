// Package logging assembles the slog loggers mqctl uses for diagnostics.
//
// It owns the console and JSON handlers, level parsing, and colour decisions.
// Console output is a single line per record in the `warning: message
// key=value` shape users expect from a command-line tool; JSON output is
// meant for scripts that collect diagnostics from many invocations.
//
// Query results never go through these loggers; they are written to stdout
// by the command layer.
package logging
