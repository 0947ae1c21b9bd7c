package options

import (
	"log/slog"
	"slices"

	"mqctl/internal/logging"
)

// Option is one recognised command-line option.
type Option interface {
	// Aliases lists every accepted spelling, e.g. "-q" and "--queue".
	Aliases() []string
	// Parse consumes the token following the flag. A returned error is an
	// argument error: the option keeps its previous value.
	Parse(value string) error
	// Validate reports whether the option's state allows the verb to run.
	Validate() error
}

// Table is the ordered set of options a verb accepts.
type Table []Option

// Lookup returns the option accepting flag.
func (t Table) Lookup(flag string) (Option, bool) {
	for _, opt := range t {
		if slices.Contains(opt.Aliases(), flag) {
			return opt, true
		}
	}
	return nil, false
}

// Dispatch consumes args as (flag, value) pairs. A recognised flag hands the
// next token to its option and advances by two; anything else is skipped
// with a warning and advances by one. A lone trailing token is skipped with a
// warning. Dispatch never fails.
func Dispatch(args []string, table Table, logger *slog.Logger) {
	if logger == nil {
		logger = logging.NewNop()
	}
	i := 0
	for i+1 < len(args) {
		flag := args[i]
		opt, ok := table.Lookup(flag)
		if !ok {
			logger.Warn("skipping unrecognized argument", logging.String(logging.FieldArg, flag))
			i++
			continue
		}
		if err := opt.Parse(args[i+1]); err != nil {
			logger.Warn(err.Error(), logging.String(logging.FieldFlag, flag))
		}
		i += 2
	}
	if i < len(args) {
		logger.Warn("skipping unrecognized argument", logging.String(logging.FieldArg, args[i]))
	}
}

// Validate runs every option's predicate and returns the failures in table
// order.
func Validate(table Table) []error {
	var errs []error
	for _, opt := range table {
		if err := opt.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// ValidateAll logs each validation failure and reports whether the verb may
// proceed.
func ValidateAll(table Table, logger *slog.Logger) bool {
	errs := Validate(table)
	if logger != nil {
		for _, err := range errs {
			logger.Error(err.Error())
		}
	}
	return len(errs) == 0
}
