package batch

import (
	"errors"
	"syscall"
)

// Outcome aggregates the per-target results of one verb.
type Outcome struct {
	Attempted int
	Failed    int

	// Err is the most recent failure; later successes never clear it.
	Err error
}

// Record folds one per-target result into the outcome.
func (o *Outcome) Record(err error) {
	o.Attempted++
	if err != nil {
		o.Failed++
		o.Err = err
	}
}

// Code is the process exit status for the outcome.
func (o Outcome) Code() int {
	return ExitCode(o.Err)
}

// ExitCode maps err to the OS error number it wraps. Errors that carry no
// errno map to EINVAL; nil maps to zero.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return int(syscall.EINVAL)
}
