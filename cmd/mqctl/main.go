package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var status statusError
		if !errors.As(err, &status) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(exitCode(err))
	}
}

// statusError carries a process exit status whose diagnostics were already
// logged.
type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var status statusError
	if errors.As(err, &status) {
		return status.code
	}
	return int(syscall.EINVAL)
}
