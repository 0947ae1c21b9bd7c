package mqueue

import (
	"fmt"
	"strings"
)

// PathMax bounds the length of a queue name.
const PathMax = 4096

// Separator starts every queue name.
const Separator = '/'

// NameError explains why a queue name was rejected.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	name := e.Name
	if len(name) > 64 {
		name = name[:64] + "..."
	}
	return fmt.Sprintf("queue name [%s] %s", name, e.Reason)
}

// CheckName returns a *NameError unless name starts with exactly one
// separator, contains no other separator, and is at most PathMax bytes long.
func CheckName(name string) error {
	if name == "" || name[0] != Separator {
		return &NameError{Name: name, Reason: "must start with '/'"}
	}
	if strings.IndexByte(name[1:], Separator) >= 0 {
		return &NameError{Name: name, Reason: "may contain only one '/'"}
	}
	if len(name) > PathMax {
		return &NameError{Name: name, Reason: fmt.Sprintf("may not be longer than %d", PathMax)}
	}
	return nil
}

// SaneName reports whether name passes CheckName.
func SaneName(name string) bool {
	return CheckName(name) == nil
}
