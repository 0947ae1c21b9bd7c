package options

import (
	"fmt"
	"syscall"
)

// Unset marks Depth and Size that were never given.
const Unset = -1

// DefaultMode applies to newly created queues when no mode is requested.
const DefaultMode uint32 = 0o755

// ErrInvalid wraps every argument validation failure so it maps to EINVAL.
var ErrInvalid = syscall.EINVAL

// Creation describes the attributes a create/attr invocation asks for. Set*
// fields record which of the optional values were given explicitly.
type Creation struct {
	// Exists is discovered during reconciliation, never requested.
	Exists bool

	Mode    uint32
	SetMode bool

	// Depth is the maximum number of queued messages and Size the maximum
	// message size in bytes.
	Depth int64
	Size  int64

	Block bool

	Group    uint32
	SetGroup bool
	User     uint32
	SetUser  bool
}

// NewCreation returns a Creation holding the built-in defaults.
func NewCreation() Creation {
	return Creation{
		Mode:  DefaultMode,
		Depth: Unset,
		Size:  Unset,
		Block: true,
	}
}

// RequireSize fails when a new queue would be created without a positive
// message size.
func (c Creation) RequireSize() error {
	if c.Exists || c.Size > 0 {
		return nil
	}
	return fmt.Errorf("-s maximum message size not provided: %w", ErrInvalid)
}

// RequireDepth fails when a new queue would be created without a positive
// depth.
func (c Creation) RequireDepth() error {
	if c.Exists || c.Depth > 0 {
		return nil
	}
	return fmt.Errorf("-d maximum queue depth not provided: %w", ErrInvalid)
}

// RequireCreatable combines RequireSize and RequireDepth on a single line.
func (c Creation) RequireCreatable() error {
	size, depth := c.RequireSize(), c.RequireDepth()
	if size != nil && depth != nil {
		return fmt.Errorf("%w; %w", size, depth)
	}
	if size != nil {
		return size
	}
	return depth
}
