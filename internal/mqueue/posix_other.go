//go:build !linux

package mqueue

import (
	"errors"
	"fmt"
)

// AttrNonblock is the BSD O_NONBLOCK bit.
const AttrNonblock = 0x4

// POSIX reports every operation as unsupported outside Linux.
type POSIX struct{}

// NewPOSIX returns the unsupported-platform Service.
func NewPOSIX() *POSIX { return &POSIX{} }

func unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, errors.ErrUnsupported)
}

func (p *POSIX) OpenExisting(string, Flag) (Handle, error) { return -1, unsupported("mq_open") }

func (p *POSIX) OpenOrCreate(string, Flag, uint32, Attr) (Handle, error) {
	return -1, unsupported("mq_open")
}

func (p *POSIX) Attributes(Handle) (Attr, error)       { return Attr{}, unsupported("mq_getattr") }
func (p *POSIX) SetOwner(Handle, uint32, uint32) error { return unsupported("fchown") }
func (p *POSIX) SetMode(Handle, uint32) error          { return unsupported("fchmod") }
func (p *POSIX) Send(Handle, []byte, uint) error       { return unsupported("mq_send") }
func (p *POSIX) Unlink(string) error                   { return unsupported("mq_unlink") }
func (p *POSIX) Close(Handle) error                    { return nil }

func (p *POSIX) Receive(Handle, int64) ([]byte, uint, error) {
	return nil, 0, unsupported("mq_receive")
}
