//go:build linux

package mqueue

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// AttrNonblock is the O_NONBLOCK bit as reported in Attr.Flags.
const AttrNonblock = unix.O_NONBLOCK

// mqAttr matches the kernel's struct mq_attr (four longs plus padding).
type mqAttr struct {
	Flags   int
	Maxmsg  int
	Msgsize int
	Curmsgs int
	_       [4]int
}

// POSIX is the kernel-backed Service. Handles are message queue descriptors,
// which on Linux are ordinary file descriptors, so POSIX also implements
// Statter.
type POSIX struct{}

// NewPOSIX returns the kernel-backed Service.
func NewPOSIX() *POSIX { return &POSIX{} }

// kernelName strips the leading separator; the syscall expects the bare name.
func kernelName(name string) (*byte, error) {
	if len(name) > 0 && name[0] == Separator {
		name = name[1:]
	}
	return unix.BytePtrFromString(name)
}

func openFlags(flags Flag) int {
	var out int
	switch flags.Access() {
	case WriteOnly:
		out = unix.O_WRONLY
	case ReadWrite:
		out = unix.O_RDWR
	default:
		out = unix.O_RDONLY
	}
	if flags.Nonblocking() {
		out |= unix.O_NONBLOCK
	}
	return out | unix.O_CLOEXEC
}

func (p *POSIX) open(name string, oflag int, mode uint32, attr *mqAttr) (Handle, error) {
	ptr, err := kernelName(name)
	if err != nil {
		return -1, err
	}
	for {
		fd, _, errno := unix.Syscall6(unix.SYS_MQ_OPEN,
			uintptr(unsafe.Pointer(ptr)),
			uintptr(oflag),
			uintptr(mode),
			uintptr(unsafe.Pointer(attr)),
			0, 0)
		if errno == unix.EINTR {
			continue
		}
		if errno != 0 {
			return -1, errno
		}
		return Handle(fd), nil
	}
}

// OpenExisting opens name without creating it.
func (p *POSIX) OpenExisting(name string, flags Flag) (Handle, error) {
	h, err := p.open(name, openFlags(flags), 0, nil)
	if err != nil {
		return -1, fmt.Errorf("mq_open %s: %w", name, err)
	}
	return h, nil
}

// OpenOrCreate opens name, creating it with mode and attr when absent.
func (p *POSIX) OpenOrCreate(name string, flags Flag, mode uint32, attr Attr) (Handle, error) {
	kattr := &mqAttr{
		Maxmsg:  int(attr.MaxDepth),
		Msgsize: int(attr.MaxSize),
	}
	if flags.Nonblocking() {
		kattr.Flags = unix.O_NONBLOCK
	}
	h, err := p.open(name, openFlags(flags)|unix.O_CREAT, mode, kattr)
	if err != nil {
		return -1, fmt.Errorf("mq_open %s (create): %w", name, err)
	}
	return h, nil
}

// Attributes reads the queue attributes through mq_getsetattr.
func (p *POSIX) Attributes(h Handle) (Attr, error) {
	var kattr mqAttr
	_, _, errno := unix.Syscall(unix.SYS_MQ_GETSETATTR, uintptr(h), 0, uintptr(unsafe.Pointer(&kattr)))
	if errno != 0 {
		return Attr{}, fmt.Errorf("mq_getattr: %w", errno)
	}
	return Attr{
		Flags:      int64(kattr.Flags),
		MaxDepth:   int64(kattr.Maxmsg),
		MaxSize:    int64(kattr.Msgsize),
		CurrentLen: int64(kattr.Curmsgs),
	}, nil
}

// SetOwner changes the queue's owner and group.
func (p *POSIX) SetOwner(h Handle, uid, gid uint32) error {
	if err := unix.Fchown(int(h), int(uid), int(gid)); err != nil {
		return fmt.Errorf("fchown: %w", err)
	}
	return nil
}

// SetMode changes the queue's permission bits.
func (p *POSIX) SetMode(h Handle, mode uint32) error {
	if err := unix.Fchmod(int(h), mode); err != nil {
		return fmt.Errorf("fchmod: %w", err)
	}
	return nil
}

// Stat reports owner, group and mode of the queue.
func (p *POSIX) Stat(h Handle) (Owner, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(h), &st); err != nil {
		return Owner{}, fmt.Errorf("fstat: %w", err)
	}
	return Owner{UID: st.Uid, GID: st.Gid, Mode: st.Mode}, nil
}

// Send enqueues msg with the given priority. A nil timeout makes the call
// wait for space unless the descriptor is non-blocking.
func (p *POSIX) Send(h Handle, msg []byte, priority uint) error {
	var ptr unsafe.Pointer
	if len(msg) > 0 {
		ptr = unsafe.Pointer(&msg[0])
	}
	for {
		_, _, errno := unix.Syscall6(unix.SYS_MQ_TIMEDSEND,
			uintptr(h), uintptr(ptr), uintptr(len(msg)), uintptr(priority), 0, 0)
		if errno == unix.EINTR {
			continue
		}
		if errno != 0 {
			return fmt.Errorf("mq_send: %w", errno)
		}
		return nil
	}
}

// Receive dequeues the highest-priority message. maxSize must be at least
// the queue's message size or the kernel answers EMSGSIZE.
func (p *POSIX) Receive(h Handle, maxSize int64) ([]byte, uint, error) {
	if maxSize <= 0 {
		return nil, 0, fmt.Errorf("mq_receive: %w", unix.EMSGSIZE)
	}
	buf := make([]byte, maxSize)
	var prio uint32
	for {
		n, _, errno := unix.Syscall6(unix.SYS_MQ_TIMEDRECEIVE,
			uintptr(h),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(len(buf)),
			uintptr(unsafe.Pointer(&prio)),
			0, 0)
		if errno == unix.EINTR {
			continue
		}
		if errno != 0 {
			return nil, 0, fmt.Errorf("mq_receive: %w", errno)
		}
		return buf[:n], uint(prio), nil
	}
}

// Unlink removes name. Open descriptors stay valid until closed.
func (p *POSIX) Unlink(name string) error {
	ptr, err := kernelName(name)
	if err != nil {
		return fmt.Errorf("mq_unlink %s: %w", name, err)
	}
	_, _, errno := unix.Syscall(unix.SYS_MQ_UNLINK, uintptr(unsafe.Pointer(ptr)), 0, 0)
	if errno != 0 {
		return fmt.Errorf("mq_unlink %s: %w", name, errno)
	}
	return nil
}

// Close releases the descriptor.
func (p *POSIX) Close(h Handle) error {
	if err := unix.Close(int(h)); err != nil {
		return fmt.Errorf("mq_close: %w", err)
	}
	return nil
}
