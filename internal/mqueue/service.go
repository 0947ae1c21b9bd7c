package mqueue

// PrioMax is the exclusive upper bound for message priorities (Linux MQ_PRIO_MAX).
const PrioMax = 32768

// DefaultPriority sits in the middle of the priority range.
const DefaultPriority = PrioMax / 2

// Flag selects the access mode and I/O behaviour of an open call.
type Flag int

const (
	ReadOnly  Flag = 0
	WriteOnly Flag = 1
	ReadWrite Flag = 2
	// NonBlock makes send and receive fail with EAGAIN instead of waiting.
	NonBlock Flag = 1 << 4
)

const accessMask = ReadOnly | WriteOnly | ReadWrite

// Access returns only the access-mode bits of f.
func (f Flag) Access() Flag { return f & accessMask }

// Nonblocking reports whether NonBlock is set.
func (f Flag) Nonblocking() bool { return f&NonBlock != 0 }

// Handle identifies an open queue. It is only meaningful to the Service that
// returned it.
type Handle int

// Attr mirrors struct mq_attr.
type Attr struct {
	Flags      int64
	MaxDepth   int64
	MaxSize    int64
	CurrentLen int64
}

// Nonblocking reports whether the queue description has O_NONBLOCK set.
func (a Attr) Nonblocking() bool { return a.Flags&AttrNonblock != 0 }

// QueuedBytes is the total payload capacity consumed by queued messages,
// computed as message size times current depth.
func (a Attr) QueuedBytes() int64 { return a.MaxSize * a.CurrentLen }

// Owner is the ownership and permission view of a queue.
type Owner struct {
	UID  uint32
	GID  uint32
	Mode uint32
}

// PermBits masks Mode down to the permission bits, including setuid, setgid
// and sticky.
const PermBits = 0o7777

// Perm returns the permission bits of the owner's mode.
func (o Owner) Perm() uint32 { return o.Mode & PermBits }

// Service is the set of kernel operations the CLI performs on queues.
type Service interface {
	OpenExisting(name string, flags Flag) (Handle, error)
	OpenOrCreate(name string, flags Flag, mode uint32, attr Attr) (Handle, error)
	Attributes(h Handle) (Attr, error)
	SetOwner(h Handle, uid, gid uint32) error
	SetMode(h Handle, mode uint32) error
	Send(h Handle, msg []byte, priority uint) error
	Receive(h Handle, maxSize int64) ([]byte, uint, error)
	Unlink(name string) error
	Close(h Handle) error
}

// Statter is implemented by services that can inspect the descriptor behind a
// handle.
type Statter interface {
	Stat(h Handle) (Owner, error)
}

// StatterOf returns svc's Statter capability, if any.
func StatterOf(svc Service) (Statter, bool) {
	st, ok := svc.(Statter)
	return st, ok
}
