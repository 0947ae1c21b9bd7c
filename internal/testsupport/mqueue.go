package testsupport

import (
	"fmt"
	"sort"
	"sync"
	"syscall"

	"mqctl/internal/mqueue"
)

// FakeMessage is one queued payload.
type FakeMessage struct {
	Body     []byte
	Priority uint
}

// FakeQueue is the in-memory state of one queue.
type FakeQueue struct {
	Name     string
	MaxDepth int64
	MaxSize  int64
	UID      uint32
	GID      uint32
	Mode     uint32
	Messages []FakeMessage
}

// Call records one Service method invocation.
type Call struct {
	Op   string
	Name string
}

type fakeHandle struct {
	queue *FakeQueue
	flags mqueue.Flag
}

type failure struct {
	op, name string
	err      error
}

// FakeService is an in-memory mqueue.Service that records every call.
// Blocking calls never wait: a full or empty queue answers EAGAIN regardless
// of the blocking flag.
type FakeService struct {
	mu       sync.Mutex
	queues   map[string]*FakeQueue
	handles  map[mqueue.Handle]*fakeHandle
	next     mqueue.Handle
	calls    []Call
	failures []failure

	// UID and GID own queues created through OpenOrCreate.
	UID uint32
	GID uint32
}

// NewFakeService returns an empty fake owned by uid 1000, gid 1000.
func NewFakeService() *FakeService {
	return &FakeService{
		queues:  make(map[string]*FakeQueue),
		handles: make(map[mqueue.Handle]*fakeHandle),
		next:    3,
		UID:     1000,
		GID:     1000,
	}
}

// WithoutStat hides the optional Statter capability of svc.
func WithoutStat(svc mqueue.Service) mqueue.Service {
	return struct{ mqueue.Service }{svc}
}

// AddQueue seeds an existing queue.
func (f *FakeService) AddQueue(name string, depth, size int64, mode uint32) *FakeQueue {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := &FakeQueue{Name: name, MaxDepth: depth, MaxSize: size, UID: f.UID, GID: f.GID, Mode: mode}
	f.queues[name] = q
	return q
}

// Queue returns the named queue.
func (f *FakeService) Queue(name string) (*FakeQueue, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.queues[name]
	return q, ok
}

// Fail makes every later op on name return err. An empty name matches all
// names; ops are "open", "create", "getattr", "chown", "chmod", "stat",
// "send", "receive", "unlink", "close".
func (f *FakeService) Fail(op, name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, failure{op: op, name: name, err: err})
}

// Calls returns a copy of the call log.
func (f *FakeService) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount counts logged calls for op.
func (f *FakeService) CallCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// OpenHandles reports descriptors that were never closed.
func (f *FakeService) OpenHandles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handles)
}

// record logs the call and returns an injected failure, if any. Callers hold mu.
func (f *FakeService) record(op, name string) error {
	f.calls = append(f.calls, Call{Op: op, Name: name})
	for _, fl := range f.failures {
		if fl.op == op && (fl.name == "" || fl.name == name) {
			return fl.err
		}
	}
	return nil
}

func (f *FakeService) handle(h mqueue.Handle) (*fakeHandle, error) {
	fh, ok := f.handles[h]
	if !ok {
		return nil, syscall.EBADF
	}
	return fh, nil
}

func (f *FakeService) nameOf(h mqueue.Handle) string {
	if fh, ok := f.handles[h]; ok {
		return fh.queue.Name
	}
	return ""
}

func (f *FakeService) register(q *FakeQueue, flags mqueue.Flag) mqueue.Handle {
	h := f.next
	f.next++
	f.handles[h] = &fakeHandle{queue: q, flags: flags}
	return h
}

func (f *FakeService) OpenExisting(name string, flags mqueue.Flag) (mqueue.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("open", name); err != nil {
		return -1, fmt.Errorf("mq_open %s: %w", name, err)
	}
	q, ok := f.queues[name]
	if !ok {
		return -1, fmt.Errorf("mq_open %s: %w", name, syscall.ENOENT)
	}
	return f.register(q, flags), nil
}

func (f *FakeService) OpenOrCreate(name string, flags mqueue.Flag, mode uint32, attr mqueue.Attr) (mqueue.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("create", name); err != nil {
		return -1, fmt.Errorf("mq_open %s (create): %w", name, err)
	}
	q, ok := f.queues[name]
	if !ok {
		if attr.MaxDepth <= 0 || attr.MaxSize <= 0 {
			return -1, fmt.Errorf("mq_open %s (create): %w", name, syscall.EINVAL)
		}
		q = &FakeQueue{Name: name, MaxDepth: attr.MaxDepth, MaxSize: attr.MaxSize, UID: f.UID, GID: f.GID, Mode: mode}
		f.queues[name] = q
	}
	return f.register(q, flags), nil
}

func (f *FakeService) Attributes(h mqueue.Handle) (mqueue.Attr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("getattr", f.nameOf(h)); err != nil {
		return mqueue.Attr{}, fmt.Errorf("mq_getattr: %w", err)
	}
	fh, err := f.handle(h)
	if err != nil {
		return mqueue.Attr{}, fmt.Errorf("mq_getattr: %w", err)
	}
	attr := mqueue.Attr{
		MaxDepth:   fh.queue.MaxDepth,
		MaxSize:    fh.queue.MaxSize,
		CurrentLen: int64(len(fh.queue.Messages)),
	}
	if fh.flags.Nonblocking() {
		attr.Flags = mqueue.AttrNonblock
	}
	return attr, nil
}

func (f *FakeService) SetOwner(h mqueue.Handle, uid, gid uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("chown", f.nameOf(h)); err != nil {
		return fmt.Errorf("fchown: %w", err)
	}
	fh, err := f.handle(h)
	if err != nil {
		return fmt.Errorf("fchown: %w", err)
	}
	fh.queue.UID, fh.queue.GID = uid, gid
	return nil
}

func (f *FakeService) SetMode(h mqueue.Handle, mode uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("chmod", f.nameOf(h)); err != nil {
		return fmt.Errorf("fchmod: %w", err)
	}
	fh, err := f.handle(h)
	if err != nil {
		return fmt.Errorf("fchmod: %w", err)
	}
	fh.queue.Mode = mode
	return nil
}

// Stat reports the mode with the regular-file type bit set, as Linux does.
func (f *FakeService) Stat(h mqueue.Handle) (mqueue.Owner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("stat", f.nameOf(h)); err != nil {
		return mqueue.Owner{}, fmt.Errorf("fstat: %w", err)
	}
	fh, err := f.handle(h)
	if err != nil {
		return mqueue.Owner{}, fmt.Errorf("fstat: %w", err)
	}
	return mqueue.Owner{UID: fh.queue.UID, GID: fh.queue.GID, Mode: syscall.S_IFREG | fh.queue.Mode}, nil
}

func (f *FakeService) Send(h mqueue.Handle, msg []byte, priority uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("send", f.nameOf(h)); err != nil {
		return fmt.Errorf("mq_send: %w", err)
	}
	fh, err := f.handle(h)
	if err != nil {
		return fmt.Errorf("mq_send: %w", err)
	}
	if fh.flags.Access() == mqueue.ReadOnly {
		return fmt.Errorf("mq_send: %w", syscall.EBADF)
	}
	q := fh.queue
	if int64(len(msg)) > q.MaxSize {
		return fmt.Errorf("mq_send: %w", syscall.EMSGSIZE)
	}
	if int64(len(q.Messages)) >= q.MaxDepth {
		return fmt.Errorf("mq_send: %w", syscall.EAGAIN)
	}
	q.Messages = append(q.Messages, FakeMessage{Body: append([]byte(nil), msg...), Priority: priority})
	sort.SliceStable(q.Messages, func(i, j int) bool {
		return q.Messages[i].Priority > q.Messages[j].Priority
	})
	return nil
}

func (f *FakeService) Receive(h mqueue.Handle, maxSize int64) ([]byte, uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("receive", f.nameOf(h)); err != nil {
		return nil, 0, fmt.Errorf("mq_receive: %w", err)
	}
	fh, err := f.handle(h)
	if err != nil {
		return nil, 0, fmt.Errorf("mq_receive: %w", err)
	}
	if fh.flags.Access() == mqueue.WriteOnly {
		return nil, 0, fmt.Errorf("mq_receive: %w", syscall.EBADF)
	}
	q := fh.queue
	if maxSize < q.MaxSize {
		return nil, 0, fmt.Errorf("mq_receive: %w", syscall.EMSGSIZE)
	}
	if len(q.Messages) == 0 {
		return nil, 0, fmt.Errorf("mq_receive: %w", syscall.EAGAIN)
	}
	msg := q.Messages[0]
	q.Messages = q.Messages[1:]
	return msg.Body, msg.Priority, nil
}

func (f *FakeService) Unlink(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("unlink", name); err != nil {
		return fmt.Errorf("mq_unlink %s: %w", name, err)
	}
	if _, ok := f.queues[name]; !ok {
		return fmt.Errorf("mq_unlink %s: %w", name, syscall.ENOENT)
	}
	delete(f.queues, name)
	return nil
}

func (f *FakeService) Close(h mqueue.Handle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("close", f.nameOf(h)); err != nil {
		delete(f.handles, h)
		return fmt.Errorf("mq_close: %w", err)
	}
	if _, ok := f.handles[h]; !ok {
		return fmt.Errorf("mq_close: %w", syscall.EBADF)
	}
	delete(f.handles, h)
	return nil
}
