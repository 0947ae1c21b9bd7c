package batch

import (
	"log/slog"

	"mqctl/internal/logging"
	"mqctl/internal/mqueue"
	"mqctl/internal/options"
	"mqctl/internal/reconcile"
)

// QueueInfo is what info reports about one queue. Owner is nil when the
// service cannot inspect ownership.
type QueueInfo struct {
	Name  string
	Attr  mqueue.Attr
	Owner *mqueue.Owner
}

// ReceivedMessage is one message drained by recv.
type ReceivedMessage struct {
	Queue    string
	Priority uint
	Body     []byte
}

// Reporter renders query results to the user.
type Reporter interface {
	QueueInfo(QueueInfo) error
	Received(ReceivedMessage) error
}

// Executor runs verbs against a Service.
type Executor struct {
	Service  mqueue.Service
	Logger   *slog.Logger
	Reporter Reporter
}

// New returns an Executor. A nil logger discards diagnostics.
func New(svc mqueue.Service, reporter Reporter, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Executor{Service: svc, Logger: logger, Reporter: reporter}
}

func (e *Executor) fail(err error, name string) error {
	if err != nil {
		e.Logger.Error(err.Error(), logging.Queue(name))
	}
	return err
}

// Create reconciles every queue in req.Queues with req.Creation. Each target
// starts from the same requested creation.
func (e *Executor) Create(req *options.Request) Outcome {
	var out Outcome
	for _, name := range req.Queues {
		err := reconcile.Reconcile(e.Service, name, req.Creation, e.Logger)
		out.Record(e.fail(err, name))
	}
	return out
}

// Unlink removes every queue in req.Queues.
func (e *Executor) Unlink(req *options.Request) Outcome {
	var out Outcome
	for _, name := range req.Queues {
		err := e.Service.Unlink(name)
		if err == nil {
			e.Logger.Debug("queue unlinked", logging.Queue(name))
		}
		out.Record(e.fail(err, name))
	}
	return out
}

// Info reports attributes of every queue in req.Queues.
func (e *Executor) Info(req *options.Request) Outcome {
	var out Outcome
	for _, name := range req.Queues {
		out.Record(e.fail(e.info(name), name))
	}
	return out
}

func (e *Executor) info(name string) error {
	h, err := e.Service.OpenExisting(name, mqueue.ReadOnly)
	if err != nil {
		return err
	}
	attr, err := e.Service.Attributes(h)
	if err != nil {
		_ = e.Service.Close(h)
		return err
	}
	report := QueueInfo{Name: name, Attr: attr}
	if statter, ok := mqueue.StatterOf(e.Service); ok {
		owner, err := statter.Stat(h)
		if err != nil {
			e.Logger.Warn(err.Error(), logging.Queue(name))
		} else {
			report.Owner = &owner
		}
	}
	if e.Reporter != nil {
		if err := e.Reporter.QueueInfo(report); err != nil {
			_ = e.Service.Close(h)
			return err
		}
	}
	return e.Service.Close(h)
}

// Send delivers every payload to every queue, queues in the outer loop, all
// at req.Priority.
func (e *Executor) Send(req *options.Request) Outcome {
	var out Outcome
	flags := mqueue.WriteOnly
	if !req.Creation.Block {
		flags |= mqueue.NonBlock
	}
	for _, name := range req.Queues {
		for _, content := range req.Contents {
			out.Record(e.fail(e.send(name, []byte(content), req.Priority, flags), name))
		}
	}
	return out
}

func (e *Executor) send(name string, payload []byte, priority uint, flags mqueue.Flag) error {
	h, err := e.Service.OpenExisting(name, flags)
	if err != nil {
		return err
	}
	attr, err := e.Service.Attributes(h)
	if err != nil {
		_ = e.Service.Close(h)
		return err
	}
	if attr.MaxSize >= 0 && int64(len(payload)) > attr.MaxSize {
		e.Logger.Warn("truncating message",
			logging.Queue(name),
			logging.Int64("bytes", attr.MaxSize),
			logging.Int("original_bytes", len(payload)),
		)
		payload = payload[:attr.MaxSize]
	}
	if err := e.Service.Send(h, payload, priority); err != nil {
		_ = e.Service.Close(h)
		return err
	}
	e.Logger.Debug("message sent",
		logging.Queue(name),
		logging.Uint64("priority", uint64(priority)),
		logging.Int("bytes", len(payload)),
	)
	return e.Service.Close(h)
}

// Receive drains one message from the single queue in req.Queues.
func (e *Executor) Receive(req *options.Request) Outcome {
	var out Outcome
	if len(req.Queues) == 0 {
		return out
	}
	name := req.Queues[0]
	flags := mqueue.ReadOnly
	if !req.Creation.Block {
		flags |= mqueue.NonBlock
	}
	out.Record(e.fail(e.receive(name, flags), name))
	return out
}

func (e *Executor) receive(name string, flags mqueue.Flag) error {
	h, err := e.Service.OpenExisting(name, flags)
	if err != nil {
		return err
	}
	attr, err := e.Service.Attributes(h)
	if err != nil {
		_ = e.Service.Close(h)
		return err
	}
	body, priority, err := e.Service.Receive(h, attr.MaxSize)
	if err != nil {
		_ = e.Service.Close(h)
		return err
	}
	if e.Reporter != nil {
		if err := e.Reporter.Received(ReceivedMessage{Queue: name, Priority: priority, Body: body}); err != nil {
			_ = e.Service.Close(h)
			return err
		}
	}
	return e.Service.Close(h)
}
