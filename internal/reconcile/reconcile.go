package reconcile

import (
	"fmt"
	"log/slog"

	"mqctl/internal/logging"
	"mqctl/internal/mqueue"
	"mqctl/internal/options"
)

// Reconcile opens or creates name and applies the ownership and mode changes
// in c. The first failing step ends the procedure; its error (wrapping the OS
// code) is returned after the handle is released.
//
// Opening without creation and then with creation is not atomic as a pair.
// A concurrent creator simply wins and the later steps act on its queue.
func Reconcile(svc mqueue.Service, name string, c options.Creation, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.Queue(name))

	flags := mqueue.ReadWrite
	if !c.Block {
		flags |= mqueue.NonBlock
	}

	h, err := svc.OpenExisting(name, flags)
	c.Exists = err == nil
	if !c.Exists {
		if verr := c.RequireCreatable(); verr != nil {
			return verr
		}
		// Mode is applied by the create call itself.
		c.SetMode = false
		h, err = svc.OpenOrCreate(name, flags, c.Mode, mqueue.Attr{MaxDepth: c.Depth, MaxSize: c.Size})
		if err != nil {
			return err
		}
		logger.Debug("queue created",
			logging.String("mode", fmt.Sprintf("%03o", c.Mode)),
			logging.Int64("depth", c.Depth),
			logging.Int64("size", c.Size),
		)
	} else {
		logger.Debug("queue exists")
	}

	if err := adjust(svc, h, c, logger); err != nil {
		// The adjustment failure is the result; a close error would mask it.
		_ = svc.Close(h)
		return err
	}
	return svc.Close(h)
}

func adjust(svc mqueue.Service, h mqueue.Handle, c options.Creation, logger *slog.Logger) error {
	statter, ok := mqueue.StatterOf(svc)
	if !ok {
		if c.SetUser || c.SetGroup || (c.Exists && c.SetMode) {
			logger.Warn("ownership and mode changes are not supported on this platform")
		}
		return nil
	}
	status, err := statter.Stat(h)
	if err != nil {
		return err
	}

	if c.SetUser || c.SetGroup {
		uid, gid := status.UID, status.GID
		if c.SetUser {
			uid = c.User
		}
		if c.SetGroup {
			gid = c.Group
		}
		if err := svc.SetOwner(h, uid, gid); err != nil {
			return err
		}
		logger.Debug("queue owner changed", logging.Uint64("uid", uint64(uid)), logging.Uint64("gid", uint64(gid)))
	}

	if c.Exists && c.SetMode && c.Mode != status.Perm() {
		if err := svc.SetMode(h, c.Mode); err != nil {
			return err
		}
		logger.Debug("queue mode changed",
			logging.String("from", fmt.Sprintf("%03o", status.Perm())),
			logging.String("to", fmt.Sprintf("%03o", c.Mode)),
		)
	}
	return nil
}
