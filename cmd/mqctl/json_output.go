package main

import (
	"encoding/json"
	"io"
	"unicode/utf8"

	"mqctl/internal/batch"
)

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type queueInfoJSON struct {
	Queue       string  `json:"queue"`
	QueuedBytes int64   `json:"queued_bytes"`
	MaxSize     int64   `json:"max_size"`
	MaxDepth    int64   `json:"max_depth"`
	CurrentLen  int64   `json:"current_depth"`
	Flags       int64   `json:"flags"`
	Nonblocking bool    `json:"nonblocking"`
	UID         *uint32 `json:"uid,omitempty"`
	GID         *uint32 `json:"gid,omitempty"`
	Mode        string  `json:"mode,omitempty"`
}

// messageJSON carries the payload in Body when it is valid UTF-8 and in Raw
// (base64) otherwise.
type messageJSON struct {
	Queue    string `json:"queue"`
	Priority uint   `json:"priority"`
	Size     int    `json:"size"`
	Body     string `json:"body,omitempty"`
	Raw      []byte `json:"raw,omitempty"`
}

// jsonReporter buffers results and writes them as one array per result kind.
type jsonReporter struct {
	w        io.Writer
	queues   []queueInfoJSON
	messages []messageJSON
}

func (r *jsonReporter) QueueInfo(info batch.QueueInfo) error {
	a := info.Attr
	out := queueInfoJSON{
		Queue:       info.Name,
		QueuedBytes: a.QueuedBytes(),
		MaxSize:     a.MaxSize,
		MaxDepth:    a.MaxDepth,
		CurrentLen:  a.CurrentLen,
		Flags:       a.Flags,
		Nonblocking: a.Nonblocking(),
	}
	if owner := info.Owner; owner != nil {
		uid, gid := owner.UID, owner.GID
		out.UID = &uid
		out.GID = &gid
		out.Mode = formatMode(owner.Perm())
	}
	r.queues = append(r.queues, out)
	return nil
}

func (r *jsonReporter) Received(msg batch.ReceivedMessage) error {
	out := messageJSON{Queue: msg.Queue, Priority: msg.Priority, Size: len(msg.Body)}
	if utf8.Valid(msg.Body) {
		out.Body = string(msg.Body)
	} else {
		out.Raw = msg.Body
	}
	r.messages = append(r.messages, out)
	return nil
}

func (r *jsonReporter) Flush() error {
	if len(r.queues) > 0 {
		if err := writeJSON(r.w, r.queues); err != nil {
			return err
		}
	}
	if len(r.messages) > 0 {
		return writeJSON(r.w, r.messages)
	}
	return nil
}
