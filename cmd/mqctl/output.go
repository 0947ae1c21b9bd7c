package main

import (
	"fmt"
	"io"

	"mqctl/internal/batch"
	"mqctl/internal/options"
)

// outputReporter receives query results as the executor produces them and
// writes anything it buffered on Flush.
type outputReporter interface {
	batch.Reporter
	Flush() error
}

func newReporter(format string, w io.Writer) outputReporter {
	switch format {
	case options.OutputTable:
		return &tableReporter{w: w}
	case options.OutputJSON:
		return &jsonReporter{w: w}
	default:
		return textReporter{w: w}
	}
}

// textReporter prints the fixed line-oriented layout immediately.
type textReporter struct {
	w io.Writer
}

func (r textReporter) QueueInfo(info batch.QueueInfo) error {
	a := info.Attr
	if _, err := fmt.Fprintf(r.w, "queue: '%s'\nQSIZE: %d\nMSGSIZE: %d\nMAXMSG: %d\nCURMSG: %d\nflags: %03d\n",
		info.Name, a.QueuedBytes(), a.MaxSize, a.MaxDepth, a.CurrentLen, a.Flags); err != nil {
		return err
	}
	if info.Owner == nil {
		return nil
	}
	_, err := fmt.Fprintf(r.w, "UID: %d\nGID: %d\nMODE: %s\n", info.Owner.UID, info.Owner.GID, formatMode(info.Owner.Perm()))
	return err
}

func (r textReporter) Received(msg batch.ReceivedMessage) error {
	_, err := fmt.Fprintf(r.w, "[%d]: %s\n", msg.Priority, msg.Body)
	return err
}

func (textReporter) Flush() error { return nil }

// formatMode renders permission bits as at least three octal digits.
func formatMode(perm uint32) string {
	return fmt.Sprintf("%03o", perm)
}
