package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mqctl/internal/batch"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// tableReporter buffers results and renders one table per result kind.
type tableReporter struct {
	w        io.Writer
	queues   []batch.QueueInfo
	messages []batch.ReceivedMessage
}

func (r *tableReporter) QueueInfo(info batch.QueueInfo) error {
	r.queues = append(r.queues, info)
	return nil
}

func (r *tableReporter) Received(msg batch.ReceivedMessage) error {
	r.messages = append(r.messages, msg)
	return nil
}

func (r *tableReporter) Flush() error {
	counts := message.NewPrinter(language.English)

	if len(r.queues) > 0 {
		headers := []string{"Queue", "Queued", "Msg Size", "Max Msgs", "Current", "Flags", "UID", "GID", "Mode"}
		aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft}
		rows := make([][]string, 0, len(r.queues))
		for _, q := range r.queues {
			a := q.Attr
			row := []string{
				q.Name,
				humanize.IBytes(uint64(max(a.QueuedBytes(), 0))),
				humanize.IBytes(uint64(max(a.MaxSize, 0))),
				counts.Sprintf("%d", a.MaxDepth),
				counts.Sprintf("%d", a.CurrentLen),
				fmt.Sprintf("%03d", a.Flags),
				"-", "-", "-",
			}
			if q.Owner != nil {
				row[6] = strconv.FormatUint(uint64(q.Owner.UID), 10)
				row[7] = strconv.FormatUint(uint64(q.Owner.GID), 10)
				row[8] = formatMode(q.Owner.Perm())
			}
			rows = append(rows, row)
		}
		if _, err := fmt.Fprintln(r.w, renderTable(headers, rows, aligns)); err != nil {
			return err
		}
	}

	if len(r.messages) > 0 {
		headers := []string{"Queue", "Priority", "Size", "Payload"}
		aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignLeft}
		rows := make([][]string, 0, len(r.messages))
		for _, m := range r.messages {
			rows = append(rows, []string{
				m.Queue,
				counts.Sprintf("%d", m.Priority),
				humanize.IBytes(uint64(len(m.Body))),
				string(m.Body),
			})
		}
		if _, err := fmt.Fprintln(r.w, renderTable(headers, rows, aligns)); err != nil {
			return err
		}
	}
	return nil
}
