package options

import "mqctl/internal/mqueue"

// Output formats accepted by -o.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
)

// Defaults seeds a Request before any option is parsed.
type Defaults struct {
	Mode     uint32
	Block    bool
	Priority uint
	Output   string
}

// BuiltinDefaults returns the defaults used when no configuration overrides
// them.
func BuiltinDefaults() Defaults {
	return Defaults{
		Mode:     DefaultMode,
		Block:    true,
		Priority: mqueue.DefaultPriority,
		Output:   OutputText,
	}
}

// Request collects everything one invocation parsed: creation attributes,
// target queues and payloads in the order given, the send priority, and the
// output format.
type Request struct {
	Creation Creation
	Queues   []string
	Contents []string
	Priority uint
	Output   string
}

// NewRequest returns an empty Request seeded with d.
func NewRequest(d Defaults) *Request {
	c := NewCreation()
	if d.Mode > 0 {
		c.Mode = d.Mode
	}
	c.Block = d.Block
	output := d.Output
	if output == "" {
		output = OutputText
	}
	return &Request{
		Creation: c,
		Priority: d.Priority,
		Output:   output,
	}
}
