package options

import (
	"fmt"

	"mqctl/internal/mqueue"
)

var (
	queueAliases    = []string{"-q", "--queue", "-t", "--topic"}
	depthAliases    = []string{"-d", "--depth", "--maxmsg"}
	sizeAliases     = []string{"-s", "--size", "--msgsize"}
	blockAliases    = []string{"-b", "--block"}
	contentAliases  = []string{"-c", "--content", "--data", "--message"}
	priorityAliases = []string{"-p", "--priority"}
	modeAliases     = []string{"-m", "--mode"}
	groupAliases    = []string{"-g", "--gid"}
	userAliases     = []string{"-u", "--uid"}
	outputAliases   = []string{"-o", "--output"}
)

// queueOption appends every sane name to the queue list.
type queueOption struct{ req *Request }

func (o queueOption) Aliases() []string { return queueAliases }

func (o queueOption) Parse(value string) error {
	if err := mqueue.CheckName(value); err != nil {
		return err
	}
	o.req.Queues = append(o.req.Queues, value)
	return nil
}

func (o queueOption) Validate() error {
	if len(o.req.Queues) == 0 {
		return fmt.Errorf("missing -q, or no sane queue name given: %w", ErrInvalid)
	}
	return nil
}

// singleQueueOption keeps the first sane name and drops the rest.
type singleQueueOption struct{ req *Request }

func (o singleQueueOption) Aliases() []string { return queueAliases }

func (o singleQueueOption) Parse(value string) error {
	if err := mqueue.CheckName(value); err != nil {
		return err
	}
	if len(o.req.Queues) > 0 {
		return fmt.Errorf("ignoring extra -q queue [%s]", value)
	}
	o.req.Queues = append(o.req.Queues, value)
	return nil
}

func (o singleQueueOption) Validate() error {
	if len(o.req.Queues) != 1 {
		return fmt.Errorf("expected one queue: %w", ErrInvalid)
	}
	return nil
}

type contentOption struct{ req *Request }

func (o contentOption) Aliases() []string { return contentAliases }

func (o contentOption) Parse(value string) error {
	o.req.Contents = append(o.req.Contents, value)
	return nil
}

func (o contentOption) Validate() error {
	if len(o.req.Contents) == 0 {
		return fmt.Errorf("no content to send: %w", ErrInvalid)
	}
	return nil
}

type depthOption struct{ req *Request }

func (o depthOption) Aliases() []string { return depthAliases }

func (o depthOption) Parse(value string) error {
	v, err := parseLong(value, "-d", "depth")
	if err != nil {
		return err
	}
	o.req.Creation.Depth = v
	return nil
}

// Validate passes: depth is only required for queues that do not exist yet,
// which is decided per target during reconciliation.
func (o depthOption) Validate() error { return nil }

type sizeOption struct{ req *Request }

func (o sizeOption) Aliases() []string { return sizeAliases }

func (o sizeOption) Parse(value string) error {
	v, err := parseLong(value, "-s", "size")
	if err != nil {
		return err
	}
	o.req.Creation.Size = v
	return nil
}

func (o sizeOption) Validate() error { return nil }

type blockOption struct{ req *Request }

func (o blockOption) Aliases() []string { return blockAliases }

func (o blockOption) Parse(value string) error {
	v, err := ParseBlock(value)
	if err != nil {
		return err
	}
	o.req.Creation.Block = v
	return nil
}

func (o blockOption) Validate() error { return nil }

type modeOption struct{ req *Request }

func (o modeOption) Aliases() []string { return modeAliases }

func (o modeOption) Parse(value string) error {
	v, err := ParseMode(value)
	if err != nil {
		return err
	}
	o.req.Creation.Mode = v
	o.req.Creation.SetMode = true
	return nil
}

func (o modeOption) Validate() error {
	if o.req.Creation.Mode == 0 {
		return fmt.Errorf("mode must be positive: %w", ErrInvalid)
	}
	return nil
}

type priorityOption struct{ req *Request }

func (o priorityOption) Aliases() []string { return priorityAliases }

func (o priorityOption) Parse(value string) error {
	v, err := ParsePriority(value, mqueue.PrioMax)
	if err != nil {
		return err
	}
	o.req.Priority = v
	return nil
}

func (o priorityOption) Validate() error { return nil }

type groupOption struct {
	req      *Request
	resolver IdentityResolver
}

func (o groupOption) Aliases() []string { return groupAliases }

func (o groupOption) Parse(value string) error {
	var lookup func(string) (uint32, bool)
	if o.resolver != nil {
		lookup = o.resolver.LookupGroup
	}
	id, err := parseIdentity(value, "-g", "group", lookup)
	if err != nil {
		return err
	}
	o.req.Creation.Group = id
	o.req.Creation.SetGroup = true
	return nil
}

func (o groupOption) Validate() error { return nil }

type userOption struct {
	req      *Request
	resolver IdentityResolver
}

func (o userOption) Aliases() []string { return userAliases }

func (o userOption) Parse(value string) error {
	var lookup func(string) (uint32, bool)
	if o.resolver != nil {
		lookup = o.resolver.LookupUser
	}
	id, err := parseIdentity(value, "-u", "user", lookup)
	if err != nil {
		return err
	}
	o.req.Creation.User = id
	o.req.Creation.SetUser = true
	return nil
}

func (o userOption) Validate() error { return nil }

type outputOption struct{ req *Request }

func (o outputOption) Aliases() []string { return outputAliases }

func (o outputOption) Parse(value string) error {
	v, err := ParseOutput(value)
	if err != nil {
		return err
	}
	o.req.Output = v
	return nil
}

func (o outputOption) Validate() error { return nil }
