package options

// CreateTable is the option table for create/attr.
func CreateTable(req *Request, ids IdentityResolver) Table {
	return Table{
		queueOption{req},
		depthOption{req},
		sizeOption{req},
		blockOption{req},
		modeOption{req},
		groupOption{req: req, resolver: ids},
		userOption{req: req, resolver: ids},
	}
}

// InfoTable is the option table for info/cat.
func InfoTable(req *Request) Table {
	return Table{queueOption{req}, outputOption{req}}
}

// UnlinkTable is the option table for unlink/rm.
func UnlinkTable(req *Request) Table {
	return Table{queueOption{req}}
}

// ReceiveTable is the option table for recv/receive. It accepts exactly one
// queue.
func ReceiveTable(req *Request) Table {
	return Table{singleQueueOption{req}, blockOption{req}, outputOption{req}}
}

// SendTable is the option table for send.
func SendTable(req *Request) Table {
	return Table{queueOption{req}, contentOption{req}, priorityOption{req}, blockOption{req}}
}
