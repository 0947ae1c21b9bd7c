// Package preflight checks that the host can serve POSIX message queues.
//
// The "mqctl check" command runs RunAll to confirm the queue filesystem is
// mounted and accessible and to report the kernel limits that bound the
// depth and size accepted by create.
package preflight
