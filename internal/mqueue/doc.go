// Package mqueue exposes POSIX message queues as a small capability interface.
//
// Service covers the calls the CLI needs (open, create, attribute queries,
// ownership and mode changes, send, receive, unlink, close). The Linux
// implementation talks to the kernel directly through golang.org/x/sys/unix;
// other platforms get a stub that reports the operation as unsupported.
// Statter is optional: only implementations that expose a descriptor view of
// the queue can report owner, group, and permission bits.
//
// Queue names are validated with SaneName before any call reaches the kernel.
package mqueue
