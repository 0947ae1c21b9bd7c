// Package reconcile converges a named queue to the attributes requested by a
// create/attr invocation, whether or not the queue existed beforehand.
package reconcile
