// Package batch applies one queue operation across every target of an
// invocation and folds the per-target results into a single exit status.
//
// Targets are processed sequentially in the order they were given. A failing
// target never stops the batch; the final status is the last failure seen.
// Each target's handle is opened, used, and closed before the next target is
// touched.
package batch
