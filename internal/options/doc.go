// Package options turns the raw tokens that follow a verb into a Request.
//
// Each recognised option is an Option value: a set of aliases, a Parse step
// that consumes the following token, and a Validate predicate. Per-verb tables
// are assembled by the Table constructors and driven by Dispatch, which never
// aborts on malformed input. Validation is a separate, all-or-nothing pass
// (ValidateAll) that runs before any queue is touched.
//
// Parse and Validate return errors instead of printing. Dispatch and
// ValidateAll are the only places that turn those errors into diagnostics.
package options
