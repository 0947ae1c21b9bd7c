// Package main hosts the mqctl entrypoint and verb tree.
//
// Each verb is a Cobra command that hands its raw tokens to the option
// tables in internal/options, validates them, and runs the matching batch
// executor against the host's POSIX message queues. Query verbs render
// through the text, table, or JSON reporters defined here.
package main
