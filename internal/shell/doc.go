// Package shell implements an interactive job-control shell: a read/eval
// loop over standard input plus the goroutines that service child-status
// and keyboard signals.
//
// External programs run as jobs in their own process groups, tracked in a
// jobs.Registry. The evaluator, the child reaper, and the keyboard relays
// all touch the registry under its Gate; the reaper is the single writer
// for signal-driven state changes.
package shell
