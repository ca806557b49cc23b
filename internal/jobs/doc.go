// Package jobs provides the job table for a job-control shell.
//
// A Job tracks one child process: its pid, a small display id, its run
// state, and the command line that started it. A Registry holds up to
// MaxJobs concurrently-live Jobs in a fixed-size table.
//
// The Registry performs no locking of its own. Every operation must be
// performed while holding the Registry's Gate, which serializes the
// evaluator against the goroutines servicing child-status and keyboard
// signals.
package jobs
