// Package metrics reads the resources consumed by the running process: Go
// runtime memory statistics and, where the platform supports getrusage(2),
// CPU time and peak resident set size.
package metrics
