// Package format contains display helpers shared by the CLI: durations,
// byte sizes, digit grouping and progress with ETA estimation.
package format
