// Package orchestration runs one or more Fibonacci calculators concurrently
// and compares their results. It depends on presentation only through the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
