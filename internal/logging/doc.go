// Package logging provides a unified logging interface for fibmod.
// It abstracts the underlying logging implementation so that components log
// consistently whether they run under zerolog or a standard log.Logger.
package logging
