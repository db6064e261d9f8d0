package metrics

import (
	"errors"
	"time"
)

// ErrUnsupported is returned by ReadResourceUsage on platforms without
// getrusage(2).
var ErrUnsupported = errors.New("resource usage is not available on this platform")

// ResourceUsage is the CPU time and peak memory of the current process,
// as reported by getrusage(RUSAGE_SELF).
type ResourceUsage struct {
	UserTime   time.Duration
	SystemTime time.Duration
	// MaxRSS is the peak resident set size in bytes.
	MaxRSS uint64
}

// CPUTime returns user plus system time.
func (u ResourceUsage) CPUTime() time.Duration {
	return u.UserTime + u.SystemTime
}
