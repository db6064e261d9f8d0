//go:build linux || darwin || freebsd || netbsd || openbsd

package metrics

import (
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

// ReadResourceUsage returns the resources consumed so far by this process.
func ReadResourceUsage() (ResourceUsage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return ResourceUsage{}, err
	}

	maxRSS := uint64(ru.Maxrss)
	// Darwin reports bytes, the others kilobytes.
	if runtime.GOOS != "darwin" {
		maxRSS *= 1024
	}

	return ResourceUsage{
		UserTime:   time.Duration(ru.Utime.Nano()),
		SystemTime: time.Duration(ru.Stime.Nano()),
		MaxRSS:     maxRSS,
	}, nil
}
