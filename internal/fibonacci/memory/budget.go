// Package memory estimates and parses the memory budgets applied to
// calculators whose footprint grows with n.
package memory

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	units "github.com/docker/go-units"
	"github.com/shirou/gopsutil/v4/mem"
)

// MaxAddressableBytes is the largest single allocation the Go runtime accepts:
// 2^48 bytes on 64-bit platforms, 2^31 on 32-bit ones.
const MaxAddressableBytes uint64 = 1 << (31 + 17*(^uint(0)>>63))

// EstimateTableBytes returns the size of a table holding entries 0..n of
// entryBytes each. ok is false when the table cannot be allocated at all,
// either because the size overflows uint64 (bytes is then math.MaxUint64) or
// because it exceeds MaxAddressableBytes.
func EstimateTableBytes(n uint64, entryBytes uint64) (bytes uint64, ok bool) {
	if n == math.MaxUint64 {
		return math.MaxUint64, false
	}
	hi, lo := bits.Mul64(n+1, entryBytes)
	if hi != 0 {
		return math.MaxUint64, false
	}
	return lo, lo <= MaxAddressableBytes
}

// AvailableBytes reports the memory the operating system can currently hand
// out without swapping. It returns 0 when the figure cannot be read.
func AvailableBytes() uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0
	}
	return vm.Available
}

// ParseMemoryLimit parses a human-readable size such as "128MB", "2GB" or
// "4096" (bytes) into a byte count. Units are binary (1KB = 1024 bytes) and
// case-insensitive. An empty string means no limit and yields 0.
func ParseMemoryLimit(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid memory limit %q: %w", s, err)
	}
	// RAMInBytes scales through float64, so an oversized value wraps or
	// saturates instead of failing.
	if n < 0 || n == math.MaxInt64 {
		return 0, fmt.Errorf("memory limit %q overflows", s)
	}
	return uint64(n), nil
}
