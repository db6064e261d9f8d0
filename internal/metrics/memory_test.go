package metrics

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sink []byte

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	assert.NotZero(t, snap.HeapAlloc)
	assert.NotZero(t, snap.Sys)
	assert.GreaterOrEqual(t, snap.TotalAlloc, snap.HeapAlloc)
}

func TestMemoryCollector_AllocatedSince(t *testing.T) {
	mc := NewMemoryCollector()
	before := mc.Snapshot()
	sink = make([]byte, 1<<20)
	after := mc.Snapshot()

	assert.GreaterOrEqual(t, after.AllocatedSince(before), uint64(1<<20))
	assert.Zero(t, before.AllocatedSince(after))
}

func TestReadResourceUsage(t *testing.T) {
	t.Parallel()

	usage, err := ReadResourceUsage()
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd", "netbsd", "openbsd":
		require.NoError(t, err)
		assert.NotZero(t, usage.MaxRSS)
		assert.GreaterOrEqual(t, usage.CPUTime(), time.Duration(0))
	default:
		assert.ErrorIs(t, err, ErrUnsupported)
	}
}

func TestResourceUsage_CPUTime(t *testing.T) {
	t.Parallel()

	u := ResourceUsage{UserTime: 3 * time.Millisecond, SystemTime: 2 * time.Millisecond}
	assert.Equal(t, 5*time.Millisecond, u.CPUTime())
}
