package sysmon

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	assert.GreaterOrEqual(t, s.CPUPercent, 0.0)
	assert.LessOrEqual(t, s.CPUPercent, 100.0)
	assert.GreaterOrEqual(t, s.MemPercent, 0.0)
	assert.LessOrEqual(t, s.MemPercent, 100.0)
	assert.GreaterOrEqual(t, s.Load1, 0.0)
}

func TestSample_LinuxFigures(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("process and memory figures are checked on linux only")
	}
	s := Sample()
	assert.NotZero(t, s.MemPercent, "expected non-zero MemPercent on a running system")
	assert.NotZero(t, s.ProcessRSS, "expected the test process to have a resident set")
	assert.Positive(t, s.LogicalCPU)
}
