package fibonacci

import (
	"context"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci/memory"
)

// TableCalculator fills a table of n+1 residues with the recurrence
// F(i) = F(i-1) + F(i-2) mod P and returns its last entry. It takes O(n)
// time and O(n) memory.
type TableCalculator struct {
	// Available reports the memory free for the table when no explicit
	// limit is set. Nil means memory.AvailableBytes.
	Available func() uint64
}

// Name returns the display name of the algorithm.
func (c *TableCalculator) Name() string {
	return "Table (O(n) time, O(n) memory)"
}

// CalculateCore checks the table footprint against the memory budget before
// allocating, then runs the recurrence. An index whose table could not be
// addressed, or would exceed opts.MemoryLimit, yields an
// apperrors.MemoryError without allocating. With no limit set, the memory
// currently available to the process acts as the limit.
func (c *TableCalculator) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (uint64, error) {
	if n < 2 {
		return n, nil
	}

	bytes, ok := memory.EstimateTableBytes(n, TableEntryBytes)
	if !ok {
		return 0, apperrors.MemoryError{Requested: bytes}
	}
	limit := opts.MemoryLimit
	if limit == 0 {
		limit = c.available()
	}
	if limit > 0 && bytes > limit {
		return 0, apperrors.MemoryError{Requested: bytes, Limit: limit}
	}

	p := opts.Modulus
	table := make([]uint64, n+1)
	table[1] = p.Reduce(1)
	for i := uint64(2); i <= n; i++ {
		table[i] = p.add(table[i-1], table[i-2])
		if i&(CancellationCheckInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			reporter(float64(i) / float64(n))
		}
	}
	return table[n], nil
}

func (c *TableCalculator) available() uint64 {
	if c.Available != nil {
		return c.Available()
	}
	return memory.AvailableBytes()
}
