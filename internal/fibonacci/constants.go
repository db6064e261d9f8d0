package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultModulus is the prime 10^9 + 7, used when no modulus is given.
	DefaultModulus Modulus = 1_000_000_007

	// narrowModulusLimit is the largest modulus for which the product of two
	// reduced residues fits in a uint64: (2^32 - 1)^2 < 2^64.
	narrowModulusLimit Modulus = 1 << 32
)

// ─────────────────────────────────────────────────────────────────────────────
// Linear Baseline Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// CancellationCheckInterval is the number of recurrence steps the O(n)
	// baselines perform between two context polls and progress reports.
	// It must be a power of two.
	CancellationCheckInterval = 1 << 16

	// TableEntryBytes is the size of one stored residue in the table baseline.
	TableEntryBytes = 8
)
