package fibonacci

// Options configures a calculation.
type Options struct {
	// Modulus is the modulus results are reduced by. Zero selects
	// DefaultModulus.
	Modulus Modulus
	// MemoryLimit is the memory budget in bytes for calculators whose
	// footprint grows with n. Zero means the memory currently available
	// on the host.
	MemoryLimit uint64
}

// normalizeOptions returns a copy of opts with default values filled in for zero values.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.Modulus == 0 {
		normalized.Modulus = DefaultModulus
	}
	return normalized
}
