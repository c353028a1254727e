package newick

// Options controls what the constructed tree stores.
type Options struct {
	// StoreLabels keeps node labels. Disable to save memory when only
	// topology and lengths matter; label bytes are then skipped, not
	// buffered.
	StoreLabels bool

	// StoreLengths keeps edge lengths. When disabled, length tokens are
	// skipped without validation, matching a topology-only load.
	StoreLengths bool

	// Reserve pre-sizes the store for roughly this many nodes. Purely a
	// performance hint; correctness does not depend on it.
	Reserve int
}

// DefaultOptions stores both labels and lengths with no reservation.
func DefaultOptions() Options {
	return Options{StoreLabels: true, StoreLengths: true}
}
