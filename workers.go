package md2site

import "runtime"

// Worker count bounds for batch conversion.
const (
	// MinWorkers ensures at least one document is converted at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrent conversions.
	MaxWorkers = 32
)

// ResolveWorkers determines how many documents to convert concurrently.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs in the CLI).
// The result is always within [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
