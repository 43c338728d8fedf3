package common

// PageSize is the size, in bytes, of every page moved between disk and the
// buffer pool.
const PageSize = 4096

// Config carries the construction-time knobs for a buffer manager. Unlike
// the rest of the ambient stack there is no config file, flag, or env var
// binding here -- a caller builds one of these directly, the way the
// corpus's own BufferPoolManager constructors take plain parameters rather
// than reading global state.
type Config struct {
	// Frames is the number of frames (N) in the pool. Required, must be >= 1.
	Frames int

	// Debug gates verbose tracing of frame assignment and cache-in/cache-out
	// (clock sweeps are not traced), mirroring the corpus's EnableDebug-gated fmt.Printf
	// tracing.
	Debug bool

	// ConcurrencyGuard enables the re-entrancy detector described in the
	// spec's concurrency section. Off by default since the buffer manager
	// is documented as single-threaded and the guard costs a non-zero
	// amount of bookkeeping on every public call.
	ConcurrencyGuard bool

	// HardenedGuard swaps the bare re-entrancy counter for a
	// deadlock-detecting mutex (github.com/sasha-s/go-deadlock), trading a
	// small constant overhead for a diagnosable panic (with a goroutine
	// dump) instead of a silent hang if two goroutines ever do race on the
	// manager. Only meaningful when ConcurrencyGuard is also set.
	HardenedGuard bool

	// Logger receives trace and diagnostic output. Defaults to
	// NewLogger() (stderr) when nil.
	Logger Logger
}

// DefaultConfig returns a Config for Frames frames with every optional
// knob left off, the common case for a single-threaded embedding.
func DefaultConfig(frames int) Config {
	return Config{Frames: frames}
}
