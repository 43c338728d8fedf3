package common

import (
	"fmt"

	"github.com/sasha-s/go-deadlock"
)

// ConcurrencyGuard is the debug aid described in the spec's concurrency
// section: the buffer manager itself is single-threaded and takes no
// internal lock, so a caller that fails to serialize its own calls (or
// fails to provide external mutual exclusion across goroutines) has a
// programming error. A zero-value ConcurrencyGuard is a no-op; call Init
// to activate it.
//
// This is the same shape as the corpus's readerWriterLatchDummy, which
// panics on a second concurrent Lock rather than actually blocking --
// useful for catching broken locking discipline in tests and development
// builds without paying for a lock in the hot path.
type ConcurrencyGuard struct {
	enabled  bool
	hardened bool
	inFlight int32
	mu       deadlock.Mutex
}

// Init activates the guard. hardened selects a deadlock.Mutex-backed
// implementation that panics with a full goroutine dump on a suspected
// deadlock instead of silently hanging; otherwise the guard only detects
// naive re-entrancy (two overlapping calls from different goroutines),
// which is cheaper but cannot catch every misuse.
func (g *ConcurrencyGuard) Init(hardened bool) {
	g.enabled = true
	g.hardened = hardened
}

// Enter must be paired with a deferred call to Leave around every public
// buffer-manager operation. It panics if another call is already in
// flight. In hardened mode Enter first acquires the mutex, so a call from
// another goroutine waits there until the in-flight call has left.
func (g *ConcurrencyGuard) Enter(op string) {
	if !g.enabled {
		return
	}
	if g.hardened {
		g.mu.Lock()
	}
	if g.inFlight != 0 {
		panic(fmt.Sprintf("pagebuf: concurrent call to %s while another buffer-manager call is in flight -- "+
			"the buffer manager is single-threaded and requires external mutual exclusion (see Config.ConcurrencyGuard)", op))
	}
	g.inFlight++
}

// Leave releases the guard acquired by Enter.
func (g *ConcurrencyGuard) Leave() {
	if !g.enabled {
		return
	}
	g.inFlight--
	if g.hardened {
		g.mu.Unlock()
	}
}
