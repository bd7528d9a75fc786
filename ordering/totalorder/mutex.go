package totalorder

import (
	"sync"

	"github.com/notorious-go/fifosem/ordering"
)

// Mutex is a mutual exclusion lock that admits its holders in strict arrival
// order. It is a TotalOrder that may be extended from any goroutine: every
// call to Next or Lock links a new operation after the current tail of the
// chain, and the operation becomes ready only once its predecessor completes.
//
// Unlike sync.Mutex, a goroutine blocked on Lock can never be overtaken by a
// later arrival. The price is that a holder which forgets to unlock stalls
// every later entrant forever.
//
// The zero Mutex is unlocked and ready to use. A Mutex must not be copied
// after first use.
type Mutex struct {
	// mu serializes extension of the chain; it is never held while waiting.
	mu    sync.Mutex
	order TotalOrder
}

// Next enqueues a new entry into the critical section and returns it without
// waiting. The entry holds the lock from the moment its Ready channel closes
// until Complete is called.
//
// Next lets callers fix their place in line before blocking, for instance to
// select on Ready alongside other channels. The returned Operation MUST be
// completed whether or not the caller ended up waiting on it.
func (m *Mutex) Next() ordering.Operation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.HappensNext()
}

// Lock blocks until every earlier entrant has unlocked, then returns the
// function that unlocks the Mutex. Callers should defer it immediately:
//
//	unlock := m.Lock()
//	defer unlock()
//
// Calling unlock more than once is a no-op.
func (m *Mutex) Lock() (unlock func()) {
	return ordering.Await(m.Next())
}
