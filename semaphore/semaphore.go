package semaphore

import (
	"fmt"
	"sync/atomic"

	"github.com/gammazero/deque"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/notorious-go/fifosem/ordering/totalorder"
)

// ErrInvalidArgument is returned by New when the requested capacity is
// negative.
var ErrInvalidArgument = errors.New("invalid argument")

// Semaphore is a counting semaphore that hands out permits in strict arrival
// order.
//
// Every Acquire and Release runs inside a critical section admitted first come
// first served. A Release always hands its permit directly to the longest
// waiting acquirer, if any, instead of returning it to the counter. As a
// result the counter is zero whenever acquirers are queued, and a newly
// arriving acquirer can never overtake them.
//
// A Semaphore must be created with New and must not be copied.
type Semaphore struct {
	name string
	max  int
	log  logrus.FieldLogger

	// mu guards waiters and all writes to permits.
	mu      totalorder.Mutex
	permits atomic.Int64
	waiting atomic.Int64
	waiters deque.Deque[chan struct{}]
}

// New creates a semaphore holding the given number of permits, which is also
// its fixed capacity. A zero capacity is valid: every Acquire then waits for
// a Release.
func New(permits int, opts Options) (*Semaphore, error) {
	if permits < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "semaphore: permits must be non-negative, got %d", permits)
	}
	s := &Semaphore{
		name: opts.Name,
		max:  permits,
		log:  opts.logger(),
	}
	s.permits.Store(int64(permits))
	s.trace().Debug("Created semaphore")
	return s, nil
}

// Acquire blocks until the caller holds a permit.
//
// When no permit is available the caller is queued behind every earlier
// waiter and stays blocked until a Release hands it a permit. There is no
// timeout and no way to leave the queue.
func (s *Semaphore) Acquire() {
	wake, ok := s.enqueue()
	if ok {
		return
	}
	<-wake
	s.trace().Debug("Acquired permit from queue")
}

// enqueue takes a permit from the counter, or queues a wake channel that a
// later Release closes.
func (s *Semaphore) enqueue() (wake <-chan struct{}, acquired bool) {
	unlock := s.mu.Lock()
	defer unlock()

	s.trace().Debug("Acquiring permit")
	if s.permits.Load() > 0 {
		s.permits.Add(-1)
		s.trace().Debug("Acquired permit")
		return nil, true
	}
	ch := make(chan struct{})
	s.waiters.PushBack(ch)
	s.waiting.Add(1)
	s.trace().Debug("No permit available, queued")
	return ch, false
}

// TryAcquire takes a permit if one is available without queueing, and
// reports whether it did. It fails while other acquirers are queued, since
// those are owed the next permit.
func (s *Semaphore) TryAcquire() bool {
	unlock := s.mu.Lock()
	defer unlock()

	if s.permits.Load() == 0 {
		return false
	}
	s.permits.Add(-1)
	s.trace().Debug("Acquired permit without waiting")
	return true
}

// Release returns a permit. If acquirers are queued, the permit goes straight
// to the one that has waited longest and the counter is left untouched.
//
// Releasing a semaphore that already holds all of its permits, with nobody
// waiting, is an over-release. It changes nothing and is only reported as a
// warning in the debug log.
func (s *Semaphore) Release() {
	unlock := s.mu.Lock()
	defer unlock()

	s.trace().Debug("Releasing permit")
	if s.waiters.Len() > 0 {
		wake := s.waiters.PopFront()
		s.waiting.Add(-1)
		close(wake)
		s.trace().Debug("Handed permit to queued acquirer")
		return
	}
	if s.permits.Load() < int64(s.max) {
		s.permits.Add(1)
		s.trace().Debug("Returned permit")
		return
	}
	s.trace().Warn("Release called with all permits available, ignoring")
}

// Permits returns the number of permits available right now. The value may be
// stale as soon as it is returned.
func (s *Semaphore) Permits() int {
	return int(s.permits.Load())
}

// MaxPermits returns the capacity the semaphore was created with.
func (s *Semaphore) MaxPermits() int {
	return s.max
}

// Waiting returns the number of acquirers queued right now.
func (s *Semaphore) Waiting() int {
	return int(s.waiting.Load())
}

// String returns the state of the semaphore in the form
// "Semaphore(name: available/max, n waiting)".
func (s *Semaphore) String() string {
	label := ""
	if s.name != "" {
		label = s.name + ": "
	}
	return fmt.Sprintf("Semaphore(%s%d/%d, %d waiting)", label, s.Permits(), s.max, s.Waiting())
}

// trace returns the debug logger annotated with the current state.
func (s *Semaphore) trace() logrus.FieldLogger {
	if s.log == nil {
		return discard
	}
	return s.log.WithFields(logrus.Fields{
		"permits": s.Permits(),
		"max":     s.max,
		"waiting": s.Waiting(),
	})
}
