package totalorder

import (
	"sync"

	"github.com/notorious-go/fifosem/ordering"
)

// TotalOrder enforces a strict sequential ordering of all associated operations.
//
// Operations added via HappensNext execute one at a time in the order they were
// added. Each operation links itself after the previously added one and waits
// for that predecessor to complete, which makes the order a chain of deferred
// continuations.
//
// The TotalOrder is not safe for concurrent use. It must be used from a single
// goroutine that is responsible for defining the definitive order of operations.
// Use [Mutex] when the order is defined by whichever goroutine arrives first.
//
// The zero-value TotalOrder is ready to use.
type TotalOrder struct {
	// head is the most recently added operation. It starts as nil and is
	// initialized to a closed channel on first use.
	head chan struct{}
}

// init sets the head of the chain to a closed channel upon first use, so the
// first operation is ready immediately.
func (o *TotalOrder) init() {
	if o.head == nil {
		o.head = make(chan struct{})
		close(o.head)
	}
}

// HappensNext returns an Operation that becomes ready once all previously
// added operations have completed.
//
// IMPORTANT: The caller MUST call Complete() on the returned Operation, even if
// the work fails or is abandoned. Otherwise every following operation blocks
// indefinitely.
func (o *TotalOrder) HappensNext() ordering.Operation {
	o.init()
	wait := o.head
	done := make(chan struct{})
	o.head = done
	return &totalOperation{
		wait: wait,
		done: done,
	}
}

type totalOperation struct {
	// Closed when the predecessor completes.
	wait <-chan struct{}
	// Closed by Complete, readying the successor.
	done     chan struct{}
	doneOnce sync.Once
}

func (h *totalOperation) Ready() <-chan struct{} {
	return h.wait
}

func (h *totalOperation) Completed() <-chan struct{} {
	return h.done
}

func (h *totalOperation) Complete() {
	h.doneOnce.Do(func() {
		close(h.done)
	})
}
