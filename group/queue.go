package group

import (
	"sync"

	"github.com/notorious-go/fifosem/ordering"
	"github.com/notorious-go/fifosem/ordering/totalorder"
)

// A Queue is a collection of goroutines working on tasks that must maintain a
// strict total order. Each task blocks until all previously submitted tasks have
// completed their execution.
//
// Go must be called from a single goroutine, which defines the order.
//
// A zero Queue is valid and has no limit on the number of active goroutines.
type Queue struct {
	wg       sync.WaitGroup
	limit    limit
	ordering totalorder.TotalOrder
}

// Go calls the given function in a new goroutine. It blocks until the new
// goroutine can be added without the number of active goroutines in the queue
// exceeding the configured limit.
//
// The new goroutine will block before calling f until all previously submitted
// tasks have completed.
func (q *Queue) Go(f func()) {
	op := q.ordering.HappensNext()
	q.limit.acquire()
	q.wg.Add(1)
	go func() {
		defer q.done(op)
		<-op.Ready()
		f()
	}()
}

func (q *Queue) done(op ordering.Operation) {
	op.Complete()
	q.limit.release()
	q.wg.Done()
}

// Wait blocks until all function calls from the Go method have returned.
func (q *Queue) Wait() {
	q.wg.Wait()
}

// SetLimit limits the number of active goroutines in this queue to at most n. A
// negative value indicates no limit. A zero value will block any further calls
// to Go.
//
// The limit must not be modified while any goroutines in the queue are active.
func (q *Queue) SetLimit(n int) {
	q.limit.set("queue", n)
}
