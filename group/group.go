package group

import "sync"

// A Group is a collection of goroutines whose number is bounded by a limit.
//
// A zero Group is valid and has no limit on the number of active goroutines.
type Group struct {
	wg    sync.WaitGroup
	limit limit
}

// Go calls the given function in a new goroutine. It blocks until the new
// goroutine can be added without the number of active goroutines in the group
// exceeding the configured limit. Concurrent callers blocked in Go are
// admitted in the order they called it.
func (g *Group) Go(f func()) {
	g.limit.acquire()
	g.wg.Add(1)
	go func() {
		defer g.done()
		f()
	}()
}

func (g *Group) done() {
	g.limit.release()
	g.wg.Done()
}

// Wait blocks until all function calls from the Go method have returned.
func (g *Group) Wait() {
	g.wg.Wait()
}

// SetLimit limits the number of active goroutines in this group to at most n. A
// negative value indicates no limit. A zero value will block any further calls
// to Go.
//
// The limit must not be modified while any goroutines in the group are active.
func (g *Group) SetLimit(n int) {
	g.limit.set("group", n)
}
