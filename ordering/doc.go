// Package ordering provides the building blocks used to serialize concurrent
// operations in a definite order. The semaphore package relies on them to
// admit acquire and release calls into its critical section one at a time,
// first come first served.
//
// The package is organized into sub-packages:
//
//   - totalorder: Enforces strict sequential ordering of all operations, and
//     offers a FIFO-fair Mutex built on that ordering.
//   - ordertest: Helpers for verifying the execution order of operations in
//     tests.
//
// # Operation Interface
//
// The [Operation] interface is the core abstraction that the orderings build
// upon. It provides three methods:
//
//   - Ready(): Returns a channel that closes when the operation can begin
//   - Complete(): Marks the operation as finished, unblocking dependent operations
//   - Completed(): Returns a channel that closes when Complete() is called
//
// # Usage Patterns
//
//	var order totalorder.TotalOrder
//	op := order.HappensNext()
//	go func() {
//	    defer op.Complete()
//	    <-op.Ready()
//	    // perform work
//	}()
//
// The Await helper function simplifies the common pattern:
//
//	done := ordering.Await(op)
//	defer done()
//	// ... perform operation ...
//
// Workers that give up on an operation must still complete it, otherwise every
// operation ordered after it blocks forever:
//
//	select {
//	case <-op.Ready():
//	    defer op.Complete()
//	    // perform work
//	    return nil
//	case <-ctx.Done():
//	    op.Complete() // Important: still call Complete
//	    return ctx.Err()
//	}
package ordering
