// Package semaphore provides a counting semaphore that serves its waiters in
// strict first come, first served order.
//
// # Why This Package Exists
//
// A buffered channel makes a fine semaphore, but the Go runtime makes no
// promise about which blocked sender proceeds when a slot frees up. This
// package is for the cases where that matters: the goroutine that has waited
// longest must be the next to get a permit, and a newly arriving goroutine must
// never overtake it.
//
// # Semantics
//
// A Semaphore is created with a fixed number of permits, which is also its
// capacity. Acquire takes a permit, or queues the caller until one is handed
// over. Release hands its permit to the head of the queue when someone is
// waiting, and only otherwise returns it to the counter. Two invariants follow:
//
//   - The number of available permits is always between zero and the capacity.
//   - While any acquirer is queued, no permit is available.
//
// Releasing more permits than were acquired is tolerated: the extra Release is
// ignored, and reported as a warning when debugging is enabled.
//
// # When NOT to Use This Package
//
//   - Weighted semaphores (acquiring multiple tokens at once): Use golang.org/x/sync/semaphore
//   - Context cancellation or timeouts: a queued Acquire cannot be withdrawn
//   - Reentrancy: permits have no owner, so a goroutine that acquires twice holds two
//
// # Implementation
//
// State changes are serialized by a [totalorder.Mutex], which admits its
// holders in the order they arrived. Each queued acquirer waits on its own
// channel, which the releasing goroutine closes.
//
// [totalorder.Mutex]: https://pkg.go.dev/github.com/notorious-go/fifosem/ordering/totalorder#Mutex
package semaphore
