// Package group runs functions in goroutines while bounding how many of them
// are active at once.
//
// The bound is a FIFO semaphore: when a group is at its limit, callers of Go
// block and are admitted in the order they called Go. A [Queue] additionally
// runs its functions one after another, in submission order.
//
// The zero value of each group is valid and has no limit.
package group
