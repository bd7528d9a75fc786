// Package ordertest provides utilities for testing ordering guarantees: that
// operations of a TotalOrder or Mutex run in the order they were linked, and
// that blocked semaphore acquirers are released first come first served.
//
// [Test] executes a series of [Event]s concurrently and verifies that all
// declared dependencies were respected. [Recorder] collects the order in which
// concurrent goroutines reached some point, for tests that drive the
// goroutines themselves.
//
//	var order totalorder.TotalOrder
//	ordertest.Test(t, ordertest.Chain(order.HappensNext, "first", "second"))
package ordertest

import (
	"slices"
	"sync"
	"testing"

	"github.com/notorious-go/fifosem/ordering"
)

// Recorder collects tokens from concurrent goroutines in the order they were
// recorded. The zero Recorder is ready to use.
type Recorder struct {
	mu     sync.Mutex
	tokens []string
}

// Record appends token to the recorded order.
func (r *Recorder) Record(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = append(r.tokens, token)
}

// Tokens returns a copy of the tokens recorded so far.
func (r *Recorder) Tokens() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.tokens)
}

// Expect fails the test unless exactly the given tokens were recorded, in
// that order.
func (r *Recorder) Expect(t testing.TB, want ...string) {
	t.Helper()
	if got := r.Tokens(); !slices.Equal(got, want) {
		t.Errorf("recorded order %v, want %v", got, want)
	}
}

// Test runs every event in its own goroutine and verifies that all dependency
// constraints were satisfied.
//
// Goroutines are spawned in reverse order to stress the ordering. Each one
// waits for its Operation to be ready, records its token, and completes the
// Operation.
func Test(t *testing.T, events []Event) {
	t.Helper()

	var (
		rec Recorder
		wg  sync.WaitGroup
	)
	for _, event := range slices.Backward(events) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer event.Operation.Complete()

			select {
			case <-event.Operation.Ready():
				t.Logf("Processing event %s", event.Token)
			case <-t.Context().Done():
				t.Errorf("test interrupted before event %s could be processed", event.Token)
			}
			rec.Record(event.Token)
		}()
	}
	wg.Wait()

	tokens := rec.Tokens()
	for _, event := range events {
		event.Check(t, tokens)
	}
}

// Chain returns a linear sequence of events, one per token, where each event
// happens after the previous one. The operations are obtained by calling next
// in token order, which is how the ordering under test learns the sequence.
func Chain(next func() ordering.Operation, tokens ...string) []Event {
	events := make([]Event, 0, len(tokens))
	for i, token := range tokens {
		var after []string
		if i > 0 {
			after = []string{tokens[i-1]}
		}
		events = append(events, Event{Token: token, HappensAfter: after, Operation: next()})
	}
	return events
}

// Event is a step in a concurrent test.
type Event struct {
	// Token uniquely identifies the event in the processing order.
	Token string

	// HappensAfter lists the tokens of events that must be processed before
	// this one.
	HappensAfter []string

	// Operation enforces the declared dependencies. Test waits for it to be
	// ready before processing the event and completes it afterwards.
	Operation ordering.Operation
}

// Check verifies that the event was processed and that all of its
// dependencies were processed before it in the given order.
func (e Event) Check(t testing.TB, tokens []string) {
	t.Helper()

	at := slices.Index(tokens, e.Token)
	if at < 0 {
		t.Errorf("event %v was not processed", e.Token)
		return
	}
	for _, dep := range e.HappensAfter {
		if !slices.Contains(tokens[:at], dep) {
			t.Errorf("event %v: dependency %v was not processed before it", e.Token, dep)
		}
	}
}
