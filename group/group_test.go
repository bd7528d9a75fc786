package group_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notorious-go/fifosem/group"
	"github.com/notorious-go/fifosem/ordering/ordertest"
)

// This example demonstrates using Queue to process events in strict sequential
// order, ensuring that each event is fully processed before the next one begins.
func ExampleQueue() {
	var queue group.Queue
	queue.SetLimit(2)

	migrations := []string{"create_users", "add_email_index", "create_posts", "add_foreign_keys"}
	for i, migration := range migrations {
		queue.Go(func() {
			fmt.Printf("Running migration %d: %s\n", i+1, migration)
		})
	}
	queue.Wait()
	fmt.Println("All migrations completed")

	// Output:
	// Running migration 1: create_users
	// Running migration 2: add_email_index
	// Running migration 3: create_posts
	// Running migration 4: add_foreign_keys
	// All migrations completed
}

func TestGroupRespectsLimit(t *testing.T) {
	const limit, tasks = 3, 50

	var (
		g       group.Group
		running atomic.Int64
		peak    atomic.Int64
		ran     atomic.Int64
	)
	g.SetLimit(limit)
	for range tasks {
		g.Go(func() {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			ran.Add(1)
			running.Add(-1)
		})
	}
	g.Wait()

	require.Equal(t, int64(tasks), ran.Load())
	require.LessOrEqual(t, peak.Load(), int64(limit))
}

func TestGroupUnlimited(t *testing.T) {
	var g group.Group
	release := make(chan struct{})
	var started atomic.Int64
	for range 10 {
		g.Go(func() {
			started.Add(1)
			<-release
		})
	}
	// Go never blocked, so all ten calls returned while the functions wait.
	close(release)
	g.Wait()
	require.Equal(t, int64(10), started.Load())
}

func TestSetLimitWhileActivePanics(t *testing.T) {
	var g group.Group
	g.SetLimit(1)
	release := make(chan struct{})
	g.Go(func() { <-release })

	require.Panics(t, func() { g.SetLimit(2) })

	close(release)
	g.Wait()
	require.NotPanics(t, func() { g.SetLimit(-1) })
}

func TestQueueOrder(t *testing.T) {
	var (
		q   group.Queue
		rec ordertest.Recorder
	)
	q.SetLimit(4)
	var want []string
	for i := range 20 {
		token := fmt.Sprint(i)
		want = append(want, token)
		q.Go(func() { rec.Record(token) })
	}
	q.Wait()
	rec.Expect(t, want...)
}
