package totalorder_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notorious-go/fifosem/ordering"
	"github.com/notorious-go/fifosem/ordering/ordertest"
	"github.com/notorious-go/fifosem/ordering/totalorder"
)

func TestTotalOrderings(t *testing.T) {
	var alice, bob totalorder.TotalOrder
	events := []ordertest.Event{
		{Token: "A1", HappensAfter: nil, Operation: alice.HappensNext()},
		{Token: "B1", HappensAfter: nil, Operation: bob.HappensNext()},
		{Token: "A2", HappensAfter: []string{"A1"}, Operation: alice.HappensNext()},
		{Token: "B2", HappensAfter: []string{"B1"}, Operation: bob.HappensNext()},
		{Token: "A3", HappensAfter: []string{"A2"}, Operation: alice.HappensNext()},
		{Token: "B3", HappensAfter: []string{"B2"}, Operation: bob.HappensNext()},
	}
	ordertest.Test(t, events)
}

func TestCompleteTwice(t *testing.T) {
	var order totalorder.TotalOrder
	op := order.HappensNext()
	require.True(t, ordering.Ready(op))
	op.Complete()
	require.NotPanics(t, op.Complete)
	require.True(t, ordering.Completed(op))
}

func TestMutexAdmitsInArrivalOrder(t *testing.T) {
	var mu totalorder.Mutex
	ordertest.Test(t, ordertest.Chain(mu.Next, "1", "2", "3", "4", "5"))
}

func TestMutexBlocksLaterEntrants(t *testing.T) {
	var mu totalorder.Mutex
	unlock := mu.Lock()

	next := mu.Next()
	require.False(t, ordering.Ready(next), "entrant admitted while the lock is held")

	unlock()
	unlock()
	<-next.Ready()
	next.Complete()

	// The chain is idle again, so a fresh Lock proceeds immediately.
	mu.Lock()()
}

func TestMutexExclusion(t *testing.T) {
	const workers, rounds = 16, 200

	var (
		mu      totalorder.Mutex
		wg      sync.WaitGroup
		holders int
		total   int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				unlock := mu.Lock()
				holders++
				if holders != 1 {
					t.Errorf("%d holders inside the critical section", holders)
				}
				total++
				holders--
				unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, workers*rounds, total)
}
