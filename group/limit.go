package group

import (
	"fmt"

	"github.com/notorious-go/fifosem/semaphore"
)

// limit is the optional concurrency bound shared by Group and Queue. The nil
// limit never blocks.
type limit struct {
	sem *semaphore.Semaphore
}

func (l *limit) acquire() {
	if l.sem != nil {
		l.sem.Acquire()
	}
}

func (l *limit) release() {
	if l.sem != nil {
		l.sem.Release()
	}
}

// active returns the number of permits held or awaited.
func (l *limit) active() int {
	if l.sem == nil {
		return 0
	}
	return l.sem.MaxPermits() - l.sem.Permits() + l.sem.Waiting()
}

func (l *limit) set(kind string, n int) {
	if active := l.active(); active != 0 {
		panic(fmt.Errorf("%s: modify limit while %v goroutines in the group are still active", kind, active))
	}
	if n < 0 {
		l.sem = nil
		return
	}
	sem, err := semaphore.New(n, semaphore.Options{Name: kind})
	if err != nil {
		panic(err)
	}
	l.sem = sem
}
