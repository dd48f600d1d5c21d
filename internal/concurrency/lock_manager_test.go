package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEconomyLock_WritersAreExclusive(t *testing.T) {
	lock := NewEconomyLock()

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := lock.Writer()
			w.Lock()
			defer w.Unlock()

			n := atomic.AddInt32(&active, 1)
			for {
				m := atomic.LoadInt32(&maxActive)
				if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive)
}

func TestEconomyLock_ReadersShareButWaitForWriter(t *testing.T) {
	lock := NewEconomyLock()

	r1, r2 := lock.Reader(), lock.Reader()
	r1.Lock()
	acquired := make(chan struct{})
	go func() {
		r2.Lock()
		close(acquired)
		r2.Unlock()
	}()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second reader blocked behind first reader")
	}
	r1.Unlock()

	w := lock.Writer()
	w.Lock()
	readDone := make(chan struct{})
	go func() {
		r := lock.Reader()
		r.Lock()
		close(readDone)
		r.Unlock()
	}()
	select {
	case <-readDone:
		t.Fatal("reader entered while writer held the lock")
	case <-time.After(50 * time.Millisecond):
	}
	w.Unlock()
	<-readDone
}
