package sessions

import (
	"sync"
	"testing"
	"time"
)

func TestThreadLocksSerializeSameThread(t *testing.T) {
	locks := NewThreadLocks()
	locks.Lock("thread_1")

	acquired := make(chan struct{})
	go func() {
		locks.Lock("thread_1")
		close(acquired)
		locks.Unlock("thread_1")
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired the lock while the first still held it")
	case <-time.After(50 * time.Millisecond):
	}

	locks.Unlock("thread_1")

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second holder never acquired the lock after release")
	}
}

func TestThreadLocksIndependentThreads(t *testing.T) {
	locks := NewThreadLocks()
	locks.Lock("thread_a")

	acquired := make(chan struct{})
	go func() {
		locks.Lock("thread_b")
		close(acquired)
		locks.Unlock("thread_b")
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("distinct thread ids must not block each other")
	}

	locks.Unlock("thread_a")
}

func TestThreadLocksCleanUpEntries(t *testing.T) {
	locks := NewThreadLocks()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("thread_busy")
			locks.Unlock("thread_busy")
		}()
	}
	wg.Wait()

	locks.mu.Lock()
	remaining := len(locks.locks)
	locks.mu.Unlock()
	if remaining != 0 {
		t.Errorf("expected lock map to be empty after all releases, got %d entries", remaining)
	}
}
