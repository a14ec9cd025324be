package sessions

import "sync"

// ThreadLocks serializes interactions per thread id so a client that
// double-submits with the same threadId cannot race two pollers against one
// remote thread. Entries are reference-counted and removed when released.
type ThreadLocks struct {
	mu    sync.Mutex
	locks map[string]*threadLock
}

type threadLock struct {
	mu   sync.Mutex
	refs int
}

func NewThreadLocks() *ThreadLocks {
	return &ThreadLocks{locks: make(map[string]*threadLock)}
}

func (t *ThreadLocks) Lock(threadID string) {
	t.mu.Lock()
	l, ok := t.locks[threadID]
	if !ok {
		l = &threadLock{}
		t.locks[threadID] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()
}

func (t *ThreadLocks) Unlock(threadID string) {
	t.mu.Lock()
	l, ok := t.locks[threadID]
	if !ok {
		t.mu.Unlock()
		return
	}
	l.refs--
	if l.refs == 0 {
		delete(t.locks, threadID)
	}
	t.mu.Unlock()

	l.mu.Unlock()
}
