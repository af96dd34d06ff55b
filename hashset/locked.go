package hashset

import "sync"

// LockedSet wraps a ProbingStringSet behind a single mutex. Resize swaps out
// the whole slot array, which is incompatible with concurrent probes, so
// every operation takes the table-wide lock; there is no finer granularity
// to offer.
type LockedSet struct {
	mu  sync.Mutex
	set ProbingStringSet
}

// NewLocked returns an empty, uninitialized locked set.
func NewLocked() *LockedSet {
	return &LockedSet{}
}

func (l *LockedSet) Hash(key string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Hash(key)
}

func (l *LockedSet) Resize(newCapacity int) ResizeOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Resize(newCapacity)
}

func (l *LockedSet) Add(value string) AddOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Add(value)
}

func (l *LockedSet) Remove(value string) RemoveOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Remove(value)
}

func (l *LockedSet) Search(value string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Search(value)
}

func (l *LockedSet) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Len()
}

func (l *LockedSet) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Capacity()
}

func (l *LockedSet) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.Empty()
}

func (l *LockedSet) DebugString() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set.DebugString()
}
