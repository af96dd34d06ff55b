package hashset

import (
	"errors"
	"strings"
)

const (
	// maxLoadFactor is the occupied/capacity ratio above which the table
	// doubles. Checked after every insertion.
	maxLoadFactor = 0.7

	// defaultCapacity sizes a table that receives its first Add before any
	// explicit Resize.
	defaultCapacity = 10

	tombstoneMark = "[TOMBSTONE]"
)

// ErrUninitialized is returned when a home index is requested from a table
// that has never been sized (capacity 0). Reducing modulo zero would panic,
// so fail fast instead.
var ErrUninitialized = errors.New("hashset: uninitialized table")

// AddOutcome reports what an Add call did.
type AddOutcome uint8

const (
	Inserted AddOutcome = iota
	AlreadyPresent
)

func (o AddOutcome) String() string {
	if o == AlreadyPresent {
		return "already-present"
	}
	return "inserted"
}

// RemoveOutcome reports what a Remove call did.
type RemoveOutcome uint8

const (
	Removed RemoveOutcome = iota
	NotFound
)

func (o RemoveOutcome) String() string {
	if o == NotFound {
		return "not-found"
	}
	return "removed"
}

// ResizeOutcome reports whether a Resize request was carried out. A rejected
// resize is a normal no-op result, not an error.
type ResizeOutcome uint8

const (
	Resized ResizeOutcome = iota
	RejectedResize
)

func (o ResizeOutcome) String() string {
	if o == RejectedResize {
		return "rejected"
	}
	return "resized"
}

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// slot is a tagged three-way state. A tombstone marks a deleted entry so
// probe chains keep walking past it; representing it as an explicit state
// rather than a sentinel value means no real string can ever alias it.
type slot struct {
	state slotState
	value string
}

// ProbingStringSet is an open-addressing set of unique strings. Collisions
// resolve by linear probing with an interval of 1 and wraparound; deletions
// leave tombstones in place. The zero value is an uninitialized table that
// sizes itself to defaultCapacity on the first Add.
//
// The set is not safe for concurrent use; wrap it in a LockedSet when
// multiple goroutines share one table.
type ProbingStringSet struct {
	slots []slot
	count int
}

// New returns an empty, uninitialized set.
func New() *ProbingStringSet {
	return &ProbingStringSet{}
}

// Hash sums the byte values of key and reduces modulo the current capacity.
// Summing raw bytes is a deliberately weak hash: anagrams such as "ab" and
// "ba" share a home index and rely on probing to coexist. The sum
// accumulates in an int, so only keys long enough to overflow 64 bits wrap;
// the remainder is normalized into [0, capacity) in case they do.
func (s *ProbingStringSet) Hash(key string) (int, error) {
	if len(s.slots) == 0 {
		return 0, ErrUninitialized
	}
	sum := 0
	for i := 0; i < len(key); i++ {
		sum += int(key[i])
	}
	index := sum % len(s.slots)
	if index < 0 {
		index += len(s.slots)
	}
	return index, nil
}

// nextIndex advances the probe by one slot, wrapping to the start of the
// table past the last index.
func (s *ProbingStringSet) nextIndex(index int) int {
	index++
	if index >= len(s.slots) {
		return 0
	}
	return index
}

// Resize changes the capacity of the table, reinserting every stored value
// into a freshly allocated slot array through the normal insertion path.
// Tombstones do not carry over. The request is rejected when newCapacity is
// below 1 or when the surviving values alone would exceed the maximum load
// factor; a rejection leaves the table untouched.
func (s *ProbingStringSet) Resize(newCapacity int) ResizeOutcome {
	if newCapacity < 1 || float64(s.count)/float64(newCapacity) > maxLoadFactor {
		return RejectedResize
	}

	oldSlots := s.slots
	s.slots = make([]slot, newCapacity)

	// Reset the count; addNoResize re-counts the reinserted values. The old
	// table was duplicate-free, so every reinsertion succeeds.
	s.count = 0
	for _, sl := range oldSlots {
		if sl.state == slotOccupied {
			s.addNoResize(sl.value)
		}
	}
	return Resized
}

// Add inserts value into the set. An uninitialized table is first sized to
// the default capacity. If the insertion pushes the load factor past the
// threshold the table doubles afterwards; doubling cannot happen before the
// insert, since whether the count actually grew depends on whether value
// turned out to be a duplicate.
func (s *ProbingStringSet) Add(value string) AddOutcome {
	if len(s.slots) == 0 {
		s.Resize(defaultCapacity)
	}

	outcome := s.addNoResize(value)

	// Hitting the threshold exactly already doubles: the 7th value in a
	// 10-slot table grows it to 20. Explicit Resize is laxer and only
	// rejects capacities that would put the table strictly over.
	if float64(s.count)/float64(len(s.slots)) >= maxLoadFactor {
		s.Resize(len(s.slots) * 2)
	}
	return outcome
}

// addNoResize probes from the home index to the first empty slot. The first
// tombstone seen on the way is remembered as the insertion point, but the
// probe keeps going to rule out a duplicate further along the chain. The
// walk is bounded by the table size so a tombstone-saturated table cannot
// loop.
func (s *ProbingStringSet) addNoResize(value string) AddOutcome {
	index, _ := s.Hash(value) // callers guarantee capacity > 0

	firstTombstone := -1
	for steps := 0; steps < len(s.slots) && s.slots[index].state != slotEmpty; steps++ {
		if s.slots[index].state == slotOccupied && s.slots[index].value == value {
			return AlreadyPresent
		}
		if firstTombstone == -1 && s.slots[index].state == slotTombstone {
			firstTombstone = index
		}
		index = s.nextIndex(index)
	}

	if firstTombstone != -1 {
		index = firstTombstone
	}
	s.slots[index] = slot{state: slotOccupied, value: value}
	s.count++
	return Inserted
}

// Remove overwrites the slot holding value with a tombstone. The table never
// shrinks or reorganizes on removal; that would invalidate probe chains and
// cost a full rehash for no correctness gain.
func (s *ProbingStringSet) Remove(value string) RemoveOutcome {
	index, ok := s.indexOf(value)
	if !ok {
		return NotFound
	}
	s.slots[index] = slot{state: slotTombstone}
	s.count--
	return Removed
}

// Search reports whether value is stored in the set.
func (s *ProbingStringSet) Search(value string) bool {
	_, ok := s.indexOf(value)
	return ok
}

// indexOf probes from the home index through occupied and tombstone slots,
// stopping at the first empty one. Like addNoResize it visits at most
// capacity slots, so the probe terminates even if deletions have left no
// empty slot anywhere.
func (s *ProbingStringSet) indexOf(value string) (int, bool) {
	if len(s.slots) == 0 {
		return 0, false
	}
	index, _ := s.Hash(value)
	for steps := 0; steps < len(s.slots) && s.slots[index].state != slotEmpty; steps++ {
		if s.slots[index].state == slotOccupied && s.slots[index].value == value {
			return index, true
		}
		index = s.nextIndex(index)
	}
	return 0, false
}

// Len returns the number of values in the set.
func (s *ProbingStringSet) Len() int {
	return s.count
}

// Capacity returns the size of the underlying slot array.
func (s *ProbingStringSet) Capacity() int {
	return len(s.slots)
}

// Empty returns true if the set holds no values.
func (s *ProbingStringSet) Empty() bool {
	return s.count == 0
}

// DebugString renders every slot in index order, comma separated: the stored
// value for an occupied slot, [TOMBSTONE] for a deleted one, nothing for an
// empty one. Diagnostic only; it exposes the table layout.
func (s *ProbingStringSet) DebugString() string {
	var b strings.Builder
	for i, sl := range s.slots {
		if i > 0 {
			b.WriteString(", ")
		}
		switch sl.state {
		case slotOccupied:
			b.WriteString(sl.value)
		case slotTombstone:
			b.WriteString(tombstoneMark)
		}
	}
	return b.String()
}
