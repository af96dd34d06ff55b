package hashset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndSearch(t *testing.T) {
	s := New()

	values := []string{"alice", "bob", "carol"}
	for _, v := range values {
		assert.Equal(t, Inserted, s.Add(v), "value %q should insert", v)
	}

	for _, v := range values {
		assert.True(t, s.Search(v), "value %q should be found", v)
	}
	assert.False(t, s.Search("dave"), "value 'dave' was never added")
	assert.Equal(t, 3, s.Len(), "three distinct values were added")
}

func TestFirstAddInitializesTable(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Capacity(), "a new table is uninitialized")

	s.Add("alice")
	assert.Equal(t, defaultCapacity, s.Capacity(), "first Add sizes the table")
	assert.Equal(t, 1, s.Len())
}

func TestAddDuplicate(t *testing.T) {
	s := New()

	assert.Equal(t, Inserted, s.Add("alice"))
	assert.Equal(t, AlreadyPresent, s.Add("alice"), "second add of the same value is rejected")
	assert.Equal(t, 1, s.Len(), "duplicate add must not grow the count")
	assert.True(t, s.Search("alice"))
}

func TestRemove(t *testing.T) {
	s := New()
	s.Add("alice")
	s.Add("bob")

	assert.Equal(t, Removed, s.Remove("alice"))
	assert.False(t, s.Search("alice"), "removed value should not be found")
	assert.True(t, s.Search("bob"), "untouched value stays")
	assert.Equal(t, 1, s.Len())

	assert.Equal(t, NotFound, s.Remove("alice"), "removing twice reports not-found")
	assert.Equal(t, NotFound, s.Remove("never-added"))
	assert.Equal(t, 1, s.Len(), "a failed remove must not mutate the count")
}

func TestRemoveThenReAddReusesTombstone(t *testing.T) {
	s := New()

	// "ab" and "ba" share home index 5 in a 10-slot table (195 % 10), so
	// "ba" probes on to slot 6.
	s.Add("ab")
	s.Add("ba")

	home, err := s.Hash("ab")
	require.NoError(t, err)
	assert.Equal(t, 5, home)

	assert.Equal(t, Removed, s.Remove("ab"))
	assert.Equal(t, ", , , , , [TOMBSTONE], ba, , , ", s.DebugString())

	// Re-adding probes past the tombstone to rule out a duplicate, then
	// comes back and reuses it.
	assert.Equal(t, Inserted, s.Add("ab"))
	assert.Equal(t, ", , , , , ab, ba, , , ", s.DebugString())
	assert.True(t, s.Search("ab"))
	assert.Equal(t, 2, s.Len())
}

func TestCollisionsResolveByProbing(t *testing.T) {
	s := New()

	hab, err := s.Hash("ab")
	// Hash requires an initialized table.
	require.ErrorIs(t, err, ErrUninitialized)

	assert.Equal(t, Inserted, s.Add("ab"))
	assert.Equal(t, Inserted, s.Add("ba"))

	hab, err = s.Hash("ab")
	require.NoError(t, err)
	hba, err := s.Hash("ba")
	require.NoError(t, err)
	assert.Equal(t, hab, hba, "summed-byte hashing collides for anagrams")

	assert.True(t, s.Search("ab"))
	assert.True(t, s.Search("ba"))
	assert.Equal(t, 2, s.Len(), "a collision must not lose data")
}

func TestSeventhInsertDoublesCapacity(t *testing.T) {
	s := New()

	for i := 0; i < 6; i++ {
		s.Add(fmt.Sprintf("key%d", i))
		assert.Equal(t, 10, s.Capacity(), "no resize for the first 6 inserts")
	}

	s.Add("key6")
	assert.Equal(t, 20, s.Capacity(), "7th insert reaches the load factor and doubles")
	assert.Equal(t, 7, s.Len())

	for i := 0; i < 7; i++ {
		assert.True(t, s.Search(fmt.Sprintf("key%d", i)), "key%d should survive the resize", i)
	}
}

func TestResizePreservesMembership(t *testing.T) {
	s := New()
	values := []string{"one", "two", "three", "four", "five"}
	for _, v := range values {
		s.Add(v)
	}

	assert.Equal(t, Resized, s.Resize(64))
	assert.Equal(t, 64, s.Capacity())
	assert.Equal(t, len(values), s.Len())
	for _, v := range values {
		assert.True(t, s.Search(v), "value %q should survive the resize", v)
	}
}

func TestResizeDropsTombstones(t *testing.T) {
	s := New()
	s.Add("ab")
	s.Add("ba")
	s.Remove("ab")

	assert.Equal(t, Resized, s.Resize(5))
	assert.NotContains(t, s.DebugString(), tombstoneMark, "tombstones do not carry over")
	assert.True(t, s.Search("ba"))
	assert.Equal(t, 1, s.Len())
}

func TestResizeRejected(t *testing.T) {
	s := New()
	s.Add("alice")
	s.Add("bob")
	before := s.DebugString()

	assert.Equal(t, RejectedResize, s.Resize(0), "capacity 0 is rejected")
	assert.Equal(t, RejectedResize, s.Resize(-5), "negative capacity is rejected")
	// 2 values into 2 slots would be a 1.0 load factor.
	assert.Equal(t, RejectedResize, s.Resize(2), "over-threshold target is rejected")

	assert.Equal(t, 10, s.Capacity(), "a rejected resize leaves the table unchanged")
	assert.Equal(t, before, s.DebugString())
	assert.True(t, s.Search("alice"))
	assert.True(t, s.Search("bob"))
}

func TestDuplicateRejectionSurvivesExplicitResize(t *testing.T) {
	s := New()
	assert.Equal(t, Resized, s.Resize(6))

	inserted := 0
	for _, v := range []string{"a", "b", "c", "d", "e", "a"} {
		if s.Add(v) == Inserted {
			inserted++
		}
	}

	assert.Equal(t, 5, inserted, "the repeated value must be rejected")
	assert.Equal(t, 5, s.Len(), "count reflects distinct values only")
}

func TestLoadFactorInvariant(t *testing.T) {
	s := New()

	check := func(op string) {
		if s.Capacity() == 0 {
			return
		}
		lf := float64(s.Len()) / float64(s.Capacity())
		assert.LessOrEqualf(t, lf, maxLoadFactor, "load factor after %s", op)
	}

	for i := 0; i < 100; i++ {
		s.Add(fmt.Sprintf("key%d", i))
		check(fmt.Sprintf("add key%d", i))
		if i%3 == 0 {
			s.Remove(fmt.Sprintf("key%d", i/2))
			check(fmt.Sprintf("remove key%d", i/2))
		}
	}

	s.Resize(512)
	check("resize 512")
}

func TestHashUninitialized(t *testing.T) {
	s := New()
	_, err := s.Hash("anything")
	assert.ErrorIs(t, err, ErrUninitialized)
}

func TestDebugString(t *testing.T) {
	s := New()
	assert.Equal(t, "", s.DebugString(), "an uninitialized table renders as nothing")

	s.Resize(5)
	s.Add("ab") // 195 % 5 == 0
	s.Add("ba") // collides, probes to slot 1
	s.Remove("ab")

	assert.Equal(t, "[TOMBSTONE], ba, , , ", s.DebugString())
}

func TestEmpty(t *testing.T) {
	s := New()
	assert.True(t, s.Empty())

	s.Add("alice")
	assert.False(t, s.Empty())

	s.Remove("alice")
	assert.True(t, s.Empty(), "a table of tombstones holds no values")
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "inserted", Inserted.String())
	assert.Equal(t, "already-present", AlreadyPresent.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "not-found", NotFound.String())
	assert.Equal(t, "resized", Resized.String())
	assert.Equal(t, "rejected", RejectedResize.String())
}
