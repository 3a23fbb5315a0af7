package kv

import (
	"errors"
	"testing"
	"time"
)

// testValue creates a fully populated value for the tests
func testValue() Value {
	v := NewValue([]byte("hello"), "text/plain")
	v.VClock = "vc1"
	v.ETag = "etag1"
	v.LastModified = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	v = v.WithIndex(NewBinIndex("email", "a@example.com"))
	v = v.WithIndex(NewIntIndex("age", 42))
	return v
}

func TestValueEqual(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		a, b := testValue(), testValue()
		if !a.Equal(b) {
			t.Errorf("expected values to be equal")
		}
	})

	t.Run("IndexOrderInsensitive", func(t *testing.T) {
		a := testValue()
		b := NewValue([]byte("hello"), "text/plain")
		b.VClock, b.ETag, b.LastModified = a.VClock, a.ETag, a.LastModified
		b = b.WithIndex(NewIntIndex("age", 42))
		b = b.WithIndex(NewBinIndex("email", "a@example.com"))
		if !a.Equal(b) {
			t.Errorf("expected index order to be insignificant")
		}
	})

	t.Run("DifferentData", func(t *testing.T) {
		a, b := testValue(), testValue()
		b.Data = []byte("bye")
		if a.Equal(b) {
			t.Errorf("expected values with different data to differ")
		}
	})

	t.Run("DifferentVClock", func(t *testing.T) {
		a, b := testValue(), testValue()
		b.VClock = "vc2"
		if a.Equal(b) {
			t.Errorf("expected values with different vclocks to differ")
		}
	})

	t.Run("DifferentIndexes", func(t *testing.T) {
		a, b := testValue(), testValue()
		b.Indexes = []IndexEntry{NewIntIndex("age", 42), NewIntIndex("age", 43)}
		if a.Equal(b) {
			t.Errorf("expected values with different indexes to differ")
		}
	})

	t.Run("EquivalentTimezones", func(t *testing.T) {
		a, b := testValue(), testValue()
		b.LastModified = a.LastModified.In(time.FixedZone("CET", 3600))
		if !a.Equal(b) {
			t.Errorf("expected the same instant in different zones to be equal")
		}
	})
}

func TestValueWithIndex(t *testing.T) {
	v := NewValue(nil, "")
	entry := NewBinIndex("email", "a@example.com")

	v = v.WithIndex(entry)
	v = v.WithIndex(entry) // duplicate, must not grow the set

	if len(v.Indexes) != 1 {
		t.Errorf("expected 1 index entry, got %d", len(v.Indexes))
	}
	if !v.HasIndex(entry) {
		t.Errorf("expected index entry to be present")
	}

	// The original value must stay untouched
	base := NewValue(nil, "")
	_ = base.WithIndex(entry)
	if len(base.Indexes) != 0 {
		t.Errorf("WithIndex modified the receiver")
	}
}

func TestConflictSetCollapse(t *testing.T) {
	a := testValue()
	b := testValue()
	c := testValue()
	c.Data = []byte("different")

	set := NewConflictSet(a, b, c)

	if set.Len() != 2 {
		t.Errorf("expected 2 distinct siblings, got %d", set.Len())
	}
}

func TestLastWriteWinsResolver(t *testing.T) {
	resolver := NewLastWriteWinsResolver()

	t.Run("PicksLatest", func(t *testing.T) {
		older := testValue()
		newer := testValue()
		newer.Data = []byte("newer")
		newer.ETag = "etag2"
		newer.LastModified = older.LastModified.Add(time.Minute)

		winner, err := resolver.Resolve(NewConflictSet(older, newer))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(winner.Data) != "newer" {
			t.Errorf("expected the newer sibling to win, got %q", winner.Data)
		}
	})

	t.Run("ETagTiebreak", func(t *testing.T) {
		a := testValue()
		b := testValue()
		b.Data = []byte("b")
		b.ETag = "etag2" // sorts after etag1

		winner, err := resolver.Resolve(NewConflictSet(a, b))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if winner.ETag != "etag2" {
			t.Errorf("expected the higher etag to break the tie, got %q", winner.ETag)
		}
	})

	t.Run("EmptySet", func(t *testing.T) {
		_, err := resolver.Resolve(ConflictSet{})
		if err == nil {
			t.Fatalf("expected an error for an empty conflict set")
		}
		var kvErr *Error
		if !errors.As(err, &kvErr) || kvErr.Code != RetCConflictResolutionFailed {
			t.Errorf("expected RetCConflictResolutionFailed, got %v", err)
		}
	})
}
