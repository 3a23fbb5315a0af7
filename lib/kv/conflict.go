package kv

// ConflictSet holds the divergent sibling values the store returned for a
// single key. It has set semantics: structurally equal values collapse into
// one element. Order of the elements is not significant.
type ConflictSet struct {
	values []Value
}

// NewConflictSet creates a ConflictSet from the given values, collapsing
// structural duplicates.
func NewConflictSet(values ...Value) ConflictSet {
	var s ConflictSet
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value into the set unless a structurally equal value is
// already present.
func (s *ConflictSet) Add(v Value) {
	for _, existing := range s.values {
		if existing.Equal(v) {
			return
		}
	}
	s.values = append(s.values, v)
}

// Len returns the number of distinct siblings in the set.
func (s ConflictSet) Len() int {
	return len(s.values)
}

// Values returns the siblings as a slice. The slice is shared with the set
// and must not be modified.
func (s ConflictSet) Values() []Value {
	return s.values
}
