package kv

import "fmt"

// --------------------------------------------------------------------------
// Index Entries
// --------------------------------------------------------------------------

// IndexKind defines the type of a secondary-index entry. Exactly two kinds
// exist: string ("bin") and integer ("int") indexes.
type IndexKind uint8

const (
	IndexBin IndexKind = iota // string-valued index
	IndexInt                  // integer-valued index
)

// String returns the wire suffix of an index kind.
func (k IndexKind) String() string {
	switch k {
	case IndexBin:
		return "bin"
	case IndexInt:
		return "int"
	default:
		return "unknown"
	}
}

// IndexEntry is a single secondary-index attachment of a value. Depending on
// Kind, either StrValue or IntValue carries the indexed value; the other
// field is zero. Entries are comparable and compare by (name, kind, value).
//
// Index names are lowercase on the wire; constructors do not rewrite the
// name, so callers should supply lowercase names if exact round-trips
// through the store matter.
type IndexEntry struct {
	Name     string
	Kind     IndexKind
	StrValue string
	IntValue int64
}

// NewBinIndex creates a string-valued index entry.
func NewBinIndex(name, value string) IndexEntry {
	return IndexEntry{Name: name, Kind: IndexBin, StrValue: value}
}

// NewIntIndex creates an integer-valued index entry.
func NewIntIndex(name string, value int64) IndexEntry {
	return IndexEntry{Name: name, Kind: IndexInt, IntValue: value}
}

// String returns a human-readable representation of the entry.
func (e IndexEntry) String() string {
	if e.Kind == IndexInt {
		return fmt.Sprintf("%s_int=%d", e.Name, e.IntValue)
	}
	return fmt.Sprintf("%s_bin=%s", e.Name, e.StrValue)
}

// --------------------------------------------------------------------------
// Index Queries
// --------------------------------------------------------------------------

// IndexQuery describes a secondary-index lookup: either an exact match on a
// bin or int index, or an inclusive range over an int index. Queries are
// built with the Match/Range constructors.
type IndexQuery struct {
	Name     string
	Kind     IndexKind
	StrValue string
	IntValue int64
	RangeMin int64
	RangeMax int64
	Ranged   bool
}

// MatchBin creates an exact-match query on a string index.
func MatchBin(name, value string) IndexQuery {
	return IndexQuery{Name: name, Kind: IndexBin, StrValue: value}
}

// MatchInt creates an exact-match query on an integer index.
func MatchInt(name string, value int64) IndexQuery {
	return IndexQuery{Name: name, Kind: IndexInt, IntValue: value}
}

// RangeInt creates an inclusive range query on an integer index.
func RangeInt(name string, min, max int64) IndexQuery {
	return IndexQuery{Name: name, Kind: IndexInt, RangeMin: min, RangeMax: max, Ranged: true}
}

// Validate checks the query client-side before a request is built. It
// returns a *Error with code RetCInvalidParameters for malformed queries.
func (q IndexQuery) Validate() error {
	if q.Name == "" {
		return NewError(RetCInvalidParameters, "index query: empty index name")
	}
	if q.Ranged {
		if q.Kind != IndexInt {
			return NewError(RetCInvalidParameters, "index query: range queries require an int index")
		}
		if q.RangeMin > q.RangeMax {
			return NewErrorf(RetCInvalidParameters, "index query: range min %d greater than max %d", q.RangeMin, q.RangeMax)
		}
		return nil
	}
	if q.Kind == IndexBin && q.StrValue == "" {
		return NewError(RetCInvalidParameters, "index query: empty match value")
	}
	return nil
}
