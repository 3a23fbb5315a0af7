package kv

import (
	"bytes"
	"time"
)

// Value represents one version of a key as stored by the server.
//
// The metadata triple (VClock, ETag, LastModified) is always complete on a
// Value that was decoded from a store response; responses with partial
// metadata decode to no Value at all. VClock and ETag are opaque tokens
// minted by the store and must be passed back unmodified.
//
// Values are treated as immutable: every modifier returns a copy, and a
// changed value only becomes visible to other readers through a store
// operation.
type Value struct {
	Data         []byte
	ContentType  string
	VClock       string
	ETag         string
	LastModified time.Time
	Indexes      []IndexEntry
}

// NewValue creates a Value carrying payload data without store metadata.
// The metadata fields are filled in by the store once the value is written.
func NewValue(data []byte, contentType string) Value {
	return Value{
		Data:        data,
		ContentType: contentType,
	}
}

// WithIndex returns a copy of the value with the given index entry attached.
// Attaching an entry that is already present is a no-op (set semantics).
func (v Value) WithIndex(entry IndexEntry) Value {
	if v.HasIndex(entry) {
		return v
	}
	indexes := make([]IndexEntry, 0, len(v.Indexes)+1)
	indexes = append(indexes, v.Indexes...)
	indexes = append(indexes, entry)
	v.Indexes = indexes
	return v
}

// WithVClock returns a copy of the value carrying the given causality token.
func (v Value) WithVClock(vclock string) Value {
	v.VClock = vclock
	return v
}

// HasIndex reports whether the value carries the given index entry.
func (v Value) HasIndex(entry IndexEntry) bool {
	for _, e := range v.Indexes {
		if e == entry {
			return true
		}
	}
	return false
}

// Equal reports full structural equality of two values: payload, content
// type, metadata triple and index set. Index order is not significant.
func (v Value) Equal(o Value) bool {
	if v.ContentType != o.ContentType ||
		v.VClock != o.VClock ||
		v.ETag != o.ETag ||
		!v.LastModified.Equal(o.LastModified) {
		return false
	}
	if !bytes.Equal(v.Data, o.Data) {
		return false
	}
	if len(v.Indexes) != len(o.Indexes) {
		return false
	}
	for _, e := range v.Indexes {
		if !o.HasIndex(e) {
			return false
		}
	}
	return true
}
