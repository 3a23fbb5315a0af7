package kv

// BucketProperties holds the subset of bucket configuration the client reads
// and writes. Pointer fields distinguish "not set" from a zero value so that
// partial updates only touch the properties the caller supplied. Unknown
// properties are not validated client-side; the store rejects bad payloads.
type BucketProperties struct {
	NVal          *int   `json:"n_val,omitempty"`
	AllowMult     *bool  `json:"allow_mult,omitempty"`
	LastWriteWins *bool  `json:"last_write_wins,omitempty"`
	Backend       string `json:"backend,omitempty"`
}

// Bool returns a pointer to the given bool, for building BucketProperties
// literals.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to the given int, for building BucketProperties
// literals.
func Int(i int) *int {
	return &i
}
