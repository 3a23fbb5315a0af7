package kv

// IConflictResolver is the pluggable policy that selects one Value out of a
// set of divergent siblings. Implementations range from simple timestamp
// comparison to domain-specific merges that construct a combined value.
//
// Resolve is called with a non-empty set. The returned value becomes the new
// stored version of the key; the client attaches the causality token of the
// conflict response before writing it back.
type IConflictResolver interface {
	Resolve(siblings ConflictSet) (Value, error)
}

// --------------------------------------------------------------------------
// Func Adapter
// --------------------------------------------------------------------------

// ResolverFunc adapts a plain function to the IConflictResolver interface.
type ResolverFunc func(siblings ConflictSet) (Value, error)

func (f ResolverFunc) Resolve(siblings ConflictSet) (Value, error) {
	return f(siblings)
}

// --------------------------------------------------------------------------
// Last Write Wins
// --------------------------------------------------------------------------

// NewLastWriteWinsResolver creates a resolver that picks the sibling with
// the most recent last-modified timestamp. Ties are broken by entity tag to
// keep the choice deterministic across processes.
func NewLastWriteWinsResolver() IConflictResolver {
	return &lastWriteWinsResolver{}
}

type lastWriteWinsResolver struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see IConflictResolver)
// --------------------------------------------------------------------------

func (r *lastWriteWinsResolver) Resolve(siblings ConflictSet) (Value, error) {
	values := siblings.Values()
	if len(values) == 0 {
		return Value{}, NewError(RetCConflictResolutionFailed, "last-write-wins: empty conflict set")
	}

	winner := values[0]
	for _, v := range values[1:] {
		if v.LastModified.After(winner.LastModified) {
			winner = v
			continue
		}
		if v.LastModified.Equal(winner.LastModified) && v.ETag > winner.ETag {
			winner = v
		}
	}
	return winner, nil
}
