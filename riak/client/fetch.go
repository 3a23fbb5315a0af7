package client

import (
	"net/http"

	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/codec"
	"github.com/rkvclient/rkv/riak/common"
	"github.com/rkvclient/rkv/riak/transport"
)

// --------------------------------------------------------------------------
// Interface Methods (docu see kv/interface.go)
// --------------------------------------------------------------------------

func (c *riakClient) Fetch(bucket, key string, resolver kv.IConflictResolver) (*kv.Value, bool, error) {
	if err := checkName(opFetch, "bucket", bucket); err != nil {
		return nil, false, err
	}
	if err := checkName(opFetch, "key", key); err != nil {
		return nil, false, err
	}

	headers := http.Header{}
	headers.Set(common.HeaderAccept, common.AcceptedMediaTypes)

	req := c.newRequest(http.MethodGet, keyPath(bucket, key), headers, nil)
	resp, err := c.execute(opFetch, req)
	if err != nil {
		return nil, false, err
	}

	switch classify(opFetch, resp.StatusCode) {
	case outValue:
		value, ok := codec.DecodeValue(resp.Headers, resp.Body)
		if !ok {
			// Incomplete metadata triple, treated as absent.
			return nil, false, nil
		}
		return &value, true, nil
	case outNoValue:
		return nil, false, nil
	case outConflict:
		return c.resolveConflict(bucket, key, resp, resolver, 0)
	case outInvalidParams:
		return nil, false, invalidf(opFetch, bucket, key)
	default:
		return nil, false, failf(opFetch, bucket, key, resp.StatusCode)
	}
}

// --------------------------------------------------------------------------
// Conflict Pipeline
// --------------------------------------------------------------------------

// resolveConflict turns a sibling conflict response into a single resolved
// value: decode the multipart body into a conflict set, let the resolver
// pick, then store the winner back under the causality token of the
// conflict envelope and return the stored value.
//
// Siblings with incomplete metadata are dropped from the set rather than
// failing the resolution. The write-back may conflict again with a racing
// write; resolution then recurses up to the configured depth.
func (c *riakClient) resolveConflict(
	bucket, key string,
	resp *transport.Response,
	resolver kv.IConflictResolver,
	depth int,
) (*kv.Value, bool, error) {

	if resolver == nil {
		return nil, false, kv.NewErrorf(kv.RetCConflictResolutionFailed,
			"conflict on %q/%q but no resolver supplied", bucket, key)
	}
	if depth >= c.config.ResolveDepth() {
		return nil, false, kv.NewErrorf(kv.RetCConflictResolutionFailed,
			"conflict on %q/%q not settled after %d resolution rounds", bucket, key, depth)
	}

	siblings, dropped, err := codec.DecodeSiblings(
		resp.Headers.Get(common.HeaderContentType),
		resp.Body,
		resp.Headers,
	)
	if err != nil {
		return nil, false, kv.NewErrorf(kv.RetCConflictResolutionFailed,
			"conflict on %q/%q: %v", bucket, key, err)
	}
	if dropped > 0 {
		siblingsDropped.Add(dropped)
		Logger.Warningf("dropped %d sibling(s) with incomplete metadata on %q/%q", dropped, bucket, key)
	}
	if siblings.Len() == 0 {
		return nil, false, kv.NewErrorf(kv.RetCConflictResolutionFailed,
			"conflict on %q/%q: no decodable siblings", bucket, key)
	}

	resolved, err := resolver.Resolve(siblings)
	if err != nil {
		return nil, false, kv.NewErrorf(kv.RetCConflictResolutionFailed,
			"conflict on %q/%q: resolver: %v", bucket, key, err)
	}

	// The store determines the new causality token for the resolved value;
	// the write carries the envelope token so it supersedes every sibling.
	resolved = resolved.WithVClock(resp.Headers.Get(common.HeaderVClock))

	Logger.Debugf("resolved %d sibling(s) on %q/%q", siblings.Len(), bucket, key)
	conflictsResolved.Inc()

	return c.storeInternal(bucket, key, resolved, true, resolver, depth+1)
}
