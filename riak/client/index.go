package client

import (
	"net/http"

	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/codec"
)

// --------------------------------------------------------------------------
// Interface Methods (docu see kv/interface.go)
// --------------------------------------------------------------------------

func (c *riakClient) FetchByIndex(bucket string, query kv.IndexQuery, resolver kv.IConflictResolver) ([]kv.Value, error) {
	if err := checkName(opIndexFetch, "bucket", bucket); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	req := c.newRequest(http.MethodGet, indexPath(bucket, query), nil, nil)
	resp, err := c.execute(opIndexFetch, req)
	if err != nil {
		return nil, err
	}

	switch classify(opIndexFetch, resp.StatusCode) {
	case outValue:
		// continue below
	case outInvalidParams:
		return nil, kv.NewErrorf(kv.RetCInvalidParameters,
			"%s on bucket %q: store rejected index %q", opIndexFetch, bucket, query.Name)
	default:
		return nil, failf(opIndexFetch, bucket, "", resp.StatusCode)
	}

	keys, err := codec.DecodeKeyList(resp.Body)
	if err != nil {
		return nil, kv.NewErrorf(kv.RetCOperationFailed,
			"%s on bucket %q: %v", opIndexFetch, bucket, err)
	}
	if len(keys) == 0 {
		return []kv.Value{}, nil
	}

	return c.fetchAll(bucket, keys, resolver)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// fetchResult carries the outcome of one per-key fetch of the fan-out.
type fetchResult struct {
	value *kv.Value
	found bool
	err   error
}

// fetchAll materializes the values behind a key list with one concurrent
// fetch per key. Keys that have disappeared since the index lookup are
// dropped; any real fetch failure fails the whole operation. The order of
// the returned values is unspecified.
func (c *riakClient) fetchAll(bucket string, keys []string, resolver kv.IConflictResolver) ([]kv.Value, error) {
	results := make(chan fetchResult, len(keys))

	for _, key := range keys {
		go func(key string) {
			value, found, err := c.Fetch(bucket, key, resolver)
			results <- fetchResult{value: value, found: found, err: err}
		}(key)
	}

	values := make([]kv.Value, 0, len(keys))
	var firstErr error
	for range keys {
		result := <-results
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		if result.found {
			values = append(values, *result.value)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return values, nil
}
