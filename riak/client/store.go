package client

import (
	"net/http"

	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/codec"
	"github.com/rkvclient/rkv/riak/common"
)

// --------------------------------------------------------------------------
// Interface Methods (docu see kv/interface.go)
// --------------------------------------------------------------------------

func (c *riakClient) Store(bucket, key string, value kv.Value) error {
	_, _, err := c.storeInternal(bucket, key, value, false, nil, 0)
	return err
}

func (c *riakClient) StoreWithBody(bucket, key string, value kv.Value, resolver kv.IConflictResolver) (*kv.Value, bool, error) {
	return c.storeInternal(bucket, key, value, true, resolver, 0)
}

func (c *riakClient) Delete(bucket, key string) error {
	if err := checkName(opDelete, "bucket", bucket); err != nil {
		return err
	}
	if err := checkName(opDelete, "key", key); err != nil {
		return err
	}

	req := c.newRequest(http.MethodDelete, keyPath(bucket, key), nil, nil)
	resp, err := c.execute(opDelete, req)
	if err != nil {
		return err
	}

	switch classify(opDelete, resp.StatusCode) {
	case outSuccess:
		// 404 counts as success: the key is gone either way.
		return nil
	case outInvalidParams:
		return invalidf(opDelete, bucket, key)
	default:
		return failf(opDelete, bucket, key, resp.StatusCode)
	}
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// storeInternal writes a value and classifies the result. With returnBody
// the stored representation is requested back; without it a 204 is the
// expected answer. depth tracks conflict re-resolution rounds when the
// write itself reports siblings.
func (c *riakClient) storeInternal(
	bucket, key string,
	value kv.Value,
	returnBody bool,
	resolver kv.IConflictResolver,
	depth int,
) (*kv.Value, bool, error) {

	if err := checkName(opStore, "bucket", bucket); err != nil {
		return nil, false, err
	}
	if err := checkName(opStore, "key", key); err != nil {
		return nil, false, err
	}

	body, headers := codec.EncodeValue(value)
	headers.Set(common.HeaderAccept, common.AcceptedMediaTypes)

	path := keyPath(bucket, key)
	if returnBody {
		path += "?returnbody=true"
	}

	req := c.newRequest(http.MethodPut, path, headers, body)
	resp, err := c.execute(opStore, req)
	if err != nil {
		return nil, false, err
	}

	switch classify(opStore, resp.StatusCode) {
	case outValue:
		stored, ok := codec.DecodeValue(resp.Headers, resp.Body)
		if !ok {
			return nil, false, nil
		}
		return &stored, true, nil
	case outNoValue:
		return nil, false, nil
	case outConflict:
		return c.resolveConflict(bucket, key, resp, resolver, depth)
	case outInvalidParams:
		return nil, false, invalidf(opStore, bucket, key)
	default:
		return nil, false, failf(opStore, bucket, key, resp.StatusCode)
	}
}
