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

func (c *riakClient) GetBucketProperties(bucket string) (kv.BucketProperties, error) {
	if err := checkName(opGetProps, "bucket", bucket); err != nil {
		return kv.BucketProperties{}, err
	}

	req := c.newRequest(http.MethodGet, propsPath(bucket), nil, nil)
	resp, err := c.execute(opGetProps, req)
	if err != nil {
		return kv.BucketProperties{}, err
	}

	if classify(opGetProps, resp.StatusCode) != outValue {
		return kv.BucketProperties{}, failf(opGetProps, bucket, "", resp.StatusCode)
	}

	props, err := codec.DecodeBucketProperties(resp.Body)
	if err != nil {
		return kv.BucketProperties{}, kv.NewErrorf(kv.RetCOperationFailed,
			"%s on bucket %q: %v", opGetProps, bucket, err)
	}
	return props, nil
}

func (c *riakClient) SetBucketProperties(bucket string, props kv.BucketProperties) error {
	if err := checkName(opSetProps, "bucket", bucket); err != nil {
		return err
	}

	body, err := codec.EncodeBucketProperties(props)
	if err != nil {
		return kv.NewErrorf(kv.RetCInvalidParameters,
			"%s on bucket %q: %v", opSetProps, bucket, err)
	}

	headers := http.Header{}
	headers.Set(common.HeaderContentType, common.MediaTypeJSON)

	req := c.newRequest(http.MethodPut, propsPath(bucket), headers, body)
	resp, err := c.execute(opSetProps, req)
	if err != nil {
		return err
	}

	switch classify(opSetProps, resp.StatusCode) {
	case outSuccess:
		return nil
	case outInvalidParams:
		return invalidf(opSetProps, bucket, "")
	case outUnsupportedMedia:
		return kv.NewErrorf(kv.RetCInvalidParameters,
			"%s on bucket %q: unsupported media type", opSetProps, bucket)
	default:
		return failf(opSetProps, bucket, "", resp.StatusCode)
	}
}
