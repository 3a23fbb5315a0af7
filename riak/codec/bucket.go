package codec

import (
	"encoding/json"
	"fmt"

	"github.com/rkvclient/rkv/lib/kv"
)

// propsEnvelope is the JSON wrapper the store puts around bucket properties.
type propsEnvelope struct {
	Props kv.BucketProperties `json:"props"`
}

// DecodeBucketProperties parses a bucket-properties response body.
func DecodeBucketProperties(body []byte) (kv.BucketProperties, error) {
	var envelope propsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return kv.BucketProperties{}, fmt.Errorf("parsing bucket properties: %w", err)
	}
	return envelope.Props, nil
}

// EncodeBucketProperties produces the request body for a bucket-properties
// update. Property values are passed through without schema validation; the
// store is the authority on what is acceptable.
func EncodeBucketProperties(props kv.BucketProperties) ([]byte, error) {
	return json.Marshal(propsEnvelope{Props: props})
}
