package codec

import (
	"encoding/json"
	"fmt"
)

// keyListBody is the JSON shape of an index-lookup response.
type keyListBody struct {
	Keys []string `json:"keys"`
}

// DecodeKeyList parses the body of an index-lookup response into the list
// of matching keys. An empty or absent key array decodes to an empty list.
func DecodeKeyList(body []byte) ([]string, error) {
	var parsed keyListBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing key list: %w", err)
	}
	return parsed.Keys, nil
}

// EncodeKeyList produces the JSON body of an index-lookup response. Used by
// the riaktest server.
func EncodeKeyList(keys []string) ([]byte, error) {
	if keys == nil {
		keys = []string{}
	}
	return json.Marshal(keyListBody{Keys: keys})
}
