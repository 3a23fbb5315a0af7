package codec

import (
	"mime"
	"net/http"
	"strings"

	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/common"
	"golang.org/x/text/encoding/htmlindex"
)

// DecodeValue builds a Value from a response body and headers. The boolean
// return value indicates whether the response carried a complete metadata
// triple (vector clock, entity tag, last-modified); if any of the three is
// missing or unparsable, no Value is returned. A partially populated Value
// is never produced since it could not safely participate in causality
// comparison.
func DecodeValue(headers http.Header, body []byte) (kv.Value, bool) {
	vclock := headers.Get(common.HeaderVClock)
	etag := headers.Get(common.HeaderETag)
	lastModifiedRaw := headers.Get(common.HeaderLastModified)

	if vclock == "" || etag == "" || lastModifiedRaw == "" {
		return kv.Value{}, false
	}

	lastModified, err := http.ParseTime(lastModifiedRaw)
	if err != nil {
		return kv.Value{}, false
	}

	data := make([]byte, len(body))
	copy(data, body)

	return kv.Value{
		Data:         data,
		ContentType:  headers.Get(common.HeaderContentType),
		VClock:       vclock,
		ETag:         etag,
		LastModified: lastModified,
		Indexes:      DecodeIndexHeaders(headers),
	}, true
}

// EncodeValue produces the request body and headers for storing a value.
// The vector clock is emitted only when non-empty (a first write has none);
// the entity tag and timestamp are never sent since the store mints them.
// One header per index entry is added.
func EncodeValue(v kv.Value) (body []byte, headers http.Header) {
	headers = http.Header{}

	if v.ContentType != "" {
		headers.Set(common.HeaderContentType, v.ContentType)
	}
	if v.VClock != "" {
		headers.Set(common.HeaderVClock, v.VClock)
	}
	for _, entry := range v.Indexes {
		name, value := EncodeIndexHeader(entry)
		headers.Add(name, value)
	}

	return v.Data, headers
}

// BodyString decodes the payload of a value to a string, honoring the
// charset parameter embedded in its content type. Payloads without a
// charset, or with a UTF-8 charset, are returned as-is.
func BodyString(v kv.Value) (string, error) {
	if v.ContentType == "" {
		return string(v.Data), nil
	}

	_, params, err := mime.ParseMediaType(v.ContentType)
	if err != nil {
		// Content type is pass-through, not validated; fall back to raw.
		return string(v.Data), nil
	}

	charset := strings.ToLower(params["charset"])
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return string(v.Data), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", kv.NewErrorf(kv.RetCOperationFailed, "unknown charset %q in content type %q", charset, v.ContentType)
	}
	decoded, err := enc.NewDecoder().Bytes(v.Data)
	if err != nil {
		return "", kv.NewErrorf(kv.RetCOperationFailed, "decoding body as %s: %v", charset, err)
	}
	return string(decoded), nil
}
