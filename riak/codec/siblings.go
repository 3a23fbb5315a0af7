package codec

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/common"
)

// DecodeSiblings parses a multipart conflict body into the set of decodable
// sibling values. Each part is an independent body/header pair describing
// one sibling; the causality token sits once on the response envelope and is
// inherited by every part.
//
// A part with incomplete metadata is dropped rather than failing the whole
// decode; the number of dropped parts is returned alongside the set. Only a
// container that cannot be parsed at all is an error.
func DecodeSiblings(contentType string, body []byte, envelope http.Header) (kv.ConflictSet, int, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return kv.ConflictSet{}, 0, fmt.Errorf("parsing conflict content type %q: %w", contentType, err)
	}
	if !strings.EqualFold(mediaType, common.MediaTypeMultipartMixed) {
		return kv.ConflictSet{}, 0, fmt.Errorf("unexpected conflict media type %q", mediaType)
	}
	boundary := params["boundary"]
	if boundary == "" {
		return kv.ConflictSet{}, 0, fmt.Errorf("conflict content type %q carries no boundary", contentType)
	}

	vclock := envelope.Get(common.HeaderVClock)

	var siblings kv.ConflictSet
	dropped := 0

	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return kv.ConflictSet{}, 0, fmt.Errorf("reading conflict part: %w", err)
		}

		partBody, err := io.ReadAll(part)
		if err != nil {
			return kv.ConflictSet{}, 0, fmt.Errorf("reading conflict part body: %w", err)
		}

		// Part headers plus the inherited envelope causality token.
		headers := http.Header(part.Header)
		if headers.Get(common.HeaderVClock) == "" && vclock != "" {
			headers.Set(common.HeaderVClock, vclock)
		}

		value, ok := DecodeValue(headers, partBody)
		if !ok {
			dropped++
			continue
		}
		siblings.Add(value)
	}

	return siblings, dropped, nil
}
