package codec

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/common"
)

const (
	suffixBin = "_bin"
	suffixInt = "_int"
)

// EncodeIndexHeader encodes one index entry as a header name/value pair.
// The name is the index prefix plus the url-encoded index name and a
// "_bin" or "_int" suffix; the value is the url-encoded string value or the
// decimal integer value.
func EncodeIndexHeader(e kv.IndexEntry) (name, value string) {
	if e.Kind == kv.IndexInt {
		name = common.IndexHeaderPrefix + url.QueryEscape(e.Name) + suffixInt
		value = strconv.FormatInt(e.IntValue, 10)
		return name, value
	}
	name = common.IndexHeaderPrefix + url.QueryEscape(e.Name) + suffixBin
	value = url.QueryEscape(e.StrValue)
	return name, value
}

// DecodeIndexHeaders scans all headers carrying the index prefix and decodes
// them into index entries. A header may carry several comma-separated
// values. Malformed headers (bad suffix, bad escaping, non-numeric int
// values) contribute no entries and never fail the decode. Duplicate
// entries collapse.
//
// Header names reach us canonicalized, so index names are matched and
// returned in lowercase.
func DecodeIndexHeaders(headers http.Header) []kv.IndexEntry {
	var entries []kv.IndexEntry
	seen := make(map[kv.IndexEntry]struct{})

	add := func(e kv.IndexEntry) {
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		entries = append(entries, e)
	}

	for name, values := range headers {
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, strings.ToLower(common.IndexHeaderPrefix)) {
			continue
		}
		rest := lower[len(common.IndexHeaderPrefix):]

		var kind kv.IndexKind
		switch {
		case strings.HasSuffix(rest, suffixBin):
			kind = kv.IndexBin
			rest = strings.TrimSuffix(rest, suffixBin)
		case strings.HasSuffix(rest, suffixInt):
			kind = kv.IndexInt
			rest = strings.TrimSuffix(rest, suffixInt)
		default:
			// No recognizable kind suffix, skip the header.
			continue
		}

		indexName, err := url.QueryUnescape(rest)
		if err != nil || indexName == "" {
			continue
		}

		for _, headerValue := range values {
			for _, raw := range strings.Split(headerValue, ",") {
				raw = strings.TrimSpace(raw)
				if raw == "" {
					continue
				}
				if kind == kv.IndexInt {
					n, err := strconv.ParseInt(raw, 10, 64)
					if err != nil {
						continue
					}
					add(kv.NewIntIndex(indexName, n))
					continue
				}
				s, err := url.QueryUnescape(raw)
				if err != nil {
					continue
				}
				add(kv.NewBinIndex(indexName, s))
			}
		}
	}

	return entries
}
