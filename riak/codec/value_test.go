package codec

import (
	"net/http"
	"testing"
	"time"

	"github.com/rkvclient/rkv/lib/kv"
)

// completeHeaders builds a header set carrying a full metadata triple
func completeHeaders() http.Header {
	h := http.Header{}
	h.Set("X-Riak-Vclock", "vc1")
	h.Set("Etag", "etag1")
	h.Set("Last-Modified", "Sat, 01 Jun 2024 12:00:00 GMT")
	h.Set("Content-Type", "text/plain")
	return h
}

func TestDecodeValue(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		headers := completeHeaders()
		headers.Set("X-Riak-Index-age_int", "42")

		value, ok := DecodeValue(headers, []byte("hello"))
		if !ok {
			t.Fatalf("expected a complete response to decode")
		}
		if string(value.Data) != "hello" {
			t.Errorf("unexpected data %q", value.Data)
		}
		if value.VClock != "vc1" || value.ETag != "etag1" {
			t.Errorf("unexpected metadata: vclock=%q etag=%q", value.VClock, value.ETag)
		}
		want := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		if !value.LastModified.Equal(want) {
			t.Errorf("unexpected last-modified %v", value.LastModified)
		}
		if !value.HasIndex(kv.NewIntIndex("age", 42)) {
			t.Errorf("expected index entry to be decoded")
		}
	})

	t.Run("MissingMetadata", func(t *testing.T) {
		for _, missing := range []string{"X-Riak-Vclock", "Etag", "Last-Modified"} {
			headers := completeHeaders()
			headers.Del(missing)
			if _, ok := DecodeValue(headers, []byte("hello")); ok {
				t.Errorf("expected decode to fail without %s", missing)
			}
		}
	})

	t.Run("UnparsableTimestamp", func(t *testing.T) {
		headers := completeHeaders()
		headers.Set("Last-Modified", "yesterday")
		if _, ok := DecodeValue(headers, nil); ok {
			t.Errorf("expected decode to fail on a bad timestamp")
		}
	})

	t.Run("BodyCopied", func(t *testing.T) {
		body := []byte("hello")
		value, ok := DecodeValue(completeHeaders(), body)
		if !ok {
			t.Fatalf("expected decode to succeed")
		}
		body[0] = 'X'
		if string(value.Data) != "hello" {
			t.Errorf("decoded value aliases the response body")
		}
	})
}

func TestEncodeValue(t *testing.T) {
	v := kv.NewValue([]byte("hello"), "text/plain")
	v = v.WithIndex(kv.NewBinIndex("email", "a@example.com"))

	t.Run("FirstWrite", func(t *testing.T) {
		body, headers := EncodeValue(v)
		if string(body) != "hello" {
			t.Errorf("unexpected body %q", body)
		}
		if headers.Get("Content-Type") != "text/plain" {
			t.Errorf("unexpected content type %q", headers.Get("Content-Type"))
		}
		if headers.Get("X-Riak-Vclock") != "" {
			t.Errorf("a first write must not carry a vector clock")
		}
		if headers.Get("X-Riak-Index-email_bin") == "" {
			t.Errorf("expected an index header")
		}
	})

	t.Run("Rewrite", func(t *testing.T) {
		_, headers := EncodeValue(v.WithVClock("vc1"))
		if headers.Get("X-Riak-Vclock") != "vc1" {
			t.Errorf("expected the vector clock header to be sent")
		}
	})
}

func TestBodyString(t *testing.T) {
	t.Run("PlainUTF8", func(t *testing.T) {
		v := kv.NewValue([]byte("hello"), "text/plain; charset=utf-8")
		s, err := BodyString(v)
		if err != nil || s != "hello" {
			t.Errorf("got %q, %v", s, err)
		}
	})

	t.Run("Latin1", func(t *testing.T) {
		v := kv.NewValue([]byte{'h', 0xE9}, "text/plain; charset=iso-8859-1")
		s, err := BodyString(v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != "hé" {
			t.Errorf("expected latin-1 to decode, got %q", s)
		}
	})

	t.Run("UnknownCharset", func(t *testing.T) {
		v := kv.NewValue([]byte("hello"), "text/plain; charset=no-such-charset")
		if _, err := BodyString(v); err == nil {
			t.Errorf("expected an error for an unknown charset")
		}
	})

	t.Run("NoContentType", func(t *testing.T) {
		s, err := BodyString(kv.NewValue([]byte("hello"), ""))
		if err != nil || s != "hello" {
			t.Errorf("got %q, %v", s, err)
		}
	})
}
