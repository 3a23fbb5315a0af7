package codec

import (
	"net/http"
	"testing"

	"github.com/rkvclient/rkv/lib/kv"
)

func TestIndexHeaderRoundTrip(t *testing.T) {
	entries := []kv.IndexEntry{
		kv.NewBinIndex("email", "a@example.com"),
		kv.NewBinIndex("tag", "with space"),
		kv.NewIntIndex("age", 42),
		kv.NewIntIndex("age", -7),
	}

	headers := http.Header{}
	for _, e := range entries {
		name, value := EncodeIndexHeader(e)
		headers.Add(name, value)
	}

	decoded := DecodeIndexHeaders(headers)
	if len(decoded) != len(entries) {
		t.Fatalf("expected %d entries, got %d (%v)", len(entries), len(decoded), decoded)
	}
	for _, want := range entries {
		found := false
		for _, got := range decoded {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("entry %v missing after round trip", want)
		}
	}
}

func TestEncodeIndexHeader(t *testing.T) {
	t.Run("Bin", func(t *testing.T) {
		name, value := EncodeIndexHeader(kv.NewBinIndex("email", "a b@example.com"))
		if name != "X-Riak-Index-email_bin" {
			t.Errorf("unexpected header name %q", name)
		}
		if value != "a+b%40example.com" {
			t.Errorf("unexpected header value %q", value)
		}
	})

	t.Run("Int", func(t *testing.T) {
		name, value := EncodeIndexHeader(kv.NewIntIndex("age", 42))
		if name != "X-Riak-Index-age_int" {
			t.Errorf("unexpected header name %q", name)
		}
		if value != "42" {
			t.Errorf("unexpected header value %q", value)
		}
	})
}

func TestDecodeIndexHeaders(t *testing.T) {
	t.Run("CommaSeparatedValues", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("X-Riak-Index-age_int", "1, 2,3")

		decoded := DecodeIndexHeaders(headers)
		if len(decoded) != 3 {
			t.Fatalf("expected 3 entries, got %d (%v)", len(decoded), decoded)
		}
	})

	t.Run("MalformedValuesSkipped", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("X-Riak-Index-age_int", "42, not-a-number")
		headers.Set("X-Riak-Index-nosuffix", "x")
		headers.Set("X-Riak-Meta-other", "y")

		decoded := DecodeIndexHeaders(headers)
		if len(decoded) != 1 {
			t.Fatalf("expected 1 entry, got %d (%v)", len(decoded), decoded)
		}
		if decoded[0] != kv.NewIntIndex("age", 42) {
			t.Errorf("unexpected entry %v", decoded[0])
		}
	})

	t.Run("DuplicatesCollapse", func(t *testing.T) {
		headers := http.Header{}
		headers.Add("X-Riak-Index-age_int", "42")
		headers.Add("X-Riak-Index-age_int", "42")

		decoded := DecodeIndexHeaders(headers)
		if len(decoded) != 1 {
			t.Fatalf("expected duplicates to collapse, got %d entries", len(decoded))
		}
	})

	t.Run("NamesLowercased", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("X-Riak-Index-Email_bin", "a%40example.com")

		decoded := DecodeIndexHeaders(headers)
		if len(decoded) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(decoded))
		}
		if decoded[0] != kv.NewBinIndex("email", "a@example.com") {
			t.Errorf("unexpected entry %v", decoded[0])
		}
	})
}
