package codec

import (
	"testing"

	"github.com/rkvclient/rkv/lib/kv"
)

func TestKeyList(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		body, err := EncodeKeyList([]string{"k1", "k2"})
		if err != nil {
			t.Fatalf("failed to encode: %v", err)
		}
		keys, err := DecodeKeyList(body)
		if err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if len(keys) != 2 || keys[0] != "k1" || keys[1] != "k2" {
			t.Errorf("unexpected keys %v", keys)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		body, err := EncodeKeyList(nil)
		if err != nil {
			t.Fatalf("failed to encode: %v", err)
		}
		if string(body) != `{"keys":[]}` {
			t.Errorf("expected an empty key array, got %s", body)
		}
		keys, err := DecodeKeyList(body)
		if err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if len(keys) != 0 {
			t.Errorf("unexpected keys %v", keys)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		if _, err := DecodeKeyList([]byte("not json")); err == nil {
			t.Errorf("expected an error for a malformed body")
		}
	})
}

func TestBucketProperties(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		props := kv.BucketProperties{
			NVal:      kv.Int(3),
			AllowMult: kv.Bool(true),
			Backend:   "bitcask",
		}
		body, err := EncodeBucketProperties(props)
		if err != nil {
			t.Fatalf("failed to encode: %v", err)
		}
		decoded, err := DecodeBucketProperties(body)
		if err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if decoded.NVal == nil || *decoded.NVal != 3 {
			t.Errorf("unexpected n_val %v", decoded.NVal)
		}
		if decoded.AllowMult == nil || !*decoded.AllowMult {
			t.Errorf("unexpected allow_mult %v", decoded.AllowMult)
		}
		if decoded.LastWriteWins != nil {
			t.Errorf("expected an unset property to stay nil")
		}
		if decoded.Backend != "bitcask" {
			t.Errorf("unexpected backend %q", decoded.Backend)
		}
	})

	t.Run("UnsetFieldsOmitted", func(t *testing.T) {
		body, err := EncodeBucketProperties(kv.BucketProperties{})
		if err != nil {
			t.Fatalf("failed to encode: %v", err)
		}
		if string(body) != `{"props":{}}` {
			t.Errorf("expected unset properties to be omitted, got %s", body)
		}
	})
}
