package kv

import (
	"errors"
	"testing"
)

func TestIndexQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   IndexQuery
		wantErr bool
	}{
		{"ValidBinMatch", MatchBin("email", "a@example.com"), false},
		{"ValidIntMatch", MatchInt("age", 42), false},
		{"ValidRange", RangeInt("age", 18, 65), false},
		{"ValidRangeSingleValue", RangeInt("age", 42, 42), false},
		{"EmptyName", MatchBin("", "x"), true},
		{"EmptyBinValue", MatchBin("email", ""), true},
		{"RangeMinAboveMax", RangeInt("age", 65, 18), true},
		{"RangeOnBinIndex", IndexQuery{Name: "email", Kind: IndexBin, Ranged: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected validation to fail")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
			if err != nil {
				var kvErr *Error
				if !errors.As(err, &kvErr) || kvErr.Code != RetCInvalidParameters {
					t.Errorf("expected RetCInvalidParameters, got %v", err)
				}
			}
		})
	}
}

func TestIndexEntryString(t *testing.T) {
	if got := NewBinIndex("email", "a@example.com").String(); got != "email_bin=a@example.com" {
		t.Errorf("unexpected bin entry string: %q", got)
	}
	if got := NewIntIndex("age", 42).String(); got != "age_int=42" {
		t.Errorf("unexpected int entry string: %q", got)
	}
}
