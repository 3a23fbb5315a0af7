package kv

import "testing"

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"InvalidParameters", NewError(RetCInvalidParameters, "empty key"), "KVClientError (code InvalidParameters): empty key"},
		{"OperationFailed", NewErrorf(RetCOperationFailed, "status %d", 500), "KVClientError (code OperationFailed): status 500"},
		{"ConflictResolutionFailed", NewError(RetCConflictResolutionFailed, "no resolver"), "KVClientError (code ConflictResolutionFailed): no resolver"},
		{"UnknownCode", NewError(RetCode(99), "odd"), "KVClientError (code Unknown): odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
