package kv

import "fmt"

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// IClient is the generic interface for interacting with a Riak-compatible
// key–value store. All write operations return an error (nil on success),
// while read operations return the requested data along with an error.
//
// An absent key is never reported as an error: Fetch returns found=false
// and Delete succeeds whether or not the key existed.
type IClient interface {
	// Fetch retrieves the value stored under bucket/key. The boolean
	// return value indicates whether a value was found. If the store
	// reports divergent siblings, the conflict is resolved with the given
	// resolver and the resolved value is written back before returning.
	Fetch(bucket, key string, resolver IConflictResolver) (value *Value, found bool, err error)
	// Store writes a value under bucket/key without requesting the stored
	// representation back.
	Store(bucket, key string, value Value) error
	// StoreWithBody writes a value under bucket/key and requests the stored
	// representation back. The boolean return value indicates whether the
	// store returned a complete value. A sibling conflict raised by the
	// write is resolved with the given resolver.
	StoreWithBody(bucket, key string, value Value, resolver IConflictResolver) (stored *Value, found bool, err error)
	// Delete removes bucket/key. Deleting an absent key is a success so
	// that deletes stay idempotent under retry.
	Delete(bucket, key string) error
	// FetchByIndex looks up all keys matching the secondary-index query and
	// materializes their values with one fetch per key. Keys that vanish
	// between lookup and fetch are dropped. The order of the returned
	// values is unspecified.
	FetchByIndex(bucket string, query IndexQuery, resolver IConflictResolver) (values []Value, err error)
	// GetBucketProperties reads the configuration of a bucket.
	GetBucketProperties(bucket string) (props BucketProperties, err error)
	// SetBucketProperties updates the configuration of a bucket.
	SetBucketProperties(bucket string, props BucketProperties) error
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCInvalidParameters:
		errorCode = "InvalidParameters"
	case RetCOperationFailed:
		errorCode = "OperationFailed"
	case RetCConflictResolutionFailed:
		errorCode = "ConflictResolutionFailed"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("KVClientError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// NewErrorf creates a new Error with the given code and a formatted message.
func NewErrorf(code RetCode, format string, args ...interface{}) *Error {
	return NewError(code, fmt.Sprintf(format, args...))
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess                  RetCode = iota // 0: Operation executed successfully.
	RetCInvalidParameters                       // 1: The store rejected the request as malformed.
	RetCOperationFailed                         // 2: Unexpected status for the operation.
	RetCConflictResolutionFailed                // 3: A sibling conflict could not be resolved.
)
