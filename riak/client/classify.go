package client

import "net/http"

// --------------------------------------------------------------------------
// Operations
// --------------------------------------------------------------------------

// operation identifies which status mapping applies to a response.
type operation uint8

const (
	opFetch operation = iota
	opIndexFetch
	opStore
	opDelete
	opGetProps
	opSetProps
)

// String returns the operation name used in errors and metric labels.
func (op operation) String() string {
	switch op {
	case opFetch:
		return "fetch"
	case opIndexFetch:
		return "index-fetch"
	case opStore:
		return "store"
	case opDelete:
		return "delete"
	case opGetProps:
		return "get-bucket-props"
	case opSetProps:
		return "set-bucket-props"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Outcomes
// --------------------------------------------------------------------------

// outcome is the domain result class of an (operation, status) pair.
type outcome uint8

const (
	outValue            outcome = iota // body decodes to the operation's payload
	outNoValue                         // valid absence (404 fetch, 204 store)
	outConflict                        // sibling conflict, body is multipart
	outSuccess                         // success without payload
	outInvalidParams                   // request rejected as malformed
	outUnsupportedMedia                // payload media type rejected
	outFailed                          // unexpected status for this operation
)

// classify maps an operation and transport status code to a domain outcome.
//
// Deletes treat 404 as success so they stay idempotent under retry, and a
// 300 always signals a sibling conflict: the store is configured to surface
// divergent writes rather than silently merge them.
func classify(op operation, status int) outcome {
	switch op {
	case opFetch:
		switch status {
		case http.StatusOK:
			return outValue
		case http.StatusNotFound:
			return outNoValue
		case http.StatusMultipleChoices:
			return outConflict
		case http.StatusBadRequest:
			return outInvalidParams
		}
	case opIndexFetch:
		switch status {
		case http.StatusOK:
			return outValue
		case http.StatusBadRequest:
			return outInvalidParams
		}
	case opStore:
		switch status {
		case http.StatusOK:
			return outValue
		case http.StatusNoContent:
			return outNoValue
		case http.StatusMultipleChoices:
			return outConflict
		case http.StatusBadRequest:
			return outInvalidParams
		}
	case opDelete:
		switch status {
		case http.StatusNoContent, http.StatusNotFound:
			return outSuccess
		case http.StatusBadRequest:
			return outInvalidParams
		}
	case opGetProps:
		if status == http.StatusOK {
			return outValue
		}
	case opSetProps:
		switch status {
		case http.StatusNoContent:
			return outSuccess
		case http.StatusBadRequest:
			return outInvalidParams
		case http.StatusUnsupportedMediaType:
			return outUnsupportedMedia
		}
	}
	return outFailed
}
