// Package codec converts between the store's wire representation (HTTP
// headers and bodies) and the typed value model of the kv package.
//
// The package focuses on:
//   - Value decoding/encoding (metadata headers plus opaque body)
//   - Secondary-index header encoding/decoding
//   - Sibling conflict bodies (multipart/mixed containers)
//   - Key-list and bucket-properties JSON bodies
//
// Decoding is strict about causality metadata and lenient about everything
// else: a response missing any of the vector clock, entity tag or
// last-modified headers decodes to no value at all, while malformed index
// headers are silently skipped. Encode/decode of a single index entry is an
// exact round-trip for lowercase index names.
package codec
