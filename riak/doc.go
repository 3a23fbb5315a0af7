// Package riak contains the wire-facing layers of rKV: shared configuration
// and constants (common), header/body codecs (codec), the request-execution
// boundary and its HTTP implementation (transport), the kv.IClient
// implementation (client) and an in-memory test server (riaktest).
//
// The layering mirrors how a request flows: client builds an
// endpoint-relative request and hands it to a transport; the raw response is
// classified per operation and decoded by codec into the typed model of
// lib/kv, including multipart sibling-conflict responses.
package riak
