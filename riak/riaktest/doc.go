// Package riaktest provides an in-memory, Riak-compatible HTTP server for
// testing rKV clients without a running store.
//
// The server implements the subset of the store's HTTP API the client
// speaks: key fetch/store/delete with vector-clock handling, sibling
// accumulation under allow_mult with multipart conflict responses,
// secondary-index match and range lookups, and bucket properties.
//
// Usage Example:
//
//	srv := httptest.NewServer(riaktest.NewServer())
//	defer srv.Close()
//
//	config := common.ClientConfig{Endpoints: []string{srv.URL}}
//	c, _ := client.NewClient(config, http.NewHTTPClientTransport())
//
// Siblings can also be injected directly with SeedSibling to set up
// conflict scenarios deterministically.
package riaktest
