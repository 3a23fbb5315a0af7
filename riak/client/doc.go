// Package client implements the kv.IClient interface over the store's HTTP
// API. It translates key/value and secondary-index operations into requests
// against a transport.IClientTransport and classifies the raw responses
// back into the typed value model.
//
// The package focuses on:
//   - Per-operation response classification (status code -> domain outcome)
//   - The sibling-conflict pipeline: decode the multipart conflict body,
//     apply the caller-supplied resolution strategy, write the winner back
//   - Secondary-index fan-out: one concurrent fetch per matching key
//   - Operation metrics via the VictoriaMetrics metrics package
//
// Usage Example:
//
//	config := common.ClientConfig{
//	  Endpoints:     []string{"http://localhost:8098"},
//	  TimeoutSecond: 5,
//	  RetryCount:    3,
//	}
//
//	c, _ := client.NewClient(config, http.NewHTTPClientTransport())
//
//	v := kv.NewValue([]byte(`{"name":"ada"}`), "application/json").
//	  WithIndex(kv.NewBinIndex("team", "platform"))
//	_ = c.Store("users", "ada", v)
//
//	resolver := kv.NewLastWriteWinsResolver()
//	value, found, _ := c.Fetch("users", "ada", resolver)
//	values, _ := c.FetchByIndex("users", kv.MatchBin("team", "platform"), resolver)
//
// Thread Safety:
//
//	The client is safe for concurrent use from multiple goroutines. The
//	only process-wide mutable state is the client identity, which is
//	initialized once and read-only afterwards.
package client
