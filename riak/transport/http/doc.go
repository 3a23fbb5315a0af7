// Package http implements the transport interface over net/http with
// connection pooling, round-robin endpoint selection and simple send
// retries. Timeouts come from the client configuration; status codes are
// passed through uninterpreted.
package http
