// Package transport defines the request-execution boundary between the rKV
// client and the network. The client layer describes requests as
// endpoint-relative method/path/header/body tuples; a transport
// implementation turns them into wire traffic and hands back the raw status
// code, headers and body without interpreting them.
//
// The http subpackage provides the standard implementation with connection
// pooling, round-robin endpoint selection and send retries. Alternative
// implementations (test doubles, recording proxies) only need to satisfy
// IClientTransport.
package transport
