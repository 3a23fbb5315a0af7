package transport

import (
	"net/http"

	"github.com/rkvclient/rkv/riak/common"
)

// Request is one HTTP request as the client layer describes it: the path is
// relative to a store endpoint and already escaped, the transport picks the
// endpoint.
type Request struct {
	// Method is the HTTP method.
	Method string
	// Path is the endpoint-relative request path including any query
	// string, e.g. "/buckets/b/keys/k?returnbody=true".
	Path string
	// Headers are the request headers. May be nil.
	Headers http.Header
	// Body is the optional request body. Nil means no body.
	Body []byte
}

// Response is the raw result of executing a Request. The transport never
// interprets status codes; classification is the caller's job.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IClientTransport is the interface of the request-execution primitive the
// client layer builds on. Implementations own connection management,
// endpoint selection, timeouts and send retries.
type IClientTransport interface {
	// Connect initializes the transport with the given configuration
	Connect(config common.ClientConfig) error
	// Execute sends a request to the store and returns the raw response
	Execute(req *Request) (resp *Response, err error)
	// Close closes the transport connection
	Close() error
}
