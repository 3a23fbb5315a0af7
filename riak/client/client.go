package client

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/common"
	"github.com/rkvclient/rkv/riak/transport"
)

var Logger = logger.GetLogger("client")

// NewClient creates a store client on top of the given transport.
// The function connects the transport and returns a kv.IClient.
func NewClient(
	config common.ClientConfig,
	clientTransport transport.IClientTransport,
) (kv.IClient, error) {

	// Connect the transport
	if err := clientTransport.Connect(config); err != nil {
		return nil, err
	}

	return &riakClient{
		config:    config,
		transport: clientTransport,
	}, nil
}

type riakClient struct {
	config    common.ClientConfig
	transport transport.IClientTransport
}

// --------------------------------------------------------------------------
// Request Plumbing
// --------------------------------------------------------------------------

// newRequest assembles a transport request with the common headers.
func (c *riakClient) newRequest(method, path string, headers http.Header, body []byte) *transport.Request {
	if headers == nil {
		headers = http.Header{}
	}
	if c.config.AddClientID {
		headers.Set(common.HeaderClientID, common.ClientID())
	}
	return &transport.Request{
		Method:  method,
		Path:    path,
		Headers: headers,
		Body:    body,
	}
}

// execute runs a request through the transport with metrics accounting.
// Transport-level failures surface as OperationFailed: callers of the client
// never see an untyped error.
func (c *riakClient) execute(op operation, req *transport.Request) (*transport.Response, error) {
	countRequest(op)
	start := time.Now()
	defer observeDuration(op, start)

	resp, err := c.transport.Execute(req)
	if err != nil {
		countError(op)
		return nil, kv.NewErrorf(kv.RetCOperationFailed, "%s: transport: %v", op, err)
	}
	return resp, nil
}

// failf builds the OperationFailed error for an unexpected status code.
func failf(op operation, bucket, key string, status int) *kv.Error {
	if key == "" {
		return kv.NewErrorf(kv.RetCOperationFailed, "%s on bucket %q: unexpected status %d", op, bucket, status)
	}
	return kv.NewErrorf(kv.RetCOperationFailed, "%s on %q/%q: unexpected status %d", op, bucket, key, status)
}

// invalidf builds the InvalidParameters error for a rejected request.
func invalidf(op operation, bucket, key string) *kv.Error {
	if key == "" {
		return kv.NewErrorf(kv.RetCInvalidParameters, "%s on bucket %q: request rejected as malformed", op, bucket)
	}
	return kv.NewErrorf(kv.RetCInvalidParameters, "%s on %q/%q: request rejected as malformed", op, bucket, key)
}

// checkName rejects empty bucket or key names before a request is built.
func checkName(op operation, what, name string) error {
	if name == "" {
		return kv.NewErrorf(kv.RetCInvalidParameters, "%s: empty %s", op, what)
	}
	return nil
}

// --------------------------------------------------------------------------
// URL Paths
// --------------------------------------------------------------------------

func keyPath(bucket, key string) string {
	return "/buckets/" + url.PathEscape(bucket) + "/keys/" + url.PathEscape(key)
}

func propsPath(bucket string) string {
	return "/buckets/" + url.PathEscape(bucket) + "/props"
}

func indexPath(bucket string, q kv.IndexQuery) string {
	base := "/buckets/" + url.PathEscape(bucket) + "/index/" +
		url.PathEscape(q.Name) + "_" + q.Kind.String()
	if q.Ranged {
		return base + "/" + strconv.FormatInt(q.RangeMin, 10) + "/" + strconv.FormatInt(q.RangeMax, 10)
	}
	if q.Kind == kv.IndexInt {
		return base + "/" + strconv.FormatInt(q.IntValue, 10)
	}
	return base + "/" + url.PathEscape(q.StrValue)
}
