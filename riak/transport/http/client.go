package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/rkvclient/rkv/riak/common"
	"github.com/rkvclient/rkv/riak/transport"
)

var Logger = logger.GetLogger("transport")

// NewHTTPClientTransport creates the standard HTTP transport. Connect must
// be called before the first Execute.
func NewHTTPClientTransport() transport.IClientTransport {
	return &httpClientTransport{}
}

type httpClientTransport struct {
	serverURLs []*url.URL
	client     *http.Client
	counter    uint32
	retryCount int
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IClientTransport)
// --------------------------------------------------------------------------

func (t *httpClientTransport) Connect(config common.ClientConfig) error {
	if len(config.Endpoints) == 0 {
		return fmt.Errorf("no endpoints provided")
	}

	// Parse each server URL
	parsedURLs := make([]*url.URL, len(config.Endpoints))
	for i, server := range config.Endpoints {
		parsedURL, err := url.Parse(strings.TrimRight(server, "/"))
		if err != nil {
			return err
		}
		if parsedURL.Scheme == "" || parsedURL.Host == "" {
			return fmt.Errorf("endpoint %q is not an absolute URL", server)
		}
		parsedURLs[i] = parsedURL
	}

	// Create client with pooled transport and the configured timeout
	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	if config.TimeoutSecond > 0 {
		client.Timeout = time.Duration(config.TimeoutSecond) * time.Second
	}

	t.client = client
	t.serverURLs = parsedURLs
	t.counter = 0
	t.retryCount = config.RetryCount

	return nil
}

func (t *httpClientTransport) Execute(req *transport.Request) (*transport.Response, error) {
	// Check if the transport is initialized
	if t.client == nil {
		return nil, fmt.Errorf("http transport not initialized")
	}

	// Select the next server via round-robin
	idx := atomic.AddUint32(&t.counter, 1) % uint32(len(t.serverURLs))
	serverURL := t.serverURLs[idx]

	requestURL := serverURL.String() + req.Path

	attempts := t.retryCount
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		resp, err := t.send(req.Method, requestURL, req.Headers, req.Body)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		Logger.Debugf("request attempt %d/%d to %s failed: %v", i+1, attempts, requestURL, err)
	}
	return nil, lastErr
}

func (t *httpClientTransport) Close() error {
	// Close idle connections held by the pool
	if t.client != nil {
		t.client.CloseIdleConnections()
	}

	t.client = nil
	t.serverURLs = nil

	return nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// send performs a single request/response exchange. The request is rebuilt
// per attempt since the body reader is consumed by a send.
func (t *httpClientTransport) send(method, requestURL string, headers http.Header, body []byte) (*transport.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	httpRequest, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		return nil, err
	}
	for name, values := range headers {
		for _, value := range values {
			httpRequest.Header.Add(name, value)
		}
	}

	httpResponse, err := t.client.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := httpResponse.Body.Close(); err != nil {
			Logger.Errorf("Failed to close response body: %v", err)
		}
	}()

	respBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, err
	}

	return &transport.Response{
		StatusCode: httpResponse.StatusCode,
		Headers:    httpResponse.Header,
		Body:       respBody,
	}, nil
}
