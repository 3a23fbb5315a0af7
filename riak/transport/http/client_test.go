package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rkvclient/rkv/riak/common"
	"github.com/rkvclient/rkv/riak/transport"
)

func testConfig(endpoints ...string) common.ClientConfig {
	return common.ClientConfig{
		Endpoints:     endpoints,
		TimeoutSecond: 5,
		RetryCount:    1,
	}
}

func TestConnect(t *testing.T) {
	t.Run("NoEndpoints", func(t *testing.T) {
		if err := NewHTTPClientTransport().Connect(common.ClientConfig{}); err == nil {
			t.Errorf("expected an error without endpoints")
		}
	})

	t.Run("RelativeEndpoint", func(t *testing.T) {
		if err := NewHTTPClientTransport().Connect(testConfig("localhost:8098")); err == nil {
			t.Errorf("expected an error for a non-absolute endpoint")
		}
	})

	t.Run("TrailingSlashTrimmed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ping" {
				t.Errorf("unexpected request path %q", r.URL.Path)
			}
		}))
		defer srv.Close()

		tr := NewHTTPClientTransport()
		if err := tr.Connect(testConfig(srv.URL + "/")); err != nil {
			t.Fatalf("failed to connect: %v", err)
		}
		if _, err := tr.Execute(&transport.Request{Method: http.MethodGet, Path: "/ping"}); err != nil {
			t.Fatalf("failed to execute: %v", err)
		}
	})
}

func TestExecute(t *testing.T) {
	t.Run("NotConnected", func(t *testing.T) {
		tr := NewHTTPClientTransport()
		if _, err := tr.Execute(&transport.Request{Method: http.MethodGet, Path: "/"}); err == nil {
			t.Errorf("expected an error before Connect")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("unexpected method %s", r.Method)
			}
			if got := r.Header.Get("X-Custom"); got != "yes" {
				t.Errorf("request header not forwarded, got %q", got)
			}
			body, _ := io.ReadAll(r.Body)
			if string(body) != "payload" {
				t.Errorf("unexpected request body %q", body)
			}
			w.Header().Set("X-Answer", "42")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("stored"))
		}))
		defer srv.Close()

		tr := NewHTTPClientTransport()
		if err := tr.Connect(testConfig(srv.URL)); err != nil {
			t.Fatalf("failed to connect: %v", err)
		}
		defer func() { _ = tr.Close() }()

		headers := http.Header{}
		headers.Set("X-Custom", "yes")

		resp, err := tr.Execute(&transport.Request{
			Method:  http.MethodPut,
			Path:    "/buckets/b/keys/k",
			Headers: headers,
			Body:    []byte("payload"),
		})
		if err != nil {
			t.Fatalf("failed to execute: %v", err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Errorf("unexpected status %d", resp.StatusCode)
		}
		if resp.Headers.Get("X-Answer") != "42" {
			t.Errorf("response header not returned")
		}
		if string(resp.Body) != "stored" {
			t.Errorf("unexpected response body %q", resp.Body)
		}
	})

	t.Run("RoundRobin", func(t *testing.T) {
		var hitsA, hitsB int
		srvA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hitsA++ }))
		defer srvA.Close()
		srvB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hitsB++ }))
		defer srvB.Close()

		tr := NewHTTPClientTransport()
		if err := tr.Connect(testConfig(srvA.URL, srvB.URL)); err != nil {
			t.Fatalf("failed to connect: %v", err)
		}

		for i := 0; i < 4; i++ {
			if _, err := tr.Execute(&transport.Request{Method: http.MethodGet, Path: "/"}); err != nil {
				t.Fatalf("failed to execute: %v", err)
			}
		}
		if hitsA != 2 || hitsB != 2 {
			t.Errorf("expected requests to alternate, got %d/%d", hitsA, hitsB)
		}
	})
}
