package riaktest

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rkvclient/rkv/lib/kv"
	"github.com/rkvclient/rkv/riak/codec"
	"github.com/rkvclient/rkv/riak/common"
)

// Object is one stored sibling as the server keeps it. An empty ETag is
// legal and makes the server omit the header, which lets tests exercise the
// client's handling of incomplete sibling metadata.
type Object struct {
	Data         []byte
	ContentType  string
	ETag         string
	LastModified time.Time
	Indexes      []kv.IndexEntry
}

// entry holds all siblings of one key plus its current causality token.
type entry struct {
	mu       sync.Mutex
	token    string
	siblings []Object
}

// Server is the in-memory store. It implements http.Handler and is safe for
// concurrent use.
type Server struct {
	router  chi.Router
	entries *xsync.MapOf[string, *entry]
	props   *xsync.MapOf[string, kv.BucketProperties]
	seq     atomic.Uint64
}

// NewServer creates an empty store server.
func NewServer() *Server {
	s := &Server{
		entries: xsync.NewMapOf[string, *entry](),
		props:   xsync.NewMapOf[string, kv.BucketProperties](),
	}

	r := chi.NewRouter()
	r.Route("/buckets/{bucket}", func(r chi.Router) {
		r.Get("/keys/{key}", s.handleFetch)
		r.Put("/keys/{key}", s.handleStore)
		r.Delete("/keys/{key}", s.handleDelete)
		r.Get("/index/{index}/{value}", s.handleIndexMatch)
		r.Get("/index/{index}/{min}/{max}", s.handleIndexRange)
		r.Get("/props", s.handleGetProps)
		r.Put("/props", s.handleSetProps)
	})
	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// --------------------------------------------------------------------------
// Test Hooks
// --------------------------------------------------------------------------

// SeedSibling appends a sibling for bucket/key directly, bypassing the
// vector-clock checks of a regular store. LastModified defaults to the
// current time when zero; ETag is taken as given, including empty.
func (s *Server) SeedSibling(bucket, key string, obj Object) {
	if obj.LastModified.IsZero() {
		obj.LastModified = time.Now().UTC().Truncate(time.Second)
	}
	e := s.entry(bucket, key)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.siblings = append(e.siblings, obj)
	e.token = s.nextToken()
}

// SiblingCount returns how many siblings are currently stored for
// bucket/key.
func (s *Server) SiblingCount(bucket, key string) int {
	e, ok := s.entries.Load(entryKey(bucket, key))
	if !ok {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.siblings)
}

// --------------------------------------------------------------------------
// Key Handlers
// --------------------------------------------------------------------------

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	key := chi.URLParam(r, "key")

	e, ok := s.entries.Load(entryKey(bucket, key))
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch len(e.siblings) {
	case 0:
		http.Error(w, "not found", http.StatusNotFound)
	case 1:
		writeObject(w, e.siblings[0], e.token, http.StatusOK)
	default:
		writeSiblings(w, e.siblings, e.token)
	}
}

func (s *Server) handleStore(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	key := chi.URLParam(r, "key")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusInternalServerError)
		return
	}

	obj := Object{
		Data:         body,
		ContentType:  r.Header.Get(common.HeaderContentType),
		ETag:         fmt.Sprintf("etag-%d", s.seq.Add(1)),
		LastModified: time.Now().UTC().Truncate(time.Second),
		Indexes:      codec.DecodeIndexHeaders(r.Header),
	}

	e := s.entry(bucket, key)
	e.mu.Lock()
	defer e.mu.Unlock()

	descended := r.Header.Get(common.HeaderVClock) == e.token && e.token != ""
	if len(e.siblings) == 0 || descended || !s.allowMult(bucket) {
		e.siblings = []Object{obj}
	} else {
		// Concurrent write without a current token: keep both versions.
		e.siblings = append(e.siblings, obj)
	}
	e.token = s.nextToken()

	if r.URL.Query().Get("returnbody") != "true" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if len(e.siblings) == 1 {
		writeObject(w, e.siblings[0], e.token, http.StatusOK)
		return
	}
	writeSiblings(w, e.siblings, e.token)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	key := chi.URLParam(r, "key")

	if _, ok := s.entries.LoadAndDelete(entryKey(bucket, key)); !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --------------------------------------------------------------------------
// Index Handlers
// --------------------------------------------------------------------------

func (s *Server) handleIndexMatch(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	indexName, kind, ok := parseIndexName(chi.URLParam(r, "index"))
	if !ok {
		http.Error(w, "bad index name", http.StatusBadRequest)
		return
	}

	var want kv.IndexEntry
	if kind == kv.IndexInt {
		n, err := strconv.ParseInt(chi.URLParam(r, "value"), 10, 64)
		if err != nil {
			http.Error(w, "bad index value", http.StatusBadRequest)
			return
		}
		want = kv.NewIntIndex(indexName, n)
	} else {
		want = kv.NewBinIndex(indexName, chi.URLParam(r, "value"))
	}

	s.writeKeyList(w, bucket, func(obj Object) bool {
		for _, e := range obj.Indexes {
			if e == want {
				return true
			}
		}
		return false
	})
}

func (s *Server) handleIndexRange(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	indexName, kind, ok := parseIndexName(chi.URLParam(r, "index"))
	if !ok || kind != kv.IndexInt {
		http.Error(w, "range queries require an int index", http.StatusBadRequest)
		return
	}

	min, errMin := strconv.ParseInt(chi.URLParam(r, "min"), 10, 64)
	max, errMax := strconv.ParseInt(chi.URLParam(r, "max"), 10, 64)
	if errMin != nil || errMax != nil || min > max {
		http.Error(w, "bad index range", http.StatusBadRequest)
		return
	}

	s.writeKeyList(w, bucket, func(obj Object) bool {
		for _, e := range obj.Indexes {
			if e.Kind == kv.IndexInt && e.Name == indexName && e.IntValue >= min && e.IntValue <= max {
				return true
			}
		}
		return false
	})
}

// --------------------------------------------------------------------------
// Bucket Properties Handlers
// --------------------------------------------------------------------------

func (s *Server) handleGetProps(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	props, _ := s.props.Load(bucket)

	body, err := codec.EncodeBucketProperties(props)
	if err != nil {
		http.Error(w, "failed to encode properties", http.StatusInternalServerError)
		return
	}
	w.Header().Set(common.HeaderContentType, common.MediaTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleSetProps(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")

	if !strings.Contains(r.Header.Get(common.HeaderContentType), common.MediaTypeJSON) {
		http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusInternalServerError)
		return
	}
	update, err := codec.DecodeBucketProperties(body)
	if err != nil {
		http.Error(w, "bad properties payload", http.StatusBadRequest)
		return
	}

	current, _ := s.props.Load(bucket)
	if update.NVal != nil {
		current.NVal = update.NVal
	}
	if update.AllowMult != nil {
		current.AllowMult = update.AllowMult
	}
	if update.LastWriteWins != nil {
		current.LastWriteWins = update.LastWriteWins
	}
	if update.Backend != "" {
		current.Backend = update.Backend
	}
	s.props.Store(bucket, current)

	w.WriteHeader(http.StatusNoContent)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func entryKey(bucket, key string) string {
	return bucket + "/" + key
}

func (s *Server) entry(bucket, key string) *entry {
	e, _ := s.entries.LoadOrStore(entryKey(bucket, key), &entry{})
	return e
}

func (s *Server) nextToken() string {
	return fmt.Sprintf("vc%d", s.seq.Add(1))
}

func (s *Server) allowMult(bucket string) bool {
	props, ok := s.props.Load(bucket)
	return ok && props.AllowMult != nil && *props.AllowMult
}

// writeKeyList answers an index lookup with all keys of the bucket for
// which any sibling matches.
func (s *Server) writeKeyList(w http.ResponseWriter, bucket string, match func(Object) bool) {
	prefix := bucket + "/"
	var keys []string

	s.entries.Range(func(k string, e *entry) bool {
		if !strings.HasPrefix(k, prefix) {
			return true
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		for _, obj := range e.siblings {
			if match(obj) {
				keys = append(keys, strings.TrimPrefix(k, prefix))
				break
			}
		}
		return true
	})

	body, err := codec.EncodeKeyList(keys)
	if err != nil {
		http.Error(w, "failed to encode key list", http.StatusInternalServerError)
		return
	}
	w.Header().Set(common.HeaderContentType, common.MediaTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// parseIndexName splits "name_bin" / "name_int" into name and kind.
func parseIndexName(raw string) (string, kv.IndexKind, bool) {
	switch {
	case strings.HasSuffix(raw, "_bin"):
		return strings.TrimSuffix(raw, "_bin"), kv.IndexBin, true
	case strings.HasSuffix(raw, "_int"):
		return strings.TrimSuffix(raw, "_int"), kv.IndexInt, true
	default:
		return "", 0, false
	}
}

// objectHeaders builds the metadata headers of one stored object.
func objectHeaders(obj Object) http.Header {
	h := http.Header{}
	if obj.ContentType != "" {
		h.Set(common.HeaderContentType, obj.ContentType)
	}
	if obj.ETag != "" {
		h.Set(common.HeaderETag, obj.ETag)
	}
	if !obj.LastModified.IsZero() {
		h.Set(common.HeaderLastModified, obj.LastModified.UTC().Format(http.TimeFormat))
	}
	for _, e := range obj.Indexes {
		name, value := codec.EncodeIndexHeader(e)
		h.Add(name, value)
	}
	return h
}

// writeObject answers with a single value response.
func writeObject(w http.ResponseWriter, obj Object, token string, status int) {
	for name, values := range objectHeaders(obj) {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	w.Header().Set(common.HeaderVClock, token)
	w.WriteHeader(status)
	_, _ = w.Write(obj.Data)
}

// writeSiblings answers with a 300 multipart conflict response. The
// causality token sits on the envelope only, one part per sibling.
func writeSiblings(w http.ResponseWriter, siblings []Object, token string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, obj := range siblings {
		partHeader := textproto.MIMEHeader{}
		for name, values := range objectHeaders(obj) {
			for _, v := range values {
				partHeader.Add(name, v)
			}
		}
		pw, err := mw.CreatePart(partHeader)
		if err != nil {
			http.Error(w, "failed to build multipart body", http.StatusInternalServerError)
			return
		}
		_, _ = pw.Write(obj.Data)
	}
	if err := mw.Close(); err != nil {
		http.Error(w, "failed to build multipart body", http.StatusInternalServerError)
		return
	}

	w.Header().Set(common.HeaderContentType,
		common.MediaTypeMultipartMixed+"; boundary="+mw.Boundary())
	w.Header().Set(common.HeaderVClock, token)
	w.WriteHeader(http.StatusMultipleChoices)
	_, _ = buf.WriteTo(w)
}
