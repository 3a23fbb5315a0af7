package common

// Header names of the store's HTTP API. Header lookup is case-insensitive
// on both sides; these are the canonical spellings used when sending.
const (
	// HeaderVClock carries the opaque causality token. On a sibling
	// conflict response it appears once at the envelope level and is shared
	// by all parts.
	HeaderVClock = "X-Riak-Vclock"
	// HeaderClientID carries the process-wide client identity.
	HeaderClientID = "X-Riak-ClientId"
	// HeaderETag carries the opaque entity tag of a value.
	HeaderETag = "Etag"
	// HeaderLastModified carries the modification timestamp in HTTP date
	// format.
	HeaderLastModified = "Last-Modified"
	// HeaderContentType carries the media type of a value body.
	HeaderContentType = "Content-Type"
	// HeaderAccept advertises the media types the client can decode.
	HeaderAccept = "Accept"

	// IndexHeaderPrefix prefixes one header per secondary-index entry. The
	// full header name is the prefix, the url-encoded index name and a
	// "_bin" or "_int" suffix.
	IndexHeaderPrefix = "X-Riak-Index-"
)

// Media types used on the wire.
const (
	// MediaTypeMultipartMixed is the container type of sibling conflict
	// responses.
	MediaTypeMultipartMixed = "multipart/mixed"
	// MediaTypeJSON is used for key lists and bucket properties.
	MediaTypeJSON = "application/json"
	// AcceptedMediaTypes is sent on fetch and store requests so the store
	// may answer with a multipart conflict body.
	AcceptedMediaTypes = "multipart/mixed, */*"
)
