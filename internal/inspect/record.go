package inspect

import (
	"net/http"
	"sort"
	"strconv"
)

// Header is a single name/value occurrence. Repeated names appear as
// separate entries, never merged.
type Header struct {
	Name  string
	Value string
}

// Record is everything observed about one request, ready to dump.
type Record struct {
	Method  string
	Path    string
	Headers []Header

	// Body is the decoded request body. Only meaningful if HasBody.
	Body    string
	HasBody bool

	// Schema is the optional validation verdict for the body.
	Schema *SchemaReport
}

// SchemaReport is the outcome of validating a body against the
// configured JSON Schema.
type SchemaReport struct {
	// Err is set when the schema could not be applied at all,
	// e.g. the body is not JSON.
	Err error

	Valid    bool
	Problems []string
}

// NewRecord captures method, path and headers from the request. The
// Host header and a positive Content-Length are restored to the
// listing: net/http promotes both out of the header map, but the
// client did send them.
func NewRecord(r *http.Request) Record {
	headers := make([]Header, 0, len(r.Header)+2)

	if r.Host != "" {
		headers = append(headers, Header{Name: "Host", Value: r.Host})
	}
	if r.ContentLength > 0 {
		headers = append(headers, Header{
			Name:  "Content-Length",
			Value: strconv.FormatInt(r.ContentLength, 10),
		})
	}

	headers = append(headers, sortedHeaders(r.Header)...)

	return Record{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: headers,
	}
}

// sortedHeaders flattens the header map to one entry per occurrence.
// net/http does not retain receipt order across names, so names are
// listed in sorted order; values within a name keep their order.
func sortedHeaders(h http.Header) []Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	var headers []Header
	for _, name := range names {
		for _, value := range h[name] {
			headers = append(headers, Header{Name: name, Value: value})
		}
	}

	return headers
}
