package inspect

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_RestoresHostHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/status", nil)

	rec := NewRecord(req)

	require.NotEmpty(t, rec.Headers)
	assert.Equal(t, Header{Name: "Host", Value: "example.com"}, rec.Headers[0])
}

func TestNewRecord_RestoresContentLength(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"a":1}`))

	rec := NewRecord(req)

	assert.Contains(t, rec.Headers, Header{Name: "Content-Length", Value: "7"})
}

func TestNewRecord_SortsHeaderNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Zulu", "z")
	req.Header.Set("Alpha", "a")
	req.Header.Set("Mike", "m")

	rec := NewRecord(req)

	var names []string
	for _, h := range rec.Headers {
		if h.Name == "Host" {
			continue
		}
		names = append(names, h.Name)
	}

	assert.Equal(t, []string{"Alpha", "Mike", "Zulu"}, names)
}

func TestNewRecord_KeepsValueOrderWithinName(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Add("X-Dup", "first")
	req.Header.Add("X-Dup", "second")

	rec := NewRecord(req)

	var values []string
	for _, h := range rec.Headers {
		if h.Name == "X-Dup" {
			values = append(values, h.Value)
		}
	}

	assert.Equal(t, []string{"first", "second"}, values)
}
