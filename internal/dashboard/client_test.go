package dashboard

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)

	body, err := client.Get("/dashboards/revisions", url.Values{"page": {"2"}})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, "/dashboards/revisions", got.URL.Path)
	assert.Equal(t, "2", got.URL.Query().Get("page"))
	assert.Equal(t, "XMLHttpRequest", got.Header.Get("X-Requested-With"))
	assert.NotEmpty(t, got.Header.Get("X-Request-Id"))
}

func TestClient_PostForm(t *testing.T) {
	var got *http.Request
	var form url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.PostForm("/classify/r42", url.Values{"revision": {"r42"}, "type": {"spam"}})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "application/x-www-form-urlencoded", got.Header.Get("Content-Type"))
	assert.Equal(t, "r42", form.Get("revision"))
	assert.Equal(t, "spam", form.Get("type"))
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.Get("/dashboards/revisions", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestClient_ResolvesAbsoluteURLs(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL+"/en-US/", time.Second)
	require.NoError(t, err)

	// server-supplied URLs are absolute paths and must not stack on the base
	_, err = client.Get("/compare/r42", nil)
	require.NoError(t, err)
	assert.Equal(t, "/compare/r42", path)
}
