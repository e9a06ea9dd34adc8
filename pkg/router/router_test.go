package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-segmentation/pkg/router"
)

func newServer(t *testing.T) (*router.Router, *httptest.Server) {
	t.Helper()
	r := router.New()
	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)
	return r, srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func TestExactRoute(t *testing.T) {
	r, srv := newServer(t)
	r.GET("/ping", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("pong"))
	})

	resp, body := get(t, srv.URL+"/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", body)
}

func TestWildcardSegment(t *testing.T) {
	r, srv := newServer(t)
	r.GET("/api/v1/jobs/*/status", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("status"))
	})

	resp, body := get(t, srv.URL+"/api/v1/jobs/job_abc/status")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "status", body)

	// Wrong depth does not match
	resp, _ = get(t, srv.URL+"/api/v1/jobs/a/b/status")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTrailingWildcard(t *testing.T) {
	r, srv := newServer(t)
	r.GET("/swagger/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("docs"))
	})

	for _, path := range []string{"/swagger/index.html", "/swagger/a/b/c"} {
		resp, body := get(t, srv.URL+path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "docs", body)
	}
}

func TestMethodNotAllowedVsNotFound(t *testing.T) {
	r, srv := newServer(t)
	r.POST("/api/v1/jobs", func(w http.ResponseWriter, req *http.Request) {})

	resp, _ := get(t, srv.URL+"/api/v1/jobs")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/api/v1/unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouteRegistry(t *testing.T) {
	r := router.New()
	r.GET("/a", func(w http.ResponseWriter, req *http.Request) {})
	r.POST("/a", func(w http.ResponseWriter, req *http.Request) {})

	assert.Len(t, r.Routes(), 2)
	assert.True(t, r.Paths()["/a"])
}
