package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRejectsSSRFTarget(t *testing.T) {
	_, err := Fetch(context.Background(), "http://127.0.0.1:1/", Options{})
	require.Error(t, err)
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	result, err := Fetch(context.Background(), server.URL, Options{AllowPrivateNetworks: true})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, string(result.Body), "ok")
}

func TestFetchRejectsBadContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL, Options{AllowPrivateNetworks: true})
	require.Error(t, err)
}

func TestFetchRejectsNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL, Options{AllowPrivateNetworks: true})
	require.Error(t, err)
}

func TestDetectAndDecodeUTF8Passthrough(t *testing.T) {
	got := DetectAndDecode([]byte("hello"), "text/html; charset=utf-8")
	assert.Equal(t, "hello", got)
}
