package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockImageFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "2,business,tech,meeting")
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("fake-image-bytes"))
	}))
	defer srv.Close()

	f := NewStockImageFetcher(srv.URL)
	data, mimeType, err := f.Fetch(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, []byte("fake-image-bytes"), data)
	assert.Equal(t, "image/png", mimeType)
}

func TestStockImageFetcherNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewStockImageFetcher(srv.URL)
	_, _, err := f.Fetch(context.Background(), 0)
	assert.Error(t, err)
}

func TestStockImageFetcherDefaultMIME(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress auto-detection
		w.Write([]byte{0xff, 0xd8, 0xff})
	}))
	defer srv.Close()

	f := NewStockImageFetcher(srv.URL)
	_, mimeType, err := f.Fetch(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
}
