package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageLoader_Load(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/towel.png":
			_, _ = w.Write(png)
		case "/empty.png":
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	loader := NewImageLoader(srv.Client(), nil)

	res, err := loader.Load(context.Background(), srv.URL+"/towel.png")
	require.NoError(t, err)
	assert.Equal(t, "towel.png", res.Name())
	assert.Equal(t, png, res.Content())

	_, err = loader.Load(context.Background(), srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "HTTP 404")

	_, err = loader.Load(context.Background(), srv.URL+"/empty.png")
	assert.ErrorContains(t, err, "empty")
}

func TestImageLoader_CancelledContext(t *testing.T) {
	loader := NewImageLoader(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, "http://127.0.0.1:1/x.png")
	assert.Error(t, err)
}
