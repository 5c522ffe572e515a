package flags

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	img, err := Decode(bytes.NewReader(pngBytes(t, 3, 2)))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	_, err = Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func waitFor(t *testing.T, l *Loader, url string) (image.Image, Status) {
	t.Helper()
	var (
		img    image.Image
		status Status
	)
	require.Eventually(t, func() bool {
		img, status = l.Get(url)
		return status != StatusPending
	}, 5*time.Second, 10*time.Millisecond)
	return img, status
}

func TestLoader(t *testing.T) {
	flag := pngBytes(t, 4, 3)
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fr.png":
			hits.Add(1)
			w.Header().Set("Content-Type", "image/png")
			w.Write(flag)
		case "/broken.png":
			w.Write([]byte("garbage"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	l := NewLoader(NewLoaderOptions{})
	ctx := context.Background()

	_, status := l.Get(server.URL + "/fr.png")
	assert.Equal(t, StatusPending, status)

	l.Request(ctx, server.URL+"/fr.png")
	img, status := waitFor(t, l, server.URL+"/fr.png")
	require.Equal(t, StatusLoaded, status)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	// cached
	l.Request(ctx, server.URL+"/fr.png")
	_, status = l.Get(server.URL + "/fr.png")
	assert.Equal(t, StatusLoaded, status)
	assert.Equal(t, int32(1), hits.Load())

	for _, path := range []string{"/broken.png", "/missing.png"} {
		l.Request(ctx, server.URL+path)
		img, status := waitFor(t, l, server.URL+path)
		assert.Equal(t, StatusFailed, status, path)
		assert.Nil(t, img)
	}

	l.Request(ctx, "")
	_, status = waitFor(t, l, "")
	assert.Equal(t, StatusFailed, status)
}
