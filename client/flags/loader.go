package flags

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cbodonnell/flagmaster/pkg/log"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"
)

const (
	// PlaceholderText is drawn in place of a flag that failed to load
	PlaceholderText = "Flag image not available"

	DefaultMaxConcurrent = 4
	DefaultTimeout       = 15 * time.Second
	// MaxImageBytes caps a single flag download
	MaxImageBytes = 4 << 20
)

type Status int

const (
	StatusPending Status = iota
	StatusLoaded
	StatusFailed
)

type entry struct {
	status Status
	img    image.Image
	err    error
}

// Loader downloads and decodes flag images in the background, caching the
// result per URL for the life of the process.
type Loader struct {
	client *http.Client
	sem    *semaphore.Weighted

	mu      sync.Mutex
	entries map[string]*entry
}

type NewLoaderOptions struct {
	HTTPClient    *http.Client
	MaxConcurrent int64
}

func NewLoader(opts NewLoaderOptions) *Loader {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Loader{
		client:  client,
		sem:     semaphore.NewWeighted(maxConcurrent),
		entries: make(map[string]*entry),
	}
}

// Request starts loading url unless it is already loading or loaded.
func (l *Loader) Request(ctx context.Context, url string) {
	l.mu.Lock()
	if _, ok := l.entries[url]; ok {
		l.mu.Unlock()
		return
	}
	e := &entry{status: StatusPending}
	l.entries[url] = e
	l.mu.Unlock()

	go func() {
		img, err := l.fetch(ctx, url)
		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			log.Warn("Failed to load flag %s: %v", url, err)
			e.status = StatusFailed
			e.err = err
			return
		}
		e.status = StatusLoaded
		e.img = img
	}()
}

// Get returns the state of url. Unrequested URLs report StatusPending.
func (l *Loader) Get(url string) (image.Image, Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[url]
	if !ok {
		return nil, StatusPending
	}
	return e.img, e.status
}

func (l *Loader) fetch(ctx context.Context, url string) (image.Image, error) {
	if url == "" {
		return nil, fmt.Errorf("empty flag URL")
	}
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer l.sem.Release(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get flag: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return Decode(io.LimitReader(resp.Body, MaxImageBytes))
}

// Decode decodes a PNG, JPEG, GIF or WebP image.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	log.Trace("Decoded %s flag %v", format, img.Bounds())
	return img, nil
}
