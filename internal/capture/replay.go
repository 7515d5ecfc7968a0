package capture

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ironsheep/colorbench/internal/imaging"
)

var replayExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ReplaySource plays back the images in a directory, looping forever.
//
// Files are decoded on first use and cached at the configured size, so from
// the second loop on Capture is a map lookup.
type ReplaySource struct {
	mu    sync.Mutex
	paths []string
	next  int
	cache *imaging.FrameCache
}

// NewReplaySource lists the PNG and JPEG files in dir.
//
// Returns an error wrapping ErrSourceUnavailable if the directory cannot be
// read or holds no images.
func NewReplaySource(dir string, width, height int) (*ReplaySource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if replayExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no images in %s", ErrSourceUnavailable, dir)
	}
	sort.Strings(paths)

	return &ReplaySource{
		paths: paths,
		cache: imaging.NewFrameCache(width, height),
	}, nil
}

// Capture returns the next frame in lexical file order.
func (r *ReplaySource) Capture(ctx context.Context) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	path := r.paths[r.next]
	r.next = (r.next + 1) % len(r.paths)
	r.mu.Unlock()

	frame, err := r.cache.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	return frame, nil
}

// Len returns the number of files in the replay cycle.
func (r *ReplaySource) Len() int {
	return len(r.paths)
}

// Close drops the decoded frames.
func (r *ReplaySource) Close() error {
	r.cache.Clear()
	return nil
}
