// Package snapshot saves display frames to disk as PNG, JPEG or WebP.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Writer saves numbered snapshots into a directory.
type Writer struct {
	dir      string
	prefix   string
	format   string
	quality  int
	lossless bool

	mu   sync.Mutex
	next int
}

// Options configures a Writer.
type Options struct {
	// Format is "png", "jpeg"/"jpg" or "webp". Defaults to "png".
	Format string

	// Quality is used for JPEG and lossy WebP (1-100, default 90).
	Quality int

	// Lossless selects lossless WebP.
	Lossless bool

	// Prefix starts every file name. Defaults to "frame".
	Prefix string
}

// NewWriter creates dir if needed.
func NewWriter(dir string, opts Options) (*Writer, error) {
	format := strings.ToLower(opts.Format)
	switch format {
	case "":
		format = "png"
	case "jpg":
		format = "jpeg"
	case "png", "jpeg", "webp":
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", opts.Format)
	}

	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "frame"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	return &Writer{
		dir:      dir,
		prefix:   prefix,
		format:   format,
		quality:  quality,
		lossless: opts.Lossless,
	}, nil
}

// Save writes img to the next numbered file and returns its path.
func (w *Writer) Save(img image.Image) (string, error) {
	w.mu.Lock()
	n := w.next
	w.next++
	w.mu.Unlock()

	ext := w.format
	if ext == "jpeg" {
		ext = "jpg"
	}
	path := filepath.Join(w.dir, fmt.Sprintf("%s-%06d.%s", w.prefix, n, ext))

	if err := w.encode(img, path); err != nil {
		return "", fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return path, nil
}

func (w *Writer) encode(img image.Image, path string) error {
	switch w.format {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts := &webp.Options{Lossless: w.lossless, Quality: float32(w.quality)}
		return webp.Encode(f, img, opts)
	case "png":
		return imaging.Save(img, path)
	default:
		return imaging.Save(img, path, imaging.JPEGQuality(w.quality))
	}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}
