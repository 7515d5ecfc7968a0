package capture

import (
	"bufio"
	"image"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// FrameWriter persists displayed frames. snapshot.Writer implements it.
type FrameWriter interface {
	Save(img image.Image) (string, error)
}

// HeadlessDisplay is a Display with no window.
//
// Keys are read line by line from an io.Reader; the first rune of every
// non-empty line is one key press. The most recent frame is kept for Latest,
// and every SnapshotEvery-th frame is handed to the FrameWriter.
type HeadlessDisplay struct {
	keys chan Key

	mu     sync.Mutex
	latest image.Image
	shown  int

	writer        FrameWriter
	snapshotEvery int

	closeOnce sync.Once
	done      chan struct{}
}

// HeadlessOptions configures a HeadlessDisplay.
type HeadlessOptions struct {
	// Keys is the key input, usually os.Stdin. May be nil.
	Keys io.Reader

	// AutoStart queues StartKey before any input is read.
	AutoStart bool
	StartKey  Key

	// Snapshots receives every SnapshotEvery-th frame when both are set.
	Snapshots     FrameWriter
	SnapshotEvery int
}

// NewHeadlessDisplay creates a display and starts reading keys.
func NewHeadlessDisplay(opts HeadlessOptions) *HeadlessDisplay {
	d := &HeadlessDisplay{
		keys:          make(chan Key, 16),
		writer:        opts.Snapshots,
		snapshotEvery: opts.SnapshotEvery,
		done:          make(chan struct{}),
	}
	if opts.AutoStart {
		d.keys <- opts.StartKey
	}
	if opts.Keys != nil {
		go d.readKeys(opts.Keys)
	}
	return d
}

func (d *HeadlessDisplay) readKeys(r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		select {
		case d.keys <- Key([]rune(line)[0]):
		case <-d.done:
			return
		}
	}
}

// Press queues a key as if it had been typed.
func (d *HeadlessDisplay) Press(k Key) {
	select {
	case d.keys <- k:
	case <-d.done:
	}
}

// Show records img as the latest frame and writes a snapshot when due.
func (d *HeadlessDisplay) Show(img image.Image) {
	d.mu.Lock()
	d.latest = img
	d.shown++
	due := d.writer != nil && d.snapshotEvery > 0 && d.shown%d.snapshotEvery == 0
	d.mu.Unlock()

	if due {
		path, err := d.writer.Save(img)
		if err != nil {
			slog.Warn("capture: snapshot failed", "error", err)
			return
		}
		slog.Debug("capture: snapshot written", "path", path)
	}
}

// PollKey returns a pending key without blocking.
func (d *HeadlessDisplay) PollKey() (Key, bool) {
	select {
	case k := <-d.keys:
		return k, true
	default:
		return 0, false
	}
}

// Latest returns the most recently shown frame, or nil.
func (d *HeadlessDisplay) Latest() image.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.latest
}

// Shown returns the number of frames shown.
func (d *HeadlessDisplay) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// Close stops the key reader.
func (d *HeadlessDisplay) Close() error {
	d.closeOnce.Do(func() { close(d.done) })
	return nil
}
