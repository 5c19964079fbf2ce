package presenter

import (
	"context"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/soocke/insetcrop/domain/source"
)

// LoadSink receives the outcome of image loads on the UI thread.
type LoadSink interface {
	ImageLoaded(path string, img image.Image)
	ImageFailed(path string, err error)
	ImageCleared()
}

type loadResult struct {
	seq  uint64
	path string
	img  image.Image
	err  error
}

// LoadStats counts what a loader did so far.
type LoadStats struct {
	Started   uint64 // loads handed to a worker
	Delivered uint64 // images passed to the sink
	Failed    uint64 // errors passed to the sink
	Dropped   uint64 // results discarded because a newer load superseded them
}

// Attrs returns the counters as log attributes.
func (s LoadStats) Attrs() []slog.Attr {
	return []slog.Attr{
		slog.Uint64("started", s.Started),
		slog.Uint64("delivered", s.Delivered),
		slog.Uint64("failed", s.Failed),
		slog.Uint64("dropped", s.Dropped),
	}
}

type loadCounters struct {
	started, delivered, failed, dropped atomic.Uint64
}

// Loader debounces path edits and loads images off the UI thread. Request
// and Tick must be called from the UI thread; only the load itself runs on
// a worker goroutine, and its result is handed back through a channel that
// Tick drains.
type Loader struct {
	src      source.Source
	sink     LoadSink
	debounce time.Duration
	logger   *slog.Logger

	pending    string
	hasPending bool
	due        time.Time

	current  string
	seq      uint64
	cancel   context.CancelFunc
	inflight bool
	results  chan loadResult
	counters loadCounters
}

// NewLoader returns a loader that waits debounce after the last request
// before loading.
func NewLoader(src source.Source, sink LoadSink, debounce time.Duration, logger *slog.Logger) *Loader {
	return &Loader{src: src, sink: sink, debounce: debounce, logger: logger, results: make(chan loadResult, 1)}
}

// Request records path as the image to show once the debounce delay has
// passed without another request. An empty path clears the image at once.
func (l *Loader) Request(path string, now time.Time) {
	if l == nil {
		return
	}
	path = source.CleanID(path)
	if path == "" {
		l.stop()
		l.hasPending = false
		l.current = ""
		l.sink.ImageCleared()
		return
	}
	l.pending, l.hasPending, l.due = path, true, now.Add(l.debounce)
}

// Load loads path on the next tick, even when it is the current path.
func (l *Loader) Load(path string, now time.Time) {
	if l == nil {
		return
	}
	l.Request(path, now)
	if l.hasPending {
		l.due = now
		l.current = ""
	}
}

// Current returns the path of the latest dispatched load.
func (l *Loader) Current() string {
	if l == nil {
		return ""
	}
	return l.current
}

// Busy reports whether a load is running or waiting for its debounce.
func (l *Loader) Busy() bool {
	if l == nil {
		return false
	}
	return l.inflight || l.hasPending
}

// Stats returns the load counters. Unlike the other methods it may be called
// from any goroutine.
func (l *Loader) Stats() LoadStats {
	if l == nil {
		return LoadStats{}
	}
	return LoadStats{
		Started:   l.counters.started.Load(),
		Delivered: l.counters.delivered.Load(),
		Failed:    l.counters.failed.Load(),
		Dropped:   l.counters.dropped.Load(),
	}
}

// Tick delivers finished loads and dispatches a due request.
func (l *Loader) Tick(now time.Time) {
	if l == nil {
		return
	}
	for drained := false; !drained; {
		select {
		case res := <-l.results:
			l.deliver(res)
		default:
			drained = true
		}
	}
	if !l.hasPending || now.Before(l.due) {
		return
	}
	l.hasPending = false
	if l.pending == l.current {
		return
	}
	l.dispatch(l.pending)
}

func (l *Loader) deliver(res loadResult) {
	if res.seq != l.seq {
		l.counters.dropped.Add(1)
		if l.logger != nil {
			l.logger.Debug("stale image load dropped", "path", res.path)
		}
		return
	}
	l.inflight = false
	if res.err != nil {
		l.counters.failed.Add(1)
		l.sink.ImageFailed(res.path, res.err)
		return
	}
	l.counters.delivered.Add(1)
	l.sink.ImageLoaded(res.path, res.img)
}

func (l *Loader) dispatch(path string) {
	l.stop()
	l.seq++
	l.current = path
	l.inflight = true
	l.counters.started.Add(1)
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	seq, src, out := l.seq, l.src, l.results
	if l.logger != nil {
		l.logger.Debug("image load started", "path", path, "seq", seq)
	}
	go func() {
		img, err := src.Load(ctx, path)
		select {
		case out <- loadResult{seq: seq, path: path, img: img, err: err}:
		case <-ctx.Done():
		}
	}()
}

// stop cancels a running load; its result, if any, is dropped.
func (l *Loader) stop() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.inflight {
		l.seq++
		l.inflight = false
	}
}

// Close cancels any running load.
func (l *Loader) Close() {
	if l == nil {
		return
	}
	l.stop()
	l.hasPending = false
}
