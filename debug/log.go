package debug

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

func logMemStats(logger *slog.Logger, rss uint64) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	logger.Debug("memstats",
		slog.Int("goroutines", runtime.NumGoroutine()),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("heap_idle", ms.HeapIdle),
		slog.Uint64("heap_sys", ms.HeapSys),
		slog.Uint64("next_gc", ms.NextGC),
		slog.Uint64("rss", rss),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	)
}

// StartLoadLogger logs the goroutine count next to the attributes returned
// by stats every interval. Each image load runs on its own goroutine, so the
// two should rise and fall together.
func StartLoadLogger(interval time.Duration, logger *slog.Logger, stats func() []slog.Attr) {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for range t.C {
			logLoads(logger, stats)
		}
	}()
}

func logLoads(logger *slog.Logger, stats func() []slog.Attr) {
	attrs := []slog.Attr{slog.Int("goroutines", runtime.NumGoroutine())}
	if stats != nil {
		attrs = append(attrs, stats()...)
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, "image-loads", attrs...)
}
