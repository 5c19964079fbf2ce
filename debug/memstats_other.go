//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger logs Go heap figures every interval. RSS is only queried on
// windows and is reported as zero here.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			logMemStats(logger, 0)
		}
	}()
}
