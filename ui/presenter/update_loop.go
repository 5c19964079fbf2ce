package presenter

import (
	"log/slog"
	"time"
)

// Loop drives periodic updates of the presenters from the UI timer.
//
// It calls Tick on the loader first so freshly loaded images are drawn in
// the same pass, shows a loading note while the loader is busy, then
// invokes a scheduler callback. The zero value is
// usable (methods are nil-safe).
type Loop struct {
	Loader   *Loader
	Crop     *CropPresenter
	Schedule func()
	Logger   *slog.Logger
}

func NewLoop(loader *Loader, crop *CropPresenter, schedule func(), logger *slog.Logger) *Loop {
	return &Loop{Loader: loader, Crop: crop, Schedule: schedule, Logger: logger}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	defer func() {
		if l.Schedule != nil {
			l.Schedule()
		}
	}()
	defer func() {
		if r := recover(); r != nil && l.Logger != nil {
			l.Logger.Error("update tick panic", "panic", r)
		}
	}()
	now := time.Now()
	if l.Loader != nil {
		l.Loader.Tick(now)
	}
	if l.Crop != nil {
		l.Crop.SetLoading(l.Loader.Busy())
		l.Crop.Tick(now)
	}
}
