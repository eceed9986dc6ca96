package util

import (
	"sync"
	"time"
)

// NewDebouncer returns a function that schedules f to run once dur has
// passed without another call. There is a single pending slot: each call
// cancels and replaces any run that has not fired yet.
// f runs on its own goroutine; UI work inside it must go through fyne.Do.
func NewDebouncer(dur time.Duration, f func()) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(dur, f)
	}
}
