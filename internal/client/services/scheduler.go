package services

import "time"

// Scheduler runs a function once after a delay. The returned cancel stops
// the run if it has not fired yet and reports whether it did. Tests swap in
// a manual implementation to make transition timing deterministic.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func() bool)
}

// TimerScheduler is the production Scheduler over time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
