package progress

import "time"

// Task is a scheduled call that can be cancelled.
type Task interface {
	// Stop cancels the call. It returns false if the call already started or was stopped.
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}
