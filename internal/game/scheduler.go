package game

import "time"

// Timer is a pending scheduled call
type Timer interface {
	Stop() bool
}

// Scheduler runs a function after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules on the runtime timer
type ClockScheduler struct{}

// AfterFunc implements Scheduler
func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
