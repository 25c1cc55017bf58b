// Package clock lets business code read the time through an interface so
// tests can pin it.
package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock implementation backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker that reads the current system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// Frozen always reports the same instant until moved.
type Frozen struct {
	At time.Time
}

// Now returns the frozen instant.
func (f *Frozen) Now() time.Time {
	return f.At
}

// Advance moves the frozen instant forward by d.
func (f *Frozen) Advance(d time.Duration) {
	f.At = f.At.Add(d)
}
