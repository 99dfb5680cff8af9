package testutil

import (
	"sync/atomic"
	"time"
)

// FakeClock is a manually advanced time source. Its Now method fits every
// func() time.Time hook in the exam and UI packages.
type FakeClock struct {
	base   time.Time
	offset atomic.Int64
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{base: start}
}

func (c *FakeClock) Now() time.Time {
	return c.base.Add(time.Duration(c.offset.Load()))
}

// Advance moves the clock forward by d. It is safe to call while another
// goroutine reads Now.
func (c *FakeClock) Advance(d time.Duration) {
	c.offset.Add(int64(d))
}

// Set moves the clock to t, which may be before the current time.
func (c *FakeClock) Set(t time.Time) {
	c.offset.Store(int64(t.Sub(c.base)))
}
