package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that wait on goroutines.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test ends or timeout passes,
// whichever is first. A zero timeout means DefaultTimeout, shortened to fit
// the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := dt.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// Eventually polls cond every interval and fails the test with msg if it is
// still false after timeout.
func Eventually(t testing.TB, timeout, interval time.Duration, cond func() bool, msg string) {
	t.Helper()
	if msg == "" {
		msg = "condition not met before timeout"
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !cond() {
		select {
		case <-timer.C:
			t.Fatalf("%s", msg)
			return
		case <-ticker.C:
		}
	}
}
