package backend

import "time"

// throttle spaces successive reloads at least interval apart, so a file
// rewritten in several quick steps is not reparsed for every step.
// It is owned by a single poller goroutine.
type throttle struct {
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval, now: time.Now, sleep: time.Sleep}
}

func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	now := t.now()
	if !t.last.IsZero() {
		if gap := t.last.Add(t.interval).Sub(now); gap > 0 {
			t.sleep(gap)
			now = now.Add(gap)
		}
	}
	t.last = now
}
