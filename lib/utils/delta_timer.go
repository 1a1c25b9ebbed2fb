package utils

import "time"

// DeltaTimer measures the time between consecutive frames.
type DeltaTimer struct {
	time.Time
}

// Next returns the time since the previous call, or 0 on the first call.
func (d *DeltaTimer) Next() time.Duration {
	return d.NextAt(time.Now())
}

func (d *DeltaTimer) NextAt(now time.Time) time.Duration {
	// acquire timestamp exactly once to ensure we're not accumulating error
	defer d.Set(now)
	if d.IsZero() {
		return 0
	}
	return now.Sub(d.Time)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.Time = t
}
