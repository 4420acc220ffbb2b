package core

import "time"

// ClockLayout renders hour:minute the way en-US locale time strings do.
const ClockLayout = "03:04 PM"

// FormatClock renders an epoch-millisecond timestamp as hour:minute in loc.
func FormatClock(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ts).In(loc).Format(ClockLayout)
}
