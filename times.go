package workout

import (
	"fmt"
	"time"
)

// TimeLayout is the accepted timestamp format, e.g. "1/1/2021 3:30 PM".
const TimeLayout = "1/2/2006 3:04 PM"

// ParseTime parses a timestamp in TimeLayout
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}

// ElapsedSeconds returns end - start in seconds. The result is negative when
// end precedes start; the workout constructors reject such pairs.
func ElapsedSeconds(start, end time.Time) float64 {
	return end.Sub(start).Seconds()
}
