package util

import (
	"fmt"
	"time"
)

// FormatTime renders the span between t1 and t2 in seconds, prefixed by msg
func FormatTime(msg string, t1, t2 time.Time) string {
	return FormatDuration(msg, t2.Sub(t1))
}

func FormatDuration(msg string, d time.Duration) string {
	return fmt.Sprintf("%s: %0.6f sec",
		msg, // the message to print
		float64(d.Nanoseconds())/float64(time.Second.Nanoseconds()), // the seconds
	)
}
