package timex

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// RelativeTime describes t relative to the current moment,
// e.g. "just now", "5 minutes ago" or "in 2 days".
func RelativeTime(t time.Time) string {
	return RelativeTimeFrom(t, time.Now())
}

// RelativeTimeFrom describes t relative to now. Each unit is truncated
// toward zero and the first matching threshold wins:
//
//	< 1 minute  "just now"
//	< 1 hour    "N minute(s) ago"
//	< 1 day     "N hour(s) ago"
//	< 7 days    "N day(s) ago"
//	< 30 days   "N week(s) ago"   (days / 7)
//	< 365 days  "N month(s) ago"  (days / 30)
//	otherwise   "N year(s) ago"   (days / 365)
//
// A t after now uses the same thresholds with "in N unit(s)".
func RelativeTimeFrom(t, now time.Time) string {
	elapsed := now.Sub(t)

	future := elapsed < 0
	if future {
		if elapsed == math.MinInt64 {
			elapsed = math.MaxInt64
		} else {
			elapsed = -elapsed
		}
	}

	days := int64(elapsed / day)

	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return relative(int64(elapsed/time.Minute), "minute", future)
	case elapsed < day:
		return relative(int64(elapsed/time.Hour), "hour", future)
	case days < 7:
		return relative(days, "day", future)
	case days < 30:
		return relative(days/7, "week", future)
	case days < 365:
		return relative(days/30, "month", future)
	default:
		return relative(days/365, "year", future)
	}
}

func relative(n int64, unit string, future bool) string {
	if n != 1 {
		unit += "s"
	}

	if future {
		return fmt.Sprintf("in %d %s", n, unit)
	}

	return fmt.Sprintf("%d %s ago", n, unit)
}
