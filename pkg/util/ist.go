package util

import "time"

// IST is the fixed Indian Standard Time offset (UTC+05:30). NSE publishes all
// timestamps in IST and the history store keys rows by IST wall-clock time.
var IST = time.FixedZone("IST", 5*3600+30*60)

// NowIST returns the current time in IST.
func NowIST() time.Time {
	return time.Now().In(IST)
}

// HistoryTimeLayout is the second-precision layout used for persisted rows.
const HistoryTimeLayout = "2006-01-02 15:04:05"

// PreviousTradingDay returns the most recent weekday strictly before the
// given date, looking back at most three days. If the three-day window is all
// weekend (cannot happen on a real calendar, kept as a guard) it walks back
// from a week earlier until it lands on a weekday.
func PreviousTradingDay(today time.Time) time.Time {
	// Midnight of the IST calendar date. Truncate would round to UTC
	// midnight and land on the wrong date between 00:00 and 05:30 IST.
	ist := today.In(IST)
	day := time.Date(ist.Year(), ist.Month(), ist.Day(), 0, 0, 0, 0, IST)
	for back := 1; back <= 3; back++ {
		candidate := day.AddDate(0, 0, -back)
		if wd := candidate.Weekday(); wd != time.Saturday && wd != time.Sunday {
			return candidate
		}
	}
	fallback := day.AddDate(0, 0, -7)
	for wd := fallback.Weekday(); wd == time.Saturday || wd == time.Sunday; wd = fallback.Weekday() {
		fallback = fallback.AddDate(0, 0, -1)
	}
	return fallback
}

// SessionLabel classifies an IST timestamp into the market session buckets
// used in persisted history rows.
func SessionLabel(t time.Time) string {
	switch hour := t.In(IST).Hour(); {
	case hour >= 9 && hour < 12:
		return "Morning"
	case hour >= 12 && hour < 15:
		return "Afternoon"
	case hour >= 15 && hour < 16:
		return "Closing"
	default:
		return "After Hours"
	}
}

// InMarketHours reports whether an IST timestamp falls inside the NSE cash
// session, 09:15 to 15:30 inclusive.
func InMarketHours(t time.Time) bool {
	t = t.In(IST)
	minutes := t.Hour()*60 + t.Minute()
	return minutes >= 9*60+15 && minutes <= 15*60+30
}
