package util

import (
	"testing"
	"time"
)

func TestPreviousTradingDayFromMonday(t *testing.T) {
	// Monday 2025-10-27 -> previous trading day is Friday 2025-10-24.
	monday := time.Date(2025, 10, 27, 10, 0, 0, 0, IST)
	got := PreviousTradingDay(monday)
	if got.Weekday() != time.Friday {
		t.Fatalf("expected Friday, got %v", got.Weekday())
	}
	if got.Day() != 24 {
		t.Fatalf("expected day 24, got %d", got.Day())
	}
}

func TestPreviousTradingDayMidweek(t *testing.T) {
	wednesday := time.Date(2025, 10, 29, 10, 0, 0, 0, IST)
	got := PreviousTradingDay(wednesday)
	if got.Weekday() != time.Tuesday {
		t.Fatalf("expected Tuesday, got %v", got.Weekday())
	}
}

func TestPreviousTradingDayEarlyMorning(t *testing.T) {
	// Between 00:00 and 05:30 IST the UTC date is still the previous
	// calendar day; the lookback must start from the IST date. Tuesday
	// 2025-10-28 at 01:00 IST looks back to Monday the 27th, not Friday.
	tuesday := time.Date(2025, 10, 28, 1, 0, 0, 0, IST)
	got := PreviousTradingDay(tuesday)
	if got.Weekday() != time.Monday || got.Day() != 27 {
		t.Fatalf("expected Monday the 27th, got %v the %d", got.Weekday(), got.Day())
	}
}

func TestSessionLabel(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{9, "Morning"},
		{11, "Morning"},
		{12, "Afternoon"},
		{14, "Afternoon"},
		{15, "Closing"},
		{16, "After Hours"},
		{8, "After Hours"},
	}
	for _, c := range cases {
		ts := time.Date(2025, 10, 27, c.hour, 30, 0, 0, IST)
		if got := SessionLabel(ts); got != c.want {
			t.Fatalf("hour %d: expected %q, got %q", c.hour, c.want, got)
		}
	}
}

func TestInMarketHours(t *testing.T) {
	open := time.Date(2025, 10, 27, 9, 15, 0, 0, IST)
	close := time.Date(2025, 10, 27, 15, 30, 0, 0, IST)
	before := time.Date(2025, 10, 27, 9, 14, 0, 0, IST)
	after := time.Date(2025, 10, 27, 15, 31, 0, 0, IST)

	if !InMarketHours(open) || !InMarketHours(close) {
		t.Fatalf("session boundaries should be inside market hours")
	}
	if InMarketHours(before) || InMarketHours(after) {
		t.Fatalf("times outside 09:15-15:30 should be rejected")
	}
}

func TestParseFloat(t *testing.T) {
	if v, ok := ParseFloat("0.731"); !ok || v != 0.731 {
		t.Fatalf("expected 0.731, got %v ok=%v", v, ok)
	}
	if _, ok := ParseFloat(""); ok {
		t.Fatalf("empty string should not parse")
	}
	if _, ok := ParseFloat("n/a"); ok {
		t.Fatalf("non-numeric should not parse")
	}
}
