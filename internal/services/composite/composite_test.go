package composite

import (
	"math"
	"testing"

	"SentiPulse/internal/domain/models"
)

func risingSeries(n int) []Point {
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{ISS: 0.3 + 0.02*float64(i), PA: 0.4 + 0.015*float64(i)}
	}
	return points
}

func fallingSeries(n int) []Point {
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{ISS: 0.8 - 0.02*float64(i), PA: 0.7 - 0.015*float64(i)}
	}
	return points
}

func TestComputeInsufficientData(t *testing.T) {
	e := NewEngine(DefaultConfig())
	if _, ok := e.Compute(models.IndexNifty, risingSeries(11)); ok {
		t.Error("expected no result below the minimum point count")
	}
	if _, ok := e.ComputeShortHistory(models.IndexNifty, risingSeries(11)); ok {
		t.Error("expected no short-history result below the minimum point count")
	}
}

func TestComputeRisingSeries(t *testing.T) {
	e := NewEngine(DefaultConfig())
	res, ok := e.Compute(models.IndexNifty, risingSeries(24))
	if !ok {
		t.Fatal("expected a result")
	}
	if res.CurrentValue < 0.9 {
		t.Errorf("rising series current = %v, want near 1", res.CurrentValue)
	}
	if res.Momentum < 0 {
		t.Errorf("rising series momentum = %v, want >= 0", res.Momentum)
	}
	if res.Signal.Action != models.SignalHoldLong {
		t.Errorf("signal = %v, want HOLD_LONG (saturated above buy threshold)", res.Signal.Action)
	}
	if res.Algorithm != "statistical" {
		t.Errorf("algorithm = %q", res.Algorithm)
	}
	if res.Points != 24 {
		t.Errorf("points = %d, want 24", res.Points)
	}
}

func TestComputeFallingSeries(t *testing.T) {
	e := NewEngine(DefaultConfig())
	res, ok := e.Compute(models.IndexBankNifty, fallingSeries(24))
	if !ok {
		t.Fatal("expected a result")
	}
	if res.CurrentValue > 0.1 {
		t.Errorf("falling series current = %v, want near 0", res.CurrentValue)
	}
	if res.Signal.Action != models.SignalHoldShort {
		t.Errorf("signal = %v, want HOLD_SHORT", res.Signal.Action)
	}
}

func TestComputeFlatSeries(t *testing.T) {
	// A constant series has zero range; the epsilon keeps the division
	// defined and the normalized value collapses to 0.
	points := make([]Point, 24)
	for i := range points {
		points[i] = Point{ISS: 0.5, PA: 0.5}
	}
	e := NewEngine(DefaultConfig())
	res, ok := e.Compute(models.IndexNifty, points)
	if !ok {
		t.Fatal("expected a result")
	}
	if res.CurrentValue != 0 {
		t.Errorf("flat series current = %v, want 0", res.CurrentValue)
	}
	if res.Momentum != 0 {
		t.Errorf("flat series momentum = %v, want 0", res.Momentum)
	}
}

func TestVariantsShareShape(t *testing.T) {
	e := NewEngine(DefaultConfig())
	series := risingSeries(24)

	stat, ok := e.Compute(models.IndexNifty, series)
	if !ok {
		t.Fatal("expected statistical result")
	}
	simple, ok := e.ComputeShortHistory(models.IndexNifty, series)
	if !ok {
		t.Fatal("expected simple result")
	}

	for name, v := range map[string]float64{
		"stat current":   stat.CurrentValue,
		"simple current": simple.CurrentValue,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s = %v, out of [0,1]", name, v)
		}
	}
	if stat.AdaptiveWeight != simple.AdaptiveWeight {
		t.Errorf("adaptive weight differs: %v vs %v (both derive from the last ISS)",
			stat.AdaptiveWeight, simple.AdaptiveWeight)
	}
	if stat.RawISS != simple.RawISS || stat.RawPA != simple.RawPA {
		t.Error("raw components must come from the last point in both variants")
	}
	if simple.Algorithm != "simple" {
		t.Errorf("algorithm = %q", simple.Algorithm)
	}
	// Both see the same rising input and must agree on direction.
	if (stat.CurrentValue > 0.5) != (simple.CurrentValue > 0.5) {
		t.Errorf("variants disagree on direction: %v vs %v", stat.CurrentValue, simple.CurrentValue)
	}
	// On a clean trend they should produce near-identical readings, not
	// just the same direction.
	if diff := math.Abs(stat.CurrentValue - simple.CurrentValue); diff > 0.02 {
		t.Errorf("variants diverge: statistical %v vs simple %v", stat.CurrentValue, simple.CurrentValue)
	}
}

func TestComputeRampFiresEntryOnce(t *testing.T) {
	// Sixteen observations on a flat floor, then ISS ramps from 0.3 to
	// 0.8 with price action pinned at 0.5. Re-evaluating after every new
	// point must produce exactly one buy entry at the crossing; every
	// later reading holds the long bias rather than entering again.
	series := make([]Point, 0, 28)
	for i := 0; i < 16; i++ {
		series = append(series, Point{ISS: 0.3, PA: 0.5})
	}
	for i := 1; i <= 12; i++ {
		series = append(series, Point{ISS: 0.3 + 0.5*float64(i)/12, PA: 0.5})
	}

	e := NewEngine(DefaultConfig())
	var actions []models.SignalAction
	for n := DefaultConfig().MinPoints; n <= len(series); n++ {
		res, ok := e.Compute(models.IndexNifty, series[:n])
		if !ok {
			t.Fatalf("no result at %d points", n)
		}
		actions = append(actions, res.Signal.Action)
	}

	entries := 0
	entryAt := -1
	for i, a := range actions {
		if a == models.SignalBuy || a == models.SignalStrongBuy {
			entries++
			entryAt = i
		}
	}
	if entries != 1 {
		t.Fatalf("buy entries = %d, want exactly one (actions: %v)", entries, actions)
	}
	for i, a := range actions[entryAt+1:] {
		if a != models.SignalHoldLong {
			t.Errorf("action after entry = %v at step %d, want HOLD_LONG", a, entryAt+1+i)
		}
	}
}

func TestSignalHysteresis(t *testing.T) {
	e := NewEngine(DefaultConfig())
	cases := []struct {
		name                    string
		current, prev, momentum float64
		want                    models.SignalAction
	}{
		{"fresh cross with momentum", 0.70, 0.50, 0.10, models.SignalStrongBuy},
		{"fresh cross without momentum", 0.70, 0.50, 0.01, models.SignalBuy},
		{"already above, no crossing", 0.72, 0.70, 0.01, models.SignalHoldLong},
		{"drift down inside bull zone", 0.68, 0.72, -0.01, models.SignalHoldLong},
		{"fresh breakdown with momentum", 0.30, 0.40, -0.10, models.SignalStrongSell},
		{"fresh breakdown without momentum", 0.30, 0.40, -0.01, models.SignalSell},
		{"already below, no crossing", 0.30, 0.32, -0.01, models.SignalHoldShort},
		{"mid range", 0.50, 0.52, 0.00, models.SignalNeutral},
		{"exactly at buy without crossing", 0.65, 0.66, 0.10, models.SignalNeutral},
	}
	for _, tc := range cases {
		got := e.Signal(tc.current, tc.prev, tc.momentum)
		if got.Action != tc.want {
			t.Errorf("%s: action = %v, want %v", tc.name, got.Action, tc.want)
		}
	}
}

func TestSignalConfidence(t *testing.T) {
	e := NewEngine(DefaultConfig())
	if got := e.Signal(0.70, 0.50, 0.10); got.Confidence != "High" {
		t.Errorf("STRONG_BUY confidence = %q, want High", got.Confidence)
	}
	if got := e.Signal(0.50, 0.52, 0); got.Confidence != "Low" {
		t.Errorf("NEUTRAL confidence = %q, want Low", got.Confidence)
	}
}

func TestInterpretBands(t *testing.T) {
	cases := []struct {
		value, momentum float64
		wantZone        string
	}{
		{0.80, 0.10, "Strong Bull (Rising)"},
		{0.80, 0.00, "Strong Bull (Flat)"},
		{0.70, 0.01, "Bullish"},
		{0.70, -0.01, "Bullish (Weakening)"},
		{0.75, 0.01, "Bullish"},
		{0.50, 0.00, "Neutral/Choppy"},
		{0.30, -0.01, "Bearish"},
		{0.30, 0.01, "Bearish (Stabilizing)"},
		{0.10, -0.10, "Strong Bear (Falling)"},
		{0.10, 0.00, "Strong Bear (Flat)"},
	}
	for _, tc := range cases {
		got := Interpret(tc.value, tc.momentum)
		if got.Zone != tc.wantZone {
			t.Errorf("Interpret(%v, %v) zone = %q, want %q", tc.value, tc.momentum, got.Zone, tc.wantZone)
		}
		if got.BTST == "" || got.Intraday == "" || got.Description == "" {
			t.Errorf("Interpret(%v, %v) has empty fields", tc.value, tc.momentum)
		}
	}
}

func TestAdaptiveWeightClamp(t *testing.T) {
	cases := []struct{ iss, want float64 }{
		{0.0, 0.2},
		{0.5, 0.2},
		{0.65, 0.3},
		{0.8, 0.6},
		{0.9, 0.8},
		{1.0, 0.8},
	}
	for _, tc := range cases {
		if got := adaptiveWeight(tc.iss); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("adaptiveWeight(%v) = %v, want %v", tc.iss, got, tc.want)
		}
	}
}

func TestRollingMean(t *testing.T) {
	got := rollingMean([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{1, 1.5, 2, 3, 4}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("rollingMean[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEwmaSeed(t *testing.T) {
	// span 3 means alpha 0.5 seeded at the first value.
	got := ewma([]float64{1, 3, 5}, 3)
	want := []float64{1, 2, 3.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("ewma[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
