package usecase

import (
	"context"
	"testing"
	"time"

	"SentiPulse/internal/domain/models"
	"SentiPulse/internal/services/composite"
	"SentiPulse/pkg/util"
)

func historySeries(n int, start time.Time) []models.HistoryPoint {
	points := make([]models.HistoryPoint, n)
	for i := 0; i < n; i++ {
		niftyPA := 0.4 + 0.015*float64(i)
		bankPA := 0.45 + 0.01*float64(i)
		points[i] = models.HistoryPoint{
			Timestamp:   start.Add(time.Duration(i) * 5 * time.Minute),
			Session:     "Morning",
			NiftyISS:    0.3 + 0.02*float64(i),
			BankISS:     0.35 + 0.015*float64(i),
			NiftyStatus: "Neutral",
			BankStatus:  "Neutral",
			NiftyPA:     &niftyPA,
			BankPA:      &bankPA,
			NiftyPAZone: "Neutral",
			BankPAZone:  "Neutral",
		}
	}
	return points
}

func marketMorning() time.Time {
	now := util.NowIST()
	return time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, util.IST)
}

func TestCompositeMeterComputesBothIndexes(t *testing.T) {
	store := &fakeStore{result: &models.HistoryQueryResult{Points: historySeries(24, marketMorning())}}
	meter := NewCompositeMeter(store, composite.NewEngine(composite.DefaultConfig()), 24, testLogger(t))

	data, ok, err := meter.Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !ok {
		t.Fatal("expected a result for 24 complete points")
	}
	for _, idx := range models.Indexes() {
		r := data.Results[idx]
		if r == nil {
			t.Fatalf("missing result for %s", idx)
		}
		if r.Algorithm != "statistical" {
			t.Errorf("%s: algorithm = %q, want statistical", idx, r.Algorithm)
		}
		if r.CurrentValue < 0 || r.CurrentValue > 1 {
			t.Errorf("%s: current value out of range: %v", idx, r.CurrentValue)
		}
	}
	if data.DataPoints != len(data.ChartData) {
		t.Errorf("data points = %d, chart rows = %d", data.DataPoints, len(data.ChartData))
	}
	if len(data.ChartData) == 0 {
		t.Error("expected chart rows inside market hours")
	}
}

func TestCompositeMeterShortHistoryUsesReducedPipeline(t *testing.T) {
	store := &fakeStore{result: &models.HistoryQueryResult{Points: historySeries(15, marketMorning())}}
	meter := NewCompositeMeter(store, composite.NewEngine(composite.DefaultConfig()), 24, testLogger(t))

	data, ok, err := meter.Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !ok {
		t.Fatal("expected a result for 15 points")
	}
	for _, idx := range models.Indexes() {
		if data.Results[idx].Algorithm != "simple" {
			t.Errorf("%s: algorithm = %q, want simple", idx, data.Results[idx].Algorithm)
		}
	}
}

func TestCompositeMeterInsufficientData(t *testing.T) {
	store := &fakeStore{result: &models.HistoryQueryResult{Points: historySeries(5, marketMorning())}}
	meter := NewCompositeMeter(store, composite.NewEngine(composite.DefaultConfig()), 24, testLogger(t))

	_, ok, err := meter.Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if ok {
		t.Error("5 points should not produce a reading")
	}
}

func TestCompositeMeterSkipsIncompleteRows(t *testing.T) {
	points := historySeries(24, marketMorning())
	for i := 0; i < len(points); i += 2 {
		points[i].NiftyPA = nil
	}
	store := &fakeStore{result: &models.HistoryQueryResult{Points: points}}
	meter := NewCompositeMeter(store, composite.NewEngine(composite.DefaultConfig()), 24, testLogger(t))

	data, ok, err := meter.Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !ok {
		t.Fatal("12 complete points should still produce a reading")
	}
	for _, idx := range models.Indexes() {
		if got := data.Results[idx].Points; got != 12 {
			t.Errorf("%s: points = %d, want 12", idx, got)
		}
	}
}
