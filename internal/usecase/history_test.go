package usecase

import (
	"context"
	"testing"

	"SentiPulse/internal/domain/models"
)

func TestChartDataShapesHistory(t *testing.T) {
	store := &fakeStore{result: &models.HistoryQueryResult{
		Points:  historySeries(30, marketMorning()),
		Skipped: 2,
	}}
	reader := NewHistoryReader(store, NewSnapshotCache(), testLogger(t))

	data, err := reader.ChartData(context.Background(), 0)
	if err != nil {
		t.Fatalf("ChartData: %v", err)
	}
	if data.DataPoints != 30 {
		t.Errorf("data points = %d, want 30", data.DataPoints)
	}
	if data.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", data.Skipped)
	}
	if data.DataSource != "history" {
		t.Errorf("data source = %q", data.DataSource)
	}
	first := data.History[0]
	if first.Timestamp == "" || first.TimeFull == "" {
		t.Error("chart points need both timestamp formats")
	}
}

func TestChartDataCapsPoints(t *testing.T) {
	store := &fakeStore{result: &models.HistoryQueryResult{Points: historySeries(150, marketMorning())}}
	reader := NewHistoryReader(store, NewSnapshotCache(), testLogger(t))

	data, err := reader.ChartData(context.Background(), 0)
	if err != nil {
		t.Fatalf("ChartData: %v", err)
	}
	if data.DataPoints != maxChartPoints {
		t.Errorf("data points = %d, want %d", data.DataPoints, maxChartPoints)
	}
	// The cap keeps the newest rows.
	last := data.History[len(data.History)-1]
	if last.NiftyMeter <= data.History[0].NiftyMeter {
		t.Error("capped history should keep the trailing rows in ascending order")
	}
}

func TestChartDataEmptyStoreFallsBackToMemory(t *testing.T) {
	reader := NewHistoryReader(&fakeStore{}, NewSnapshotCache(), testLogger(t))

	data, err := reader.ChartData(context.Background(), 0)
	if err != nil {
		t.Fatalf("ChartData: %v", err)
	}
	if data.DataSource != "memory" {
		t.Errorf("data source = %q, want memory", data.DataSource)
	}
	if len(data.History) != 0 {
		t.Errorf("expected no history rows, got %d", len(data.History))
	}
	if data.Current["timestamp"] == "" {
		t.Error("current block must always carry a timestamp")
	}
}

func TestPriceActionHistorySkipsRowsWithoutPA(t *testing.T) {
	points := historySeries(10, marketMorning())
	points[3].NiftyPA = nil
	points[3].BankPA = nil
	points[7].NiftyPA = nil
	points[7].BankPA = nil
	store := &fakeStore{result: &models.HistoryQueryResult{Points: points}}
	reader := NewHistoryReader(store, NewSnapshotCache(), testLogger(t))

	data, err := reader.PriceActionHistory(context.Background(), 0)
	if err != nil {
		t.Fatalf("PriceActionHistory: %v", err)
	}
	if data.DataPoints != 8 {
		t.Errorf("data points = %d, want 8", data.DataPoints)
	}
	if data.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", data.Skipped)
	}
	if data.DataSource != "history" {
		t.Errorf("data source = %q", data.DataSource)
	}
}

func TestPriceActionHistoryFallsBackToCurrent(t *testing.T) {
	cache := NewSnapshotCache()
	pa := 0.62
	cache.Set(&models.MarketSnapshot{}, map[models.Index]*models.IndexScores{
		models.IndexNifty:     {Index: models.IndexNifty, PriceAction: &pa, PAZone: "Bullish"},
		models.IndexBankNifty: {Index: models.IndexBankNifty},
	})
	reader := NewHistoryReader(&fakeStore{}, cache, testLogger(t))

	data, err := reader.PriceActionHistory(context.Background(), 0)
	if err != nil {
		t.Fatalf("PriceActionHistory: %v", err)
	}
	if data.DataSource != "current_only" {
		t.Errorf("data source = %q, want current_only", data.DataSource)
	}
	if len(data.Points) != 1 {
		t.Fatalf("expected 1 fallback point, got %d", len(data.Points))
	}
	p := data.Points[0]
	if p.NiftyPA == nil || *p.NiftyPA != 0.62 {
		t.Errorf("nifty pa = %v", p.NiftyPA)
	}
	if p.NiftyPAZone != "Bullish" {
		t.Errorf("nifty zone = %q", p.NiftyPAZone)
	}
	if p.BankPA != nil {
		t.Errorf("bank pa should be nil, got %v", *p.BankPA)
	}
	if p.BankPAZone != "Neutral" {
		t.Errorf("bank zone = %q, want Neutral", p.BankPAZone)
	}
}
