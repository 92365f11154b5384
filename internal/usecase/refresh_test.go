package usecase

import (
	"context"
	"errors"
	"testing"

	"SentiPulse/internal/domain/models"
	"SentiPulse/internal/services/scoring"
	"SentiPulse/pkg/logger"
)

type fakeSource struct {
	snapshot *models.MarketSnapshot
	err      error
}

func (f *fakeSource) FetchSnapshot(ctx context.Context) (*models.MarketSnapshot, error) {
	return f.snapshot, f.err
}

type fakeStore struct {
	appended  []*models.HistoryPoint
	result    *models.HistoryQueryResult
	appendErr error
}

func (f *fakeStore) Append(ctx context.Context, p *models.HistoryPoint) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, p)
	return nil
}

func (f *fakeStore) Query(ctx context.Context, hoursBack int) (*models.HistoryQueryResult, error) {
	if f.result == nil {
		return &models.HistoryQueryResult{}, nil
	}
	return f.result, nil
}

func (f *fakeStore) Health(ctx context.Context) error { return nil }
func (f *fakeStore) Close() error                     { return nil }

type fakeMetrics struct {
	refreshes map[string]int
	errors    map[string]int
	appends   map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		refreshes: map[string]int{},
		errors:    map[string]int{},
		appends:   map[string]int{},
	}
}

func (m *fakeMetrics) RecordRefresh(result string)              { m.refreshes[result]++ }
func (m *fakeMetrics) RecordError(kind string)                  { m.errors[kind]++ }
func (m *fakeMetrics) RecordScore(index, kind string, v float64) {}
func (m *fakeMetrics) RecordHistoryAppend(backend, result string) {
	m.appends[backend+"/"+result]++
}
func (m *fakeMetrics) RecordLatency(op string, seconds float64)     {}
func (m *fakeMetrics) RecordInstrumentCount(exchange string, n int) {}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "disabled", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func futuresQuote(symbol string, ltp, high, low, pc float64, weight float64) models.Quote {
	return models.Quote{
		Symbol:        symbol,
		Exchange:      models.ExchangeNFO,
		LTP:           ltp,
		Open:          low,
		High:          high,
		Low:           low,
		PercentChange: pc,
		Volume:        150000,
		OpenInterest:  1000000,
		OIChange:      20000,
		Weight:        weight,
	}
}

func testSnapshot() *models.MarketSnapshot {
	return &models.MarketSnapshot{
		Data: map[models.Index]*models.IndexData{
			models.IndexNifty: {
				Stocks: map[string]models.Quote{},
				Futures: map[string]models.Quote{
					"RELIANCE28OCT25FUT": futuresQuote("RELIANCE28OCT25FUT", 2950, 3000, 2900, 1.2, 8.0),
					"HDFCBANK28OCT25FUT": futuresQuote("HDFCBANK28OCT25FUT", 1650, 1680, 1620, 0.8, 7.5),
				},
			},
			models.IndexBankNifty: {
				Stocks: map[string]models.Quote{},
				Futures: map[string]models.Quote{
					"HDFCBANK28OCT25FUT":  futuresQuote("HDFCBANK28OCT25FUT", 1650, 1680, 1620, 0.8, 23.5),
					"ICICIBANK28OCT25FUT": futuresQuote("ICICIBANK28OCT25FUT", 1210, 1230, 1190, -0.4, 19.8),
				},
			},
		},
		PCRData: map[string]float64{"NIFTY": 1.05},
	}
}

func TestRefreshPersistsHistoryPoint(t *testing.T) {
	store := &fakeStore{}
	metrics := newFakeMetrics()
	r := NewRefresher(&fakeSource{snapshot: testSnapshot()}, store, nil,
		NewSnapshotCache(), metrics, scoring.DefaultConfig(), "sheets", testLogger(t))

	result, err := r.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !result.Persisted {
		t.Error("expected persisted result")
	}
	if len(store.appended) != 1 {
		t.Fatalf("expected 1 appended point, got %d", len(store.appended))
	}

	p := store.appended[0]
	if p.NiftyISS < 0 || p.NiftyISS > 1 {
		t.Errorf("nifty iss out of range: %v", p.NiftyISS)
	}
	if p.NiftyPA == nil {
		t.Error("expected nifty price action from futures quotes")
	}
	if p.Session == "" {
		t.Error("expected a session label")
	}
	if metrics.refreshes["success"] != 1 {
		t.Errorf("refresh success count = %d", metrics.refreshes["success"])
	}
	if metrics.appends["sheets/success"] != 1 {
		t.Errorf("append metric = %v", metrics.appends)
	}
}

func TestRefreshUpdatesSnapshotCache(t *testing.T) {
	cache := NewSnapshotCache()
	r := NewRefresher(&fakeSource{snapshot: testSnapshot()}, &fakeStore{}, nil,
		cache, newFakeMetrics(), scoring.DefaultConfig(), "sheets", testLogger(t))

	if _, err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !cache.HasData() {
		t.Fatal("cache should hold a snapshot after refresh")
	}
	for _, idx := range models.Indexes() {
		s := cache.Scores(idx)
		if s == nil {
			t.Fatalf("missing scores for %s", idx)
		}
		if s.ISSStatus == "" {
			t.Errorf("%s: empty iss status", idx)
		}
	}
}

func TestRefreshFetchErrorRecordsMetrics(t *testing.T) {
	metrics := newFakeMetrics()
	r := NewRefresher(&fakeSource{err: errors.New("boom")}, &fakeStore{}, nil,
		NewSnapshotCache(), metrics, scoring.DefaultConfig(), "sheets", testLogger(t))

	if _, err := r.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if metrics.refreshes["error"] != 1 {
		t.Errorf("refresh error count = %d", metrics.refreshes["error"])
	}
	if metrics.errors["fetch"] != 1 {
		t.Errorf("fetch error count = %d", metrics.errors["fetch"])
	}
}

func TestRefreshSurvivesAppendFailure(t *testing.T) {
	store := &fakeStore{appendErr: errors.New("quota exceeded")}
	metrics := newFakeMetrics()
	r := NewRefresher(&fakeSource{snapshot: testSnapshot()}, store, nil,
		NewSnapshotCache(), metrics, scoring.DefaultConfig(), "sheets", testLogger(t))

	result, err := r.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh should not fail on append error: %v", err)
	}
	if result.Persisted {
		t.Error("expected persisted=false")
	}
	if metrics.appends["sheets/error"] != 1 {
		t.Errorf("append metric = %v", metrics.appends)
	}
}

func TestRefreshNoFuturesYieldsNilPriceAction(t *testing.T) {
	snapshot := &models.MarketSnapshot{
		Data: map[models.Index]*models.IndexData{
			models.IndexNifty: {
				Stocks:  map[string]models.Quote{},
				Futures: map[string]models.Quote{},
			},
			models.IndexBankNifty: {
				Stocks:  map[string]models.Quote{},
				Futures: map[string]models.Quote{},
			},
		},
	}
	store := &fakeStore{}
	r := NewRefresher(&fakeSource{snapshot: snapshot}, store, nil,
		NewSnapshotCache(), newFakeMetrics(), scoring.DefaultConfig(), "sheets", testLogger(t))

	if _, err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	p := store.appended[0]
	if p.NiftyPA != nil || p.BankPA != nil {
		t.Error("price action should be absent without quotes")
	}
	if p.NiftyPAZone != "Neutral" || p.BankPAZone != "Neutral" {
		t.Errorf("zones = %q/%q, want Neutral", p.NiftyPAZone, p.BankPAZone)
	}
	if p.NiftyISS != 0 {
		t.Errorf("empty universe iss = %v, want 0", p.NiftyISS)
	}
}
