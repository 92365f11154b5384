package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SentiPulse/internal/domain/models"
	"SentiPulse/internal/usecase"
	"SentiPulse/pkg/logger"
	"SentiPulse/pkg/util"

	"github.com/labstack/echo/v4"
)

type stubStore struct {
	result *models.HistoryQueryResult
}

func (s *stubStore) Append(ctx context.Context, p *models.HistoryPoint) error { return nil }

func (s *stubStore) Query(ctx context.Context, hoursBack int) (*models.HistoryQueryResult, error) {
	if s.result != nil {
		return s.result, nil
	}
	return &models.HistoryQueryResult{}, nil
}

func (s *stubStore) Health(ctx context.Context) error { return nil }

func (s *stubStore) Close() error { return nil }

func handlerLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "disabled", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func testHandler(t *testing.T, store *stubStore, cache *usecase.SnapshotCache) *MeterHandler {
	t.Helper()
	log := handlerLogger(t)
	if cache == nil {
		cache = usecase.NewSnapshotCache()
	}
	reader := usecase.NewHistoryReader(store, cache, log)
	return NewMeterHandler(log, nil, reader, nil, cache, store, nil)
}

// doRequest serves one request and decodes the response envelope. The
// transport status is always 200; the envelope status carries the result.
func doRequest(t *testing.T, h *MeterHandler, target string) (int, json.RawMessage) {
	t.Helper()
	e := echo.New()
	h.RegisterRoutes(e)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var envelope struct {
		Status int             `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v, body %s", err, rec.Body.String())
	}
	return envelope.Status, envelope.Data
}

func TestPingAlwaysHealthy(t *testing.T) {
	h := testHandler(t, &stubStore{}, nil)
	status, _ := doRequest(t, h, "/ping")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
}

func TestDataWithoutSnapshotIsClientError(t *testing.T) {
	h := testHandler(t, &stubStore{}, nil)
	status, _ := doRequest(t, h, "/api/data/nifty50")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestDataRejectsUnknownType(t *testing.T) {
	cache := usecase.NewSnapshotCache()
	cache.Set(&models.MarketSnapshot{}, map[models.Index]*models.IndexScores{})
	h := testHandler(t, &stubStore{}, cache)
	status, _ := doRequest(t, h, "/api/data/bogus")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestChartDataRejectsOutOfRangeHours(t *testing.T) {
	h := testHandler(t, &stubStore{}, nil)
	status, _ := doRequest(t, h, "/api/chart-data?hours=9999")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestChartDataReturnsHistory(t *testing.T) {
	pa := 0.55
	store := &stubStore{result: &models.HistoryQueryResult{
		Points: []models.HistoryPoint{{
			Timestamp:   util.NowIST().Add(-10 * time.Minute),
			Session:     "Morning Session",
			NiftyISS:    0.61,
			BankISS:     0.58,
			NiftyStatus: "Mild Bullish",
			BankStatus:  "Neutral",
			NiftyPA:     &pa,
			BankPA:      &pa,
			NiftyPAZone: "Bullish",
			BankPAZone:  "Bullish",
		}},
	}}
	h := testHandler(t, store, nil)
	status, data := doRequest(t, h, "/api/chart-data")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var chart usecase.ChartData
	if err := json.Unmarshal(data, &chart); err != nil {
		t.Fatalf("decode chart data: %v", err)
	}
	if chart.DataPoints != 1 {
		t.Errorf("dataPoints = %d, want 1", chart.DataPoints)
	}
	if chart.DataSource != "history" {
		t.Errorf("dataSource = %q, want history", chart.DataSource)
	}
}

func TestPriceActionWithoutReadingsIsClientError(t *testing.T) {
	cache := usecase.NewSnapshotCache()
	cache.Set(&models.MarketSnapshot{}, map[models.Index]*models.IndexScores{
		models.IndexNifty:     {ISS: 0.5, ISSStatus: "Neutral"},
		models.IndexBankNifty: {ISS: 0.5, ISSStatus: "Neutral"},
	})
	h := testHandler(t, &stubStore{}, cache)
	status, _ := doRequest(t, h, "/api/price-action")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}
