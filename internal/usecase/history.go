package usecase

import (
	"context"
	"math"

	"SentiPulse/internal/domain/models"
	drepo "SentiPulse/internal/domain/repository"
	"SentiPulse/pkg/logger"
	"SentiPulse/pkg/util"
)

const (
	chartHoursBack = 24
	paHoursBack    = 48
	maxChartPoints = 100
)

// ChartPoint is one row of the sentiment history chart.
type ChartPoint struct {
	Timestamp   string   `json:"timestamp"`
	TimeFull    string   `json:"timeFull"`
	NiftyMeter  float64  `json:"niftyMeter"`
	BankMeter   float64  `json:"bankMeter"`
	NiftyStatus string   `json:"niftyStatus"`
	BankStatus  string   `json:"bankStatus"`
	NiftyPA     *float64 `json:"niftyPriceAction"`
	BankPA      *float64 `json:"bankPriceAction"`
	NiftyPAZone string   `json:"niftyPAZone"`
	BankPAZone  string   `json:"bankPAZone"`
}

// ChartData is the full payload of the history chart endpoint.
type ChartData struct {
	History    []ChartPoint           `json:"history"`
	Current    map[string]interface{} `json:"current"`
	DataSource string                 `json:"dataSource"`
	DataPoints int                    `json:"dataPoints"`
	Skipped    int                    `json:"skippedPoints"`
}

// PriceActionPoint is one row of the price action history chart.
type PriceActionPoint struct {
	Timestamp   string   `json:"timestamp"`
	TimeFull    string   `json:"timeFull"`
	NiftyPA     *float64 `json:"niftyPriceAction"`
	BankPA      *float64 `json:"bankPriceAction"`
	NiftyPAZone string   `json:"niftyPAZone"`
	BankPAZone  string   `json:"bankPAZone"`
}

// PriceActionHistory is the payload of the price action history endpoint.
type PriceActionHistory struct {
	Points     []PriceActionPoint `json:"priceActionHistory"`
	DataSource string             `json:"dataSource"`
	DataPoints int                `json:"dataPoints"`
	Skipped    int                `json:"skippedPoints"`
}

// HistoryReader serves chart queries over the persisted history.
type HistoryReader struct {
	store drepo.HistoryStore
	cache *SnapshotCache
	log   *logger.Logger
}

func NewHistoryReader(store drepo.HistoryStore, cache *SnapshotCache, log *logger.Logger) *HistoryReader {
	return &HistoryReader{store: store, cache: cache, log: log}
}

// ChartData returns the last day of history plus the live reading from
// the snapshot cache. History is capped to the most recent points,
// oldest first.
func (h *HistoryReader) ChartData(ctx context.Context, hoursBack int) (*ChartData, error) {
	if hoursBack <= 0 {
		hoursBack = chartHoursBack
	}
	result, err := h.store.Query(ctx, hoursBack)
	if err != nil {
		return nil, err
	}

	points := tailPoints(result.Points, maxChartPoints)
	history := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		history = append(history, ChartPoint{
			Timestamp:   p.Timestamp.In(util.IST).Format("15:04"),
			TimeFull:    p.Timestamp.In(util.IST).Format(util.HistoryTimeLayout),
			NiftyMeter:  p.NiftyISS,
			BankMeter:   p.BankISS,
			NiftyStatus: p.NiftyStatus,
			BankStatus:  p.BankStatus,
			NiftyPA:     p.NiftyPA,
			BankPA:      p.BankPA,
			NiftyPAZone: p.NiftyPAZone,
			BankPAZone:  p.BankPAZone,
		})
	}

	source := "history"
	if len(history) == 0 {
		source = "memory"
	}
	return &ChartData{
		History:    history,
		Current:    h.currentReading(),
		DataSource: source,
		DataPoints: len(history),
		Skipped:    result.Skipped,
	}, nil
}

// currentReading builds the live block from the snapshot cache. Before
// the first refresh it reports zero meters with Neutral status.
func (h *HistoryReader) currentReading() map[string]interface{} {
	now := util.NowIST()
	current := map[string]interface{}{
		"timestamp": now.Format("15:04"),
	}
	for _, idx := range models.Indexes() {
		key := idx.String()
		if s := h.cache.Scores(idx); s != nil {
			current[key] = map[string]interface{}{
				"meter":  round3(s.ISS),
				"status": s.ISSStatus,
			}
		} else {
			current[key] = map[string]interface{}{
				"meter":  0.0,
				"status": "Neutral",
			}
		}
	}
	return current
}

// PriceActionHistory returns two days of price action rows. Rows where
// neither index carries a value are skipped. When storage holds nothing
// the current cycle's scores are returned as a single point.
func (h *HistoryReader) PriceActionHistory(ctx context.Context, hoursBack int) (*PriceActionHistory, error) {
	if hoursBack <= 0 {
		hoursBack = paHoursBack
	}
	result, err := h.store.Query(ctx, hoursBack)
	if err != nil {
		return nil, err
	}

	points := make([]PriceActionPoint, 0, len(result.Points))
	skipped := result.Skipped
	for _, p := range result.Points {
		if p.NiftyPA == nil && p.BankPA == nil {
			skipped++
			continue
		}
		points = append(points, PriceActionPoint{
			Timestamp:   p.Timestamp.In(util.IST).Format("15:04"),
			TimeFull:    p.Timestamp.In(util.IST).Format(util.HistoryTimeLayout),
			NiftyPA:     p.NiftyPA,
			BankPA:      p.BankPA,
			NiftyPAZone: p.NiftyPAZone,
			BankPAZone:  p.BankPAZone,
		})
	}

	if len(points) > 0 {
		return &PriceActionHistory{
			Points:     points,
			DataSource: "history",
			DataPoints: len(points),
			Skipped:    skipped,
		}, nil
	}
	return h.currentPriceAction(), nil
}

// currentPriceAction is the storage-empty fallback: a single point built
// from the cached scores of the last refresh.
func (h *HistoryReader) currentPriceAction() *PriceActionHistory {
	now := util.NowIST()
	point := PriceActionPoint{
		Timestamp:   now.Format("15:04"),
		TimeFull:    now.Format(util.HistoryTimeLayout),
		NiftyPAZone: "Neutral",
		BankPAZone:  "Neutral",
	}
	if s := h.cache.Scores(models.IndexNifty); s != nil {
		point.NiftyPA = s.PriceAction
		if s.PAZone != "" {
			point.NiftyPAZone = s.PAZone
		}
	}
	if s := h.cache.Scores(models.IndexBankNifty); s != nil {
		point.BankPA = s.PriceAction
		if s.PAZone != "" {
			point.BankPAZone = s.PAZone
		}
	}
	return &PriceActionHistory{
		Points:     []PriceActionPoint{point},
		DataSource: "current_only",
		DataPoints: 1,
	}
}

func tailPoints(points []models.HistoryPoint, n int) []models.HistoryPoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
