package usecase

import (
	"context"
	"math"

	"SentiPulse/internal/domain/models"
	drepo "SentiPulse/internal/domain/repository"
	"SentiPulse/internal/services/composite"
	"SentiPulse/pkg/logger"
	"SentiPulse/pkg/util"
)

const (
	compositeHoursBack = 6
	compositeChartTail = 24
)

// CompositeChartPoint is one row of the composite meter chart.
type CompositeChartPoint struct {
	Timestamp      string  `json:"timestamp"`
	TimeFull       string  `json:"timeFull"`
	NiftyComposite float64 `json:"niftyComposite"`
	BankComposite  float64 `json:"bankComposite"`
	NiftyISS       float64 `json:"niftyISS"`
	NiftyPA        float64 `json:"niftyPA"`
	BankISS        float64 `json:"bankISS"`
	BankPA         float64 `json:"bankPA"`
}

// CompositeMeterData is the payload of the composite meter endpoint.
type CompositeMeterData struct {
	Results    map[models.Index]*models.CompositeResult `json:"results"`
	ChartData  []CompositeChartPoint                    `json:"chartData"`
	DataPoints int                                      `json:"dataPoints"`
	LastUpdate string                                   `json:"lastUpdate"`
}

// CompositeMeter computes the smoothed composite meter from persisted
// history. Series shorter than a full normalization window go through
// the reduced short-history pipeline.
type CompositeMeter struct {
	store      drepo.HistoryStore
	engine     *composite.Engine
	fullWindow int
	log        *logger.Logger
}

func NewCompositeMeter(store drepo.HistoryStore, engine *composite.Engine, fullWindow int, log *logger.Logger) *CompositeMeter {
	if fullWindow <= 0 {
		fullWindow = 24
	}
	return &CompositeMeter{store: store, engine: engine, fullWindow: fullWindow, log: log}
}

// Compute queries recent history and runs the meter engine per index.
// It returns false when no index has enough complete points; callers
// surface that as "insufficient data".
func (c *CompositeMeter) Compute(ctx context.Context, hoursBack int) (*CompositeMeterData, bool, error) {
	if hoursBack <= 0 {
		hoursBack = compositeHoursBack
	}
	result, err := c.store.Query(ctx, hoursBack)
	if err != nil {
		return nil, false, err
	}

	// Only rows where both indexes carry price action feed the meter.
	complete := make([]models.HistoryPoint, 0, len(result.Points))
	for _, p := range result.Points {
		if p.NiftyPA != nil && p.BankPA != nil {
			complete = append(complete, p)
		}
	}
	if len(complete) == 0 {
		return nil, false, nil
	}

	results := make(map[models.Index]*models.CompositeResult)
	for _, idx := range models.Indexes() {
		series := make([]composite.Point, len(complete))
		for i, p := range complete {
			series[i] = composite.Point{ISS: p.ISSFor(idx), PA: *p.PAFor(idx)}
		}
		var r *models.CompositeResult
		var ok bool
		if len(series) >= c.fullWindow {
			r, ok = c.engine.Compute(idx, series)
		} else {
			r, ok = c.engine.ComputeShortHistory(idx, series)
		}
		if !ok {
			return nil, false, nil
		}
		results[idx] = r
	}

	chart := compositeChart(complete)
	last := complete[len(complete)-1]
	return &CompositeMeterData{
		Results:    results,
		ChartData:  chart,
		DataPoints: len(chart),
		LastUpdate: last.Timestamp.In(util.IST).Format(util.HistoryTimeLayout),
	}, true, nil
}

// compositeChart builds the trailing chart rows, restricted to market
// hours.
func compositeChart(points []models.HistoryPoint) []CompositeChartPoint {
	if len(points) > compositeChartTail {
		points = points[len(points)-compositeChartTail:]
	}
	chart := make([]CompositeChartPoint, 0, len(points))
	for _, p := range points {
		ts := p.Timestamp.In(util.IST)
		if !util.InMarketHours(ts) {
			continue
		}
		niftyPA := *p.NiftyPA
		bankPA := *p.BankPA
		chart = append(chart, CompositeChartPoint{
			Timestamp:      ts.Format("15:04"),
			TimeFull:       ts.Format(util.HistoryTimeLayout),
			NiftyComposite: round4((p.NiftyISS + niftyPA) / 2),
			BankComposite:  round4((p.BankISS + bankPA) / 2),
			NiftyISS:       round4(p.NiftyISS),
			NiftyPA:        round4(niftyPA),
			BankISS:        round4(p.BankISS),
			BankPA:         round4(bankPA),
		})
	}
	return chart
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
