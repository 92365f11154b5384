package usecase

import (
	"context"
	"fmt"
	"time"

	"SentiPulse/internal/domain/models"
	drepo "SentiPulse/internal/domain/repository"
	"SentiPulse/internal/refdata"
	"SentiPulse/internal/services/scoring"
	"SentiPulse/pkg/logger"
	"SentiPulse/pkg/util"
)

// RefreshResult summarizes one completed refresh cycle.
type RefreshResult struct {
	Timestamp time.Time                            `json:"timestamp"`
	Counts    map[string]int                       `json:"dataCounts"`
	Scores    map[models.Index]*models.IndexScores `json:"scores"`
	Persisted bool                                 `json:"persisted"`
}

// Refresher runs the full refresh cycle: fetch quotes, score both
// indexes, update the serving cache, and persist one history point.
type Refresher struct {
	source  drepo.QuoteSource
	store   drepo.HistoryStore
	pub     drepo.Publisher
	cache   *SnapshotCache
	metrics drepo.Metrics
	iss     scoring.Config
	backend string
	log     *logger.Logger
}

// NewRefresher creates a Refresher. pub may be nil when streaming is
// disabled; backend labels history append metrics.
func NewRefresher(source drepo.QuoteSource, store drepo.HistoryStore, pub drepo.Publisher,
	cache *SnapshotCache, metrics drepo.Metrics, iss scoring.Config, backend string,
	log *logger.Logger) *Refresher {
	return &Refresher{
		source:  source,
		store:   store,
		pub:     pub,
		cache:   cache,
		metrics: metrics,
		iss:     iss,
		backend: backend,
		log:     log,
	}
}

func (r *Refresher) Refresh(ctx context.Context) (*RefreshResult, error) {
	started := time.Now()
	snapshot, err := r.source.FetchSnapshot(ctx)
	if err != nil {
		r.metrics.RecordRefresh("error")
		r.metrics.RecordError("fetch")
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	now := util.NowIST()
	session := util.SessionLabel(now)
	scores := make(map[models.Index]*models.IndexScores, len(models.Indexes()))
	for _, idx := range models.Indexes() {
		scores[idx] = r.scoreIndex(idx, snapshot, now, session)
	}
	r.cache.Set(snapshot, scores)

	point := historyPoint(now, session, scores)
	persisted := true
	if err := r.store.Append(ctx, point); err != nil {
		persisted = false
		r.metrics.RecordHistoryAppend(r.backend, "error")
		r.metrics.RecordError("history_append")
		r.log.Error("history append failed", logger.Error(err))
	} else {
		r.metrics.RecordHistoryAppend(r.backend, "success")
	}

	if r.pub != nil {
		if err := r.pub.Publish(ctx, point); err != nil {
			r.metrics.RecordError("publish")
			r.log.Warn("history publish failed", logger.Error(err))
		}
	}

	r.metrics.RecordRefresh("success")
	r.metrics.RecordLatency("refresh", time.Since(started).Seconds())
	r.log.Info("refresh cycle completed",
		logger.Float64("nifty_iss", point.NiftyISS),
		logger.Float64("bank_iss", point.BankISS),
		logger.String("session", session),
		logger.Duration("elapsed", time.Since(started)))

	return &RefreshResult{
		Timestamp: now,
		Counts:    snapshotCounts(snapshot),
		Scores:    scores,
		Persisted: persisted,
	}, nil
}

// scoreIndex computes ISS from the futures quotes and price action from
// futures with a stocks fallback when no future carries usable prices.
func (r *Refresher) scoreIndex(idx models.Index, snapshot *models.MarketSnapshot, now time.Time, session string) *models.IndexScores {
	data := snapshot.ForIndex(idx)
	futures := quoteList(data.Futures)
	universe := refdata.UniverseFor(idx)

	iss, breakdown := r.iss.Sentiment(futures)
	status := scoring.StatusFor(iss)
	r.metrics.RecordScore(idx.String(), "iss", iss)

	score := &models.IndexScores{
		Index:      idx,
		ISS:        iss,
		ISSStatus:  status.Status,
		Components: breakdown,
		PAZone:     "Neutral",
		Session:    session,
		ComputedAt: now,
	}

	source := "futures"
	pa, ok := scoring.IndexPriceAction(idx, futures, universe.Weights)
	if !ok {
		source = "stocks"
		pa, ok = scoring.IndexPriceAction(idx, quoteList(data.Stocks), universe.Weights)
	}
	if ok {
		v := pa.Score
		score.PriceAction = &v
		score.PASource = source
		score.PAZone = scoring.ZoneFor(pa.Score).Zone
		r.metrics.RecordScore(idx.String(), "price_action", pa.Score)
	} else {
		r.log.Warn("no usable price action data", logger.String("index", idx.String()))
	}
	return score
}

func historyPoint(now time.Time, session string, scores map[models.Index]*models.IndexScores) *models.HistoryPoint {
	nifty := scores[models.IndexNifty]
	bank := scores[models.IndexBankNifty]
	return &models.HistoryPoint{
		Timestamp:   now,
		Session:     session,
		NiftyISS:    nifty.ISS,
		BankISS:     bank.ISS,
		NiftyStatus: nifty.ISSStatus,
		BankStatus:  bank.ISSStatus,
		NiftyPA:     nifty.PriceAction,
		BankPA:      bank.PriceAction,
		NiftyPAZone: nifty.PAZone,
		BankPAZone:  bank.PAZone,
	}
}

func quoteList(m map[string]models.Quote) []models.Quote {
	out := make([]models.Quote, 0, len(m))
	for _, q := range m {
		out = append(out, q)
	}
	return out
}

func snapshotCounts(s *models.MarketSnapshot) map[string]int {
	counts := map[string]int{"pcr": len(s.PCRData)}
	for _, idx := range models.Indexes() {
		d := s.ForIndex(idx)
		counts[idx.String()+"_stocks"] = len(d.Stocks)
		counts[idx.String()+"_futures"] = len(d.Futures)
	}
	return counts
}
