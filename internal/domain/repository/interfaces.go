package repository

import (
	"context"

	"SentiPulse/internal/domain/models"
)

// QuoteSource fetches instrument snapshots from the broker.
type QuoteSource interface {
	FetchSnapshot(ctx context.Context) (*models.MarketSnapshot, error)
}

// HistoryStore persists and retrieves sentiment history points.
type HistoryStore interface {
	Append(ctx context.Context, p *models.HistoryPoint) error
	Query(ctx context.Context, hoursBack int) (*models.HistoryQueryResult, error)
	Health(ctx context.Context) error
	Close() error
}

// Publisher fans out appended history points to a message broker.
type Publisher interface {
	Publish(ctx context.Context, p *models.HistoryPoint) error
	Close() error
}

// Metrics records operational metrics.
type Metrics interface {
	RecordRefresh(result string)
	RecordError(kind string)
	RecordScore(index, kind string, score float64)
	RecordHistoryAppend(backend, result string)
	RecordLatency(op string, seconds float64)
	RecordInstrumentCount(exchange string, n int)
}
