package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"SentiPulse/internal/domain/models"
	"SentiPulse/internal/domain/repository"
	"SentiPulse/pkg/util"
)

// ClickHouseHistory implements HistoryStore on a ClickHouse table.
type ClickHouseHistory struct {
	db    *sql.DB
	table string
}

// HistorySchema returns the DDL for the sentiment history table.
func HistorySchema(table string) []string {
	return []string{fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		ts DateTime('Asia/Kolkata'),
		session String,
		nifty_iss Float64,
		bank_iss Float64,
		nifty_status String,
		bank_status String,
		nifty_pa Nullable(Float64),
		bank_pa Nullable(Float64),
		nifty_pa_zone String,
		bank_pa_zone String
	) ENGINE = MergeTree() ORDER BY ts`, table)}
}

// NewClickHouseHistory creates ClickHouse-backed history storage.
func NewClickHouseHistory(db *sql.DB, table string) repository.HistoryStore {
	return &ClickHouseHistory{db: db, table: table}
}

func (s *ClickHouseHistory) Append(ctx context.Context, p *models.HistoryPoint) error {
	q := fmt.Sprintf("INSERT INTO %s (ts, session, nifty_iss, bank_iss, nifty_status, bank_status, nifty_pa, bank_pa, nifty_pa_zone, bank_pa_zone) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", s.table)
	_, err := s.db.ExecContext(ctx, q,
		p.Timestamp.In(util.IST),
		p.Session,
		p.NiftyISS,
		p.BankISS,
		p.NiftyStatus,
		p.BankStatus,
		nullableFloat(p.NiftyPA),
		nullableFloat(p.BankPA),
		zoneOrNeutral(p.NiftyPAZone),
		zoneOrNeutral(p.BankPAZone),
	)
	return err
}

func (s *ClickHouseHistory) Query(ctx context.Context, hoursBack int) (*models.HistoryQueryResult, error) {
	cutoff := util.NowIST().Add(-time.Duration(hoursBack) * time.Hour)
	q := fmt.Sprintf("SELECT ts, session, nifty_iss, bank_iss, nifty_status, bank_status, nifty_pa, bank_pa, nifty_pa_zone, bank_pa_zone FROM %s WHERE ts >= ? ORDER BY ts ASC", s.table)
	rows, err := s.db.QueryContext(ctx, q, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &models.HistoryQueryResult{}
	for rows.Next() {
		var p models.HistoryPoint
		var ts time.Time
		var niftyPA, bankPA sql.NullFloat64
		if err := rows.Scan(&ts, &p.Session, &p.NiftyISS, &p.BankISS,
			&p.NiftyStatus, &p.BankStatus, &niftyPA, &bankPA,
			&p.NiftyPAZone, &p.BankPAZone); err != nil {
			result.Skipped++
			continue
		}
		p.Timestamp = ts.In(util.IST)
		if niftyPA.Valid {
			v := niftyPA.Float64
			p.NiftyPA = &v
		}
		if bankPA.Valid {
			v := bankPA.Float64
			p.BankPA = &v
		}
		result.Points = append(result.Points, p)
	}
	return result, rows.Err()
}

func (s *ClickHouseHistory) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseHistory) Close() error {
	return nil // Managed by pkg
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func zoneOrNeutral(z string) string {
	if z == "" {
		return "Neutral"
	}
	return z
}
