package sheets

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"SentiPulse/internal/domain/models"
	"SentiPulse/internal/domain/repository"
	"SentiPulse/pkg/config"
	"SentiPulse/pkg/logger"
	"SentiPulse/pkg/util"
)

// Store persists sentiment history to a Google Sheets worksheet.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
	log           *logger.Logger
}

func NewStore(ctx context.Context, cfg config.SheetsConfig, log *logger.Logger) (*Store, error) {
	opts, err := credentialOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	s := &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
		log:           log,
	}

	if err := s.ensureHeader(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// credentialOptions builds service account auth for the Sheets client.
// Inline JSON takes priority over the credentials file path.
func credentialOptions(ctx context.Context, cfg config.SheetsConfig) ([]option.ClientOption, error) {
	if cfg.CredentialsJSON != "" {
		conf, err := google.JWTConfigFromJSON([]byte(cfg.CredentialsJSON), sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("parse sheets credentials: %w", err)
		}
		return []option.ClientOption{option.WithTokenSource(conf.TokenSource(ctx))}, nil
	}
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			return nil, fmt.Errorf("sheets credentials file: %w", err)
		}
		return []option.ClientOption{
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		}, nil
	}
	return nil, fmt.Errorf("sheets backend requires credentials_json or credentials_file")
}

// ensureHeader writes the column header when the worksheet is empty.
func (s *Store) ensureHeader(ctx context.Context) error {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.worksheet+"!A1:K1").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}

	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, s.worksheet+"!A1", &sheets.ValueRange{Values: [][]interface{}{Header}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	s.log.Info("initialized history worksheet header",
		logger.String("worksheet", s.worksheet))
	return nil
}

func (s *Store) Append(ctx context.Context, p *models.HistoryPoint) error {
	row := marshalRow(p)
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.worksheet+"!A:K", &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append history row: %w", err)
	}
	return nil
}

func (s *Store) Query(ctx context.Context, hoursBack int) (*models.HistoryQueryResult, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.worksheet+"!A:K").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read history rows: %w", err)
	}

	result := &models.HistoryQueryResult{}
	if len(resp.Values) <= 1 {
		return result, nil
	}

	cutoff := util.NowIST().Add(-time.Duration(hoursBack) * time.Hour)
	for _, row := range resp.Values[1:] {
		p, err := parseRow(row)
		if err != nil {
			result.Skipped++
			continue
		}
		if p.Timestamp.Before(cutoff) {
			continue
		}
		result.Points = append(result.Points, *p)
	}

	sort.Slice(result.Points, func(i, j int) bool {
		return result.Points[i].Timestamp.Before(result.Points[j].Timestamp)
	})
	if result.Skipped > 0 {
		s.log.Debug("skipped malformed history rows", logger.Int("count", result.Skipped))
	}
	return result, nil
}

func (s *Store) Health(ctx context.Context) error {
	_, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.worksheet+"!A1:A1").
		Context(ctx).Do()
	return err
}

func (s *Store) Close() error { return nil }

var _ repository.HistoryStore = (*Store)(nil)
