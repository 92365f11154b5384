package sheets

import (
	"testing"
	"time"

	"SentiPulse/internal/domain/models"
	"SentiPulse/pkg/util"
)

func floatPtr(v float64) *float64 { return &v }

func TestMarshalRowLayout(t *testing.T) {
	ts := time.Date(2026, 3, 9, 10, 30, 45, 0, util.IST)
	p := &models.HistoryPoint{
		Timestamp:   ts,
		Session:     "Morning",
		NiftyISS:    0.61234567,
		BankISS:     0.42,
		NiftyStatus: "Mild Bullish",
		BankStatus:  "Neutral",
		NiftyPA:     floatPtr(0.71119),
		BankPA:      nil,
		NiftyPAZone: "Bullish",
		BankPAZone:  "Neutral",
	}

	row := marshalRow(p)
	if len(row) != 11 {
		t.Fatalf("expected 11 columns, got %d", len(row))
	}
	if row[0] != "2026-03-09 10:30:45" {
		t.Errorf("timestamp column = %v", row[0])
	}
	if row[1] != "10:30" {
		t.Errorf("ist time column = %v", row[1])
	}
	if row[2] != 0.6123 {
		t.Errorf("nifty iss = %v, want 0.6123", row[2])
	}
	if row[7] != 0.7112 {
		t.Errorf("nifty pa = %v, want 0.7112", row[7])
	}
	if row[8] != "" {
		t.Errorf("absent bank pa should be empty cell, got %v", row[8])
	}
}

func TestParseRowRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 9, 14, 5, 0, 0, util.IST)
	p := &models.HistoryPoint{
		Timestamp:   ts,
		Session:     "Afternoon",
		NiftyISS:    0.55,
		BankISS:     0.47,
		NiftyStatus: "Neutral",
		BankStatus:  "Mild Bearish",
		NiftyPA:     floatPtr(0.62),
		BankPA:      floatPtr(0.38),
		NiftyPAZone: "Bullish",
		BankPAZone:  "Weak",
	}

	got, err := parseRow(marshalRow(p))
	if err != nil {
		t.Fatalf("parseRow: %v", err)
	}
	if !got.Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, ts)
	}
	if got.NiftyISS != 0.55 || got.BankISS != 0.47 {
		t.Errorf("iss = %v/%v", got.NiftyISS, got.BankISS)
	}
	if got.NiftyPA == nil || *got.NiftyPA != 0.62 {
		t.Errorf("nifty pa = %v", got.NiftyPA)
	}
	if got.BankPAZone != "Weak" {
		t.Errorf("bank pa zone = %q", got.BankPAZone)
	}
	if got.Session != "Afternoon" {
		t.Errorf("session = %q", got.Session)
	}
}

func TestParseRowDefaults(t *testing.T) {
	row := []interface{}{"2026-03-09 10:00:00", "10:00", "0.5", "0.5"}
	p, err := parseRow(row)
	if err != nil {
		t.Fatalf("parseRow: %v", err)
	}
	if p.NiftyStatus != "Neutral" || p.BankStatus != "Neutral" {
		t.Errorf("statuses = %q/%q, want Neutral", p.NiftyStatus, p.BankStatus)
	}
	if p.Session != "Unknown" {
		t.Errorf("session = %q, want Unknown", p.Session)
	}
	if p.NiftyPA != nil || p.BankPA != nil {
		t.Errorf("missing pa columns should parse to nil")
	}
	if p.NiftyPAZone != "Neutral" || p.BankPAZone != "Neutral" {
		t.Errorf("zones = %q/%q, want Neutral", p.NiftyPAZone, p.BankPAZone)
	}
}

func TestParseRowMalformed(t *testing.T) {
	cases := []struct {
		name string
		row  []interface{}
	}{
		{"too short", []interface{}{"2026-03-09 10:00:00", "10:00", "0.5"}},
		{"empty timestamp", []interface{}{"", "10:00", "0.5", "0.5"}},
		{"bad timestamp", []interface{}{"yesterday", "10:00", "0.5", "0.5"}},
		{"bad iss", []interface{}{"2026-03-09 10:00:00", "10:00", "n/a", "0.5"}},
	}
	for _, tc := range cases {
		if _, err := parseRow(tc.row); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestParseRowUnparsablePABecomesNil(t *testing.T) {
	row := []interface{}{
		"2026-03-09 10:00:00", "10:00", "0.5", "0.5",
		"Neutral", "Neutral", "Morning", "not-a-number", "0.4",
	}
	p, err := parseRow(row)
	if err != nil {
		t.Fatalf("parseRow: %v", err)
	}
	if p.NiftyPA != nil {
		t.Errorf("unparsable pa should be nil, got %v", *p.NiftyPA)
	}
	if p.BankPA == nil || *p.BankPA != 0.4 {
		t.Errorf("bank pa = %v, want 0.4", p.BankPA)
	}
}
