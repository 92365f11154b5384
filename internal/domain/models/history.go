package models

import "time"

// HistoryPoint is one persisted sentiment reading covering both indexes.
// PA values are nil when price action could not be computed for that cycle.
type HistoryPoint struct {
	Timestamp   time.Time
	Session     string
	NiftyISS    float64
	BankISS     float64
	NiftyStatus string
	BankStatus  string
	NiftyPA     *float64
	BankPA      *float64
	NiftyPAZone string
	BankPAZone  string
}

// ISSFor returns the stored ISS value for the given index.
func (p *HistoryPoint) ISSFor(idx Index) float64 {
	if idx == IndexBankNifty {
		return p.BankISS
	}
	return p.NiftyISS
}

// PAFor returns the stored price action value for the given index.
func (p *HistoryPoint) PAFor(idx Index) *float64 {
	if idx == IndexBankNifty {
		return p.BankPA
	}
	return p.NiftyPA
}

// HistoryQueryResult carries the parsed rows plus a count of rows that
// were present in storage but could not be parsed.
type HistoryQueryResult struct {
	Points  []HistoryPoint
	Skipped int
}
