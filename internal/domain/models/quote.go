package models

import "time"

// Exchange identifies the trading venue of an instrument.
type Exchange string

const (
	ExchangeNSE Exchange = "NSE"
	ExchangeNFO Exchange = "NFO"
)

// Quote holds a single instrument snapshot from the broker quote API.
type Quote struct {
	Token         string
	Symbol        string
	Exchange      Exchange
	LTP           float64
	Open          float64
	High          float64
	Low           float64
	Close         float64
	PercentChange float64
	Volume        int64
	OpenInterest  int64
	OIChange      int64
	PCR           float64
	Weight        float64
}

// IndexData groups quotes for one index universe, keyed by trading symbol.
type IndexData struct {
	Stocks  map[string]Quote
	Futures map[string]Quote
}

// MarketSnapshot is the result of one full quote fetch across both universes.
// PCRData maps futures trading symbols to their put/call ratio.
type MarketSnapshot struct {
	FetchedAt time.Time
	Data      map[Index]*IndexData
	PCRData   map[string]float64
}

// ForIndex returns the index's data, or an empty IndexData if absent.
func (s *MarketSnapshot) ForIndex(idx Index) *IndexData {
	if s == nil || s.Data == nil {
		return &IndexData{Stocks: map[string]Quote{}, Futures: map[string]Quote{}}
	}
	if d, ok := s.Data[idx]; ok && d != nil {
		return d
	}
	return &IndexData{Stocks: map[string]Quote{}, Futures: map[string]Quote{}}
}
