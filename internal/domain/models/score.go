package models

import "time"

// ISSBreakdown exposes the weighted components behind an ISS value.
type ISSBreakdown struct {
	PriceMomentum float64 `json:"priceMomentum"`
	OIFlow        float64 `json:"oiFlow"`
	PCR           float64 `json:"pcr"`
}

// IndexScores holds one computed sentiment reading for a single index.
// PriceAction is nil when no constituent carried usable prices.
type IndexScores struct {
	Index       Index        `json:"index"`
	ISS         float64      `json:"iss"`
	ISSStatus   string       `json:"issStatus"`
	Components  ISSBreakdown `json:"components"`
	PriceAction *float64     `json:"priceAction"`
	PASource    string       `json:"paSource,omitempty"`
	PAZone      string       `json:"paZone,omitempty"`
	Session     string       `json:"session"`
	ComputedAt  time.Time    `json:"computedAt"`
}
