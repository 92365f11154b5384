package api

import (
	"sort"

	models "SentiPulse/internal/domain/models"
)

// quoteView is the wire shape of one instrument quote.
type quoteView struct {
	Token         string  `json:"token"`
	Symbol        string  `json:"symbol"`
	LTP           float64 `json:"ltp"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	PercentChange float64 `json:"percentChange"`
	Volume        int64   `json:"tradeVolume"`
	OpenInterest  int64   `json:"openInterest"`
	OIChange      int64   `json:"oiChange"`
	Weight        float64 `json:"weight"`
}

func quoteViews(quotes map[string]models.Quote) []quoteView {
	views := make([]quoteView, 0, len(quotes))
	for _, q := range quotes {
		views = append(views, quoteView{
			Token:         q.Token,
			Symbol:        q.Symbol,
			LTP:           q.LTP,
			Open:          q.Open,
			High:          q.High,
			Low:           q.Low,
			Close:         q.Close,
			PercentChange: q.PercentChange,
			Volume:        q.Volume,
			OpenInterest:  q.OpenInterest,
			OIChange:      q.OIChange,
			Weight:        q.Weight,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Symbol < views[j].Symbol })
	return views
}
