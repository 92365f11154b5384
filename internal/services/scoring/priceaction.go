package scoring

import (
	"math"

	"SentiPulse/internal/domain/models"
	"SentiPulse/internal/refdata"
)

// PriceActionResult is the outcome of a weighted price action pass.
type PriceActionResult struct {
	Score   float64
	Matched int
}

// IndexPriceAction computes the weighted index price action score over a
// set of instrument quotes. Instruments map to weights by normalized
// symbol; the index's own ticker and anything without a positive weight
// or usable prices is skipped. The second return is false when no
// instrument contributed, which callers must treat as "no reading", not
// as a neutral zero.
func IndexPriceAction(idx models.Index, quotes []models.Quote, weights map[string]float64) (PriceActionResult, bool) {
	var (
		weightedStrength float64
		totalWeight      float64
		matched          int
	)

	for _, q := range quotes {
		symbol := refdata.NormalizeSymbol(q.Symbol)
		if symbol == string(idx) {
			continue
		}

		weight := weights[symbol]
		if weight <= 0 || q.LTP <= 0 || q.High <= 0 || q.Low <= 0 {
			continue
		}

		strength, ok := PriceStrength(q.LTP, q.High, q.Low)
		if !ok {
			continue
		}

		weightedStrength += weight * strength
		totalWeight += weight
		matched++
	}

	if totalWeight == 0 {
		return PriceActionResult{}, false
	}

	score := math.Round(weightedStrength/totalWeight*1000) / 1000
	return PriceActionResult{Score: score, Matched: matched}, true
}
