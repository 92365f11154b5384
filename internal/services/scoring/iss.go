package scoring

import "SentiPulse/internal/domain/models"

// Config holds the normalization constants of the sentiment score.
type Config struct {
	VolumeNormalizer float64
	PCRBullishBase   float64
	PCRBearishBase   float64
}

// DefaultConfig returns the standard scoring constants.
func DefaultConfig() Config {
	return Config{
		VolumeNormalizer: 100000,
		PCRBullishBase:   1.1,
		PCRBearishBase:   0.9,
	}
}

// Sentiment computes the index sentiment score (ISS) over a set of
// weighted instrument quotes. Every instrument contributes, even with
// zero or missing market data. An empty or zero-weight input yields 0.0;
// unlike price action there is no "no reading" case here.
func (c Config) Sentiment(quotes []models.Quote) (float64, models.ISSBreakdown) {
	if len(quotes) == 0 {
		return 0.0, models.ISSBreakdown{}
	}

	var (
		weightedPrice float64
		weightedOI    float64
		weightedPCR   float64
		totalWeight   float64
	)

	for _, q := range quotes {
		priceChange := q.PercentChange
		oiChange := c.oiChangePct(q)
		pcr := q.PCR
		// 1.0 is the broker's placeholder for "no PCR available".
		if pcr == 0 || pcr == 1.0 {
			pcr = c.pcrProxy(priceChange)
		}

		weightedPrice += q.Weight * priceChange
		weightedOI += q.Weight * oiChange
		weightedPCR += q.Weight * pcr
		totalWeight += q.Weight
	}

	if totalWeight == 0 {
		return 0.0, models.ISSBreakdown{}
	}

	avgPrice := weightedPrice / totalWeight
	avgOI := weightedOI / totalWeight
	avgPCR := weightedPCR / totalWeight

	// Component normalization: price -2%..+2%, OI -5%..+5%, PCR 0.5..1.5.
	normPrice := clamp01((avgPrice + 2) / 4)
	normOI := clamp01((avgOI + 5) / 10)
	normPCR := clamp01((avgPCR - 0.5) / 1)

	iss := clamp01(0.4*normPrice + 0.4*normOI + 0.2*normPCR)

	return iss, models.ISSBreakdown{
		PriceMomentum: normPrice,
		OIFlow:        normOI,
		PCR:           normPCR,
	}
}

// oiChangePct returns the open interest change as a percentage of
// current OI. Instruments without OI (cash equities) fall back to a
// volume-and-direction proxy.
func (c Config) oiChangePct(q models.Quote) float64 {
	if q.OpenInterest > 0 && q.OIChange != 0 {
		return float64(q.OIChange) / float64(q.OpenInterest) * 100
	}
	if q.Volume > 0 && q.PercentChange != 0 {
		intensity := float64(q.Volume) / c.VolumeNormalizer
		return intensity * (q.PercentChange / 10)
	}
	return 0
}

// pcrProxy derives a put/call ratio stand-in from price direction.
func (c Config) pcrProxy(priceChange float64) float64 {
	if priceChange > 0 {
		return c.PCRBullishBase + priceChange/100
	}
	return c.PCRBearishBase + priceChange/100
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
