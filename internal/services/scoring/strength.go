// Package scoring computes per-instrument and index-level sentiment
// scores from broker quote snapshots.
package scoring

// PriceStrength returns the intraday range position of a price,
// (ltp-low)/(high-low) clamped to [0,1]. The second return is false when
// the inputs cannot yield a meaningful position: non-positive prices, an
// inverted range, or a zero range.
func PriceStrength(ltp, high, low float64) (float64, bool) {
	if ltp <= 0 || high <= 0 || low <= 0 {
		return 0, false
	}
	if high <= low {
		return 0, false
	}
	s := (ltp - low) / (high - low)
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	return s, true
}
