// Package composite turns a sentiment history series into a smoothed,
// adaptively blended meter value with discrete trading signals.
package composite

import (
	"math"

	"SentiPulse/internal/domain/models"
)

// Point is one history observation with both score families present.
type Point struct {
	ISS float64
	PA  float64
}

// Config holds the meter's window sizes and signal thresholds.
type Config struct {
	MinPoints         int
	SmoothWindow      int
	NormWindow        int
	BuyThreshold      float64
	SellThreshold     float64
	MomentumThreshold float64
}

// DefaultConfig returns the standard meter parameters.
func DefaultConfig() Config {
	return Config{
		MinPoints:         12,
		SmoothWindow:      12,
		NormWindow:        24,
		BuyThreshold:      0.65,
		SellThreshold:     0.35,
		MomentumThreshold: 0.05,
	}
}

// Engine computes composite meter readings.
type Engine struct {
	cfg Config
}

// NewEngine creates a meter engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	if cfg.MinPoints <= 0 {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg}
}

// Compute runs the full statistical pipeline over an ascending series.
// It returns false when the series is shorter than the configured
// minimum; callers must surface that as "insufficient data", never as a
// neutral reading.
func (e *Engine) Compute(idx models.Index, points []Point) (*models.CompositeResult, bool) {
	if len(points) < e.cfg.MinPoints {
		return nil, false
	}
	return e.statistical(idx, points), true
}

// ComputeShortHistory runs the reduced pipeline over the trailing window
// of a series. It is the cold-start path for callers that want a reading
// before a full normalization window has accumulated; it still requires
// MinPoints observations.
func (e *Engine) ComputeShortHistory(idx models.Index, points []Point) (*models.CompositeResult, bool) {
	if len(points) < e.cfg.MinPoints {
		return nil, false
	}
	return e.simple(idx, points), true
}

// statistical applies rolling recentering, adaptive blending, double
// exponential smoothing, and rolling min/max renormalization.
func (e *Engine) statistical(idx models.Index, points []Point) *models.CompositeResult {
	n := len(points)
	iss := make([]float64, n)
	pa := make([]float64, n)
	for i, p := range points {
		iss[i] = p.ISS
		pa[i] = p.PA
	}

	window := e.cfg.SmoothWindow
	if n < window {
		window = n
	}
	issCentered := subtract(iss, rollingMean(iss, window))
	paCentered := subtract(pa, rollingMean(pa, window))

	weights := make([]float64, n)
	blended := make([]float64, n)
	for i := 0; i < n; i++ {
		weights[i] = adaptiveWeight(iss[i])
		blended[i] = weights[i]*issCentered[i] + (1-weights[i])*paCentered[i]
	}

	// DEMA over span 3: 2*EMA - EMA(EMA).
	ema1 := ewma(blended, 3)
	ema2 := ewma(ema1, 3)
	smoothed := make([]float64, n)
	for i := 0; i < n; i++ {
		smoothed[i] = 2*ema1[i] - ema2[i]
	}

	normWindow := e.cfg.NormWindow
	if n < normWindow {
		normWindow = n
	}
	rmin := rollingMin(smoothed, normWindow)
	rmax := rollingMax(smoothed, normWindow)
	normalized := make([]float64, n)
	for i := 0; i < n; i++ {
		normalized[i] = clamp01((smoothed[i] - rmin[i]) / (rmax[i] - rmin[i] + 1e-8))
	}

	current := normalized[n-1]
	prev := current
	if n > 1 {
		prev = normalized[n-2]
	}
	momentum := 0.0
	if n > 3 {
		momentum = normalized[n-1] - normalized[n-4]
	}

	return e.result(idx, "statistical", current, prev, momentum, weights[n-1], iss[n-1], pa[n-1], n)
}

// simple is the reduced pipeline: trailing window, plain means, 3-point
// moving average, and global min/max normalization.
func (e *Engine) simple(idx models.Index, points []Point) *models.CompositeResult {
	recent := points
	if len(recent) > e.cfg.SmoothWindow {
		recent = recent[len(recent)-e.cfg.SmoothWindow:]
	}
	n := len(recent)

	var issMean, paMean float64
	for _, p := range recent {
		issMean += p.ISS
		paMean += p.PA
	}
	issMean /= float64(n)
	paMean /= float64(n)

	lastISS := recent[n-1].ISS
	weight := adaptiveWeight(lastISS)

	blended := make([]float64, n)
	for i, p := range recent {
		blended[i] = weight*(p.ISS-issMean) + (1-weight)*(p.PA-paMean)
	}

	smoothed := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < 2 {
			smoothed[i] = blended[i]
			continue
		}
		smoothed[i] = (blended[i-2] + blended[i-1] + blended[i]) / 3
	}

	minVal, maxVal := smoothed[0], smoothed[0]
	for _, v := range smoothed {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rangeVal := maxVal - minVal + 1e-8
	normalized := make([]float64, n)
	for i, v := range smoothed {
		normalized[i] = clamp01((v - minVal) / rangeVal)
	}

	current := normalized[n-1]
	prev := current
	if n > 1 {
		prev = normalized[n-2]
	}
	momPrev := normalized[0]
	if n > 3 {
		momPrev = normalized[n-4]
	}
	momentum := current - momPrev

	return e.result(idx, "simple", current, prev, momentum, weight, lastISS, recent[n-1].PA, n)
}

func (e *Engine) result(idx models.Index, algorithm string, current, prev, momentum, weight, rawISS, rawPA float64, n int) *models.CompositeResult {
	return &models.CompositeResult{
		Index:          idx,
		CurrentValue:   round4(current),
		Momentum:       round4(momentum),
		Signal:         e.Signal(current, prev, momentum),
		Interpretation: Interpret(current, momentum),
		AdaptiveWeight: round3(weight),
		RawISS:         round4(rawISS),
		RawPA:          round4(rawPA),
		Points:         n,
		Algorithm:      algorithm,
	}
}

// adaptiveWeight maps an ISS value to the OI-side blend weight,
// clamped to [0.2, 0.8] so neither component is ever fully ignored.
func adaptiveWeight(iss float64) float64 {
	w := (iss - 0.5) * 2
	if w < 0.2 {
		return 0.2
	}
	if w > 0.8 {
		return 0.8
	}
	return w
}

// rollingMean returns the trailing-window mean at each position, with
// shorter windows at the head of the series.
func rollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
			out[i] = sum / float64(window)
			continue
		}
		out[i] = sum / float64(i+1)
	}
	return out
}

func rollingMin(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		m := values[lo]
		for _, v := range values[lo : i+1] {
			if v < m {
				m = v
			}
		}
		out[i] = m
	}
	return out
}

func rollingMax(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		m := values[lo]
		for _, v := range values[lo : i+1] {
			if v > m {
				m = v
			}
		}
		out[i] = m
	}
	return out
}

// ewma is an exponentially weighted mean with alpha = 2/(span+1),
// seeded from the first observation.
func ewma(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

func subtract(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
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

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
