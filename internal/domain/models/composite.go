package models

// SignalAction is the discrete trading signal emitted by the composite meter.
type SignalAction string

const (
	SignalStrongBuy  SignalAction = "STRONG_BUY"
	SignalStrongSell SignalAction = "STRONG_SELL"
	SignalBuy        SignalAction = "BUY"
	SignalSell       SignalAction = "SELL"
	SignalHoldLong   SignalAction = "HOLD_LONG"
	SignalHoldShort  SignalAction = "HOLD_SHORT"
	SignalNeutral    SignalAction = "NEUTRAL"
)

// Signal pairs an action with its confidence grade.
type Signal struct {
	Action     SignalAction `json:"action"`
	Confidence string       `json:"confidence"`
}

// Interpretation is the human-readable reading of a composite value.
type Interpretation struct {
	Zone        string `json:"zone"`
	BTST        string `json:"btst"`
	Intraday    string `json:"intraday"`
	Description string `json:"description"`
}

// CompositeResult is the output of one composite meter computation
// for a single index.
type CompositeResult struct {
	Index          Index          `json:"index"`
	CurrentValue   float64        `json:"currentValue"`
	Momentum       float64        `json:"momentum"`
	Signal         Signal         `json:"signal"`
	Interpretation Interpretation `json:"interpretation"`
	AdaptiveWeight float64        `json:"adaptiveWeight"`
	RawISS         float64        `json:"rawISS"`
	RawPA          float64        `json:"rawPA"`
	Points         int            `json:"points"`
	Algorithm      string         `json:"algorithm"`
}

// CompositeSeriesPoint is one chart point of the composite time series.
type CompositeSeriesPoint struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}
