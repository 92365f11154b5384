package scoring

// PriceActionZone classifies a price action score into a named zone.
type PriceActionZone struct {
	Zone        string `json:"zone"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// ZoneFor maps a price action score to its zone. Bands are inclusive on
// the upper bound.
func ZoneFor(score float64) PriceActionZone {
	switch {
	case score <= 0.2:
		return PriceActionZone{
			Zone:        "Deep Bear",
			Description: "Strong sell-off; price hugging day's lows",
			Action:      "Avoid longs; watch for reversal setups",
		}
	case score <= 0.4:
		return PriceActionZone{
			Zone:        "Weak",
			Description: "Sellers still active; mild relief possible",
			Action:      "Only scalp; trend still down",
		}
	case score <= 0.6:
		return PriceActionZone{
			Zone:        "Neutral",
			Description: "Tug-of-war; could break any side",
			Action:      "Wait for breakout or confirm with OI",
		}
	case score <= 0.8:
		return PriceActionZone{
			Zone:        "Bullish",
			Description: "Buyers in control; pullbacks get bought",
			Action:      "Prefer long trades with OI support",
		}
	default:
		return PriceActionZone{
			Zone:        "Strong Bull",
			Description: "Index at/near highs",
			Action:      "Trail profits; beware of exhaustion",
		}
	}
}

// MeterStatus is the trading posture derived from an ISS value.
type MeterStatus struct {
	Status     string `json:"status"`
	Action     string `json:"action"`
	TradeType  string `json:"tradeType"`
	Confidence string `json:"confidence"`
}

// StatusFor maps an ISS value to its meter status. Bands are inclusive
// on the lower bound.
func StatusFor(iss float64) MeterStatus {
	switch {
	case iss >= 0.75:
		return MeterStatus{
			Status:     "Strong Bullish",
			Action:     "Go Long (Calls / Futures Buy / BTST Calls)",
			TradeType:  "Long buildup, heavy long positions",
			Confidence: "Strong",
		}
	case iss >= 0.60:
		return MeterStatus{
			Status:     "Mild Bullish",
			Action:     "Buy on dips, avoid shorts",
			TradeType:  "Possible intraday uptrend continuation",
			Confidence: "Mild",
		}
	case iss >= 0.40:
		return MeterStatus{
			Status:     "Neutral",
			Action:     "Avoid directional trades; scalp both sides",
			TradeType:  "Uncertain / consolidation",
			Confidence: "Neutral",
		}
	case iss >= 0.25:
		return MeterStatus{
			Status:     "Mild Bearish",
			Action:     "Sell on rise, avoid longs",
			TradeType:  "Short buildup signals forming",
			Confidence: "Mild",
		}
	default:
		return MeterStatus{
			Status:     "Strong Bearish",
			Action:     "Go Short (Puts / Futures Sell / BTST Puts)",
			TradeType:  "Heavy shorts or profit booking",
			Confidence: "Strong",
		}
	}
}
