package composite

import "SentiPulse/internal/domain/models"

// Interpret maps a meter value and its momentum to a trading posture.
func Interpret(value, momentum float64) models.Interpretation {
	switch {
	case value > 0.75:
		if momentum > 0.05 {
			return models.Interpretation{
				Zone:        "Strong Bull (Rising)",
				BTST:        "Long BTST recommended",
				Intraday:    "Continuation longs",
				Description: "Fresh long buildup with momentum",
			}
		}
		return models.Interpretation{
			Zone:        "Strong Bull (Flat)",
			BTST:        "Hold existing longs",
			Intraday:    "Avoid new entries",
			Description: "Healthy momentum but slowing",
		}

	case value >= 0.65:
		if momentum > 0 {
			return models.Interpretation{
				Zone:        "Bullish",
				BTST:        "Selective long BTST",
				Intraday:    "Trend continuation",
				Description: "Bullish bias with upward momentum",
			}
		}
		return models.Interpretation{
			Zone:        "Bullish (Weakening)",
			BTST:        "Book profits on longs",
			Intraday:    "Cautious on new longs",
			Description: "Bullish but losing steam",
		}

	case value >= 0.35:
		return models.Interpretation{
			Zone:        "Neutral/Choppy",
			BTST:        "Avoid BTST trades",
			Intraday:    "Range-bound scalping",
			Description: "Sideways market, mixed signals",
		}

	case value >= 0.25:
		if momentum < 0 {
			return models.Interpretation{
				Zone:        "Bearish",
				BTST:        "Selective short BTST",
				Intraday:    "Trend shorts",
				Description: "Bearish bias with downward momentum",
			}
		}
		return models.Interpretation{
			Zone:        "Bearish (Stabilizing)",
			BTST:        "Wait for clarity",
			Intraday:    "Cautious on shorts",
			Description: "Bearish but finding support",
		}

	default:
		if momentum < -0.05 {
			return models.Interpretation{
				Zone:        "Strong Bear (Falling)",
				BTST:        "Short BTST recommended",
				Intraday:    "Trend shorts",
				Description: "Fresh short buildup with momentum",
			}
		}
		return models.Interpretation{
			Zone:        "Strong Bear (Flat)",
			BTST:        "Hold existing shorts",
			Intraday:    "Avoid new entries",
			Description: "Oversold but momentum slowing",
		}
	}
}
