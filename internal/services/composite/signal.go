package composite

import "SentiPulse/internal/domain/models"

// Signal derives the discrete trading signal from the current and
// previous meter values. Zone entries require an actual threshold
// crossing; a value merely sitting beyond a threshold only holds the
// existing bias.
func (e *Engine) Signal(current, prev, momentum float64) models.Signal {
	buy := e.cfg.BuyThreshold
	sell := e.cfg.SellThreshold
	mom := e.cfg.MomentumThreshold

	switch {
	case current >= buy && prev < buy && momentum > mom:
		return models.Signal{Action: models.SignalStrongBuy, Confidence: "High"}
	case current <= sell && prev > sell && momentum < -mom:
		return models.Signal{Action: models.SignalStrongSell, Confidence: "High"}
	case current >= buy && prev < buy:
		return models.Signal{Action: models.SignalBuy, Confidence: "Medium"}
	case current <= sell && prev > sell:
		return models.Signal{Action: models.SignalSell, Confidence: "Medium"}
	case current > buy:
		return models.Signal{Action: models.SignalHoldLong, Confidence: "Medium"}
	case current < sell:
		return models.Signal{Action: models.SignalHoldShort, Confidence: "Medium"}
	default:
		return models.Signal{Action: models.SignalNeutral, Confidence: "Low"}
	}
}
