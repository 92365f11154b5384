package repository

import (
	"context"

	"SentiPulse/internal/domain/models"
	"SentiPulse/internal/domain/repository"
	pkgkafka "SentiPulse/pkg/kafka"
	"SentiPulse/pkg/util"
)

// KafkaPublisher streams each persisted history point to a Kafka topic.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates a Kafka publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, pt *models.HistoryPoint) error {
	key := []byte(pt.Timestamp.In(util.IST).Format(util.HistoryTimeLayout))
	return p.producer.Publish(ctx, p.topic, key, map[string]interface{}{
		"timestamp":     pt.Timestamp.In(util.IST).Format(util.HistoryTimeLayout),
		"session":       pt.Session,
		"nifty_iss":     pt.NiftyISS,
		"bank_iss":      pt.BankISS,
		"nifty_status":  pt.NiftyStatus,
		"bank_status":   pt.BankStatus,
		"nifty_pa":      pt.NiftyPA,
		"bank_pa":       pt.BankPA,
		"nifty_pa_zone": pt.NiftyPAZone,
		"bank_pa_zone":  pt.BankPAZone,
	})
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
