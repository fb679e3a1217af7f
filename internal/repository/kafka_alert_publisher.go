package repository

import (
	"context"
	"fmt"
	"time"

	"MarketLens/internal/domain/models"
	domrepo "MarketLens/internal/domain/repository"
	"MarketLens/pkg/kafka"
)

// KafkaAlertPublisher pushes detected anomalies onto a Kafka topic for
// downstream consumers (archival, paging). Messages are keyed by symbol so
// one stock's alerts stay ordered within a partition.
type KafkaAlertPublisher struct {
	producer *kafka.Producer
	topic    string
}

// KafkaAlertConfig configures the publisher.
type KafkaAlertConfig struct {
	Brokers      []string
	Topic        string
	RequiredAcks int
	Compression  string
	MaxAttempts  int
	WriteTimeout time.Duration
	ReadTimeout  time.Duration
}

func NewKafkaAlertPublisher(cfg KafkaAlertConfig) (domrepo.AlertPublisher, error) {
	producer, err := kafka.NewProducer(
		kafka.WithBrokers(cfg.Brokers),
		kafka.WithRequiredAcks(cfg.RequiredAcks),
		kafka.WithCompression(cfg.Compression),
		kafka.WithMaxAttempts(cfg.MaxAttempts),
		kafka.WithTimeouts(cfg.WriteTimeout, cfg.ReadTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create alert producer: %w", err)
	}
	return &KafkaAlertPublisher{producer: producer, topic: cfg.Topic}, nil
}

func (p *KafkaAlertPublisher) Publish(ctx context.Context, a models.Anomaly) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(a.Symbol), a); err != nil {
		return fmt.Errorf("publish alert %s: %w", a.ID, err)
	}
	return nil
}

func (p *KafkaAlertPublisher) Close() error {
	return p.producer.Close()
}
