package repository

import (
	"context"

	"MarketLens/internal/domain/models"
)

// AlertPublisher fans detected anomalies out to an external sink.
type AlertPublisher interface {
	Publish(ctx context.Context, a models.Anomaly) error
	Close() error
}

// AlertBroadcaster pushes anomalies to connected dashboard clients.
type AlertBroadcaster interface {
	Broadcast(a models.Anomaly)
}

// Metrics records gateway observability signals.
type Metrics interface {
	RecordUpstreamRequest(endpoint, status string)
	RecordFallback(signal string)
	RecordTokenEviction()
	RecordLatency(op string, seconds float64)
}
