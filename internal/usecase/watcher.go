package usecase

import (
	"context"
	"strconv"
	"time"

	domrepo "MarketLens/internal/domain/repository"
	domservice "MarketLens/internal/domain/service"
	"MarketLens/internal/service/session"
	"MarketLens/pkg/logger"
)

// AnomalyWatcher polls the detector feed in the background and pushes newly
// detected anomalies to websocket clients and, when configured, to Kafka.
// Newness is tracked by an id high-water mark: the detector assigns
// monotonically increasing numeric ids. The first poll only primes the mark
// so a restart does not replay the whole feed.
type AnomalyWatcher struct {
	source      domservice.AnomalySource
	broadcaster domrepo.AlertBroadcaster
	publisher   domrepo.AlertPublisher
	log         *logger.Logger

	interval time.Duration
	limit    int

	lastID int64
	primed bool
}

func NewAnomalyWatcher(
	source domservice.AnomalySource,
	broadcaster domrepo.AlertBroadcaster,
	publisher domrepo.AlertPublisher,
	log *logger.Logger,
	interval time.Duration,
	limit int,
) *AnomalyWatcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if limit <= 0 {
		limit = 20
	}
	return &AnomalyWatcher{
		source:      source,
		broadcaster: broadcaster,
		publisher:   publisher,
		log:         log,
		interval:    interval,
		limit:       limit,
	}
}

// Run blocks until ctx is cancelled.
func (w *AnomalyWatcher) Run(ctx context.Context) {
	w.log.Info("anomaly watcher started",
		logger.Duration("interval", w.interval),
		logger.Int("limit", w.limit))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("anomaly watcher stopped")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *AnomalyWatcher) poll(ctx context.Context) {
	anomalies, err := w.source.Latest(ctx, session.Anonymous(), w.limit)
	if err != nil {
		w.log.Warn("anomaly poll failed", logger.Error(err))
		return
	}

	maxID := w.lastID
	for _, a := range anomalies {
		id, err := strconv.ParseInt(a.ID, 10, 64)
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
		if !w.primed || id <= w.lastID {
			continue
		}

		w.log.Info("new anomaly detected",
			logger.String("id", a.ID),
			logger.String("symbol", a.Symbol),
			logger.String("type", a.Type),
			logger.String("severity", a.Severity))

		if w.broadcaster != nil {
			w.broadcaster.Broadcast(a)
		}
		if w.publisher != nil {
			if err := w.publisher.Publish(ctx, a); err != nil {
				w.log.Warn("alert publish failed", logger.Error(err))
			}
		}
	}
	w.lastID = maxID
	w.primed = true
}
