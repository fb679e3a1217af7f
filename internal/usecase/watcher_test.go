package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"MarketLens/internal/domain/models"
	"MarketLens/pkg/logger"
)

type recordingBroadcaster struct {
	mu  sync.Mutex
	got []models.Anomaly
}

func (r *recordingBroadcaster) Broadcast(a models.Anomaly) {
	r.mu.Lock()
	r.got = append(r.got, a)
	r.mu.Unlock()
}

func (r *recordingBroadcaster) anomalies() []models.Anomaly {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Anomaly, len(r.got))
	copy(out, r.got)
	return out
}

func TestWatcherBroadcastsOnlyNew(t *testing.T) {
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	source := &stubAnomalies{latest: []models.Anomaly{
		{ID: "1", Symbol: "TT"},
		{ID: "2", Symbol: "SFBT"},
	}}
	bc := &recordingBroadcaster{}
	w := NewAnomalyWatcher(source, bc, nil, log, time.Minute, 20)

	// First poll primes the high-water mark without replaying the feed.
	w.poll(context.Background())
	if got := bc.anomalies(); len(got) != 0 {
		t.Fatalf("priming poll broadcast %d anomalies", len(got))
	}

	source.latest = append(source.latest, models.Anomaly{ID: "3", Symbol: "DH"})
	w.poll(context.Background())
	got := bc.anomalies()
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("broadcast = %+v, want only id 3", got)
	}

	// No change, no broadcast.
	w.poll(context.Background())
	if got := bc.anomalies(); len(got) != 1 {
		t.Errorf("unchanged feed broadcast again: %+v", got)
	}
}

func TestWatcherSkipsNonNumericIDs(t *testing.T) {
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	source := &stubAnomalies{latest: []models.Anomaly{{ID: "a1", Symbol: "TT"}}}
	bc := &recordingBroadcaster{}
	w := NewAnomalyWatcher(source, bc, nil, log, time.Minute, 20)

	w.poll(context.Background())
	w.poll(context.Background())
	if got := bc.anomalies(); len(got) != 0 {
		t.Errorf("non-numeric ids broadcast: %+v", got)
	}
}

func TestWatcherSurvivesPollFailure(t *testing.T) {
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	source := &stubAnomalies{latestErr: errDown}
	bc := &recordingBroadcaster{}
	w := NewAnomalyWatcher(source, bc, nil, log, time.Minute, 20)

	w.poll(context.Background())

	source.latestErr = nil
	source.latest = []models.Anomaly{{ID: "1", Symbol: "TT"}}
	w.poll(context.Background())
	// The first successful poll primes; the next one broadcasts.
	source.latest = append(source.latest, models.Anomaly{ID: "2", Symbol: "DH"})
	w.poll(context.Background())

	got := bc.anomalies()
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("broadcast = %+v, want only id 2", got)
	}
}
