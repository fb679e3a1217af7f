package upstream

import (
	"context"
	"strconv"

	"MarketLens/internal/domain/models"
	domainservice "MarketLens/internal/domain/service"
	"MarketLens/internal/normalize"
	"MarketLens/internal/service/session"
)

// AnomalyClient reads both anomaly feeds. The alert feed ships
// pre-normalized records; the detector feed ships raw detections whose
// severity must be derived. Both normalize into the same canonical shape.
type AnomalyClient struct {
	t *Transport
}

func NewAnomalyClient(t *Transport) domainservice.AnomalySource {
	return &AnomalyClient{t: t}
}

func (c *AnomalyClient) Alerts(ctx context.Context, sess *session.Session) ([]models.Anomaly, error) {
	var raw []normalize.AlertRecord
	if err := c.t.get(ctx, sess, "alerts", "/alerts/", nil, &raw); err != nil {
		return nil, err
	}
	return normalize.Alerts(raw), nil
}

func (c *AnomalyClient) Latest(ctx context.Context, sess *session.Session, limit int) ([]models.Anomaly, error) {
	query := map[string][]string{}
	if limit > 0 {
		query["limit"] = []string{strconv.Itoa(limit)}
	}
	var raw []normalize.DetectionRecord
	if err := c.t.get(ctx, sess, "anomaly_latest", "/anomaly/latest", query, &raw); err != nil {
		return nil, err
	}
	return normalize.Detections(raw), nil
}
