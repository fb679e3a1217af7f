package normalize

import (
	"strconv"

	"MarketLens/internal/domain/models"
)

// Alerts maps pre-labelled alert-feed records into canonical anomalies.
// Missing optional fields degrade to neutral defaults, never to an error.
func Alerts(records []AlertRecord) []models.Anomaly {
	out := make([]models.Anomaly, 0, len(records))
	for _, r := range records {
		severity := r.Severity
		if severity == "" {
			severity = models.SeverityLow
		}
		typ := r.Type
		if _, ok := canonicalTypes[typ]; !ok {
			typ = models.AnomalySuspiciousPattern
		}
		out = append(out, models.Anomaly{
			ID:          r.ID,
			Timestamp:   r.Timestamp,
			Symbol:      r.Stock,
			Type:        typ,
			Severity:    severity,
			Description: r.Description,
			Details:     r.Details,
			Resolved:    r.Resolved,
		})
	}
	return out
}

// Detections maps detector-native records into canonical anomalies. The
// severity is derived from the confidence score, not copied from the record.
func Detections(records []DetectionRecord) []models.Anomaly {
	out := make([]models.Anomaly, 0, len(records))
	for _, r := range records {
		out = append(out, models.Anomaly{
			ID:          strconv.FormatInt(r.ID, 10),
			Timestamp:   r.CreatedAt,
			Symbol:      r.StockSymbol,
			Type:        AnomalyTypeFromDetector(r.AlertType),
			Severity:    SeverityFromConfidence(r.Confidence),
			Description: r.Description,
			Details:     r.Limitations,
			Resolved:    false,
		})
	}
	return out
}
