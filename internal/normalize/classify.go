package normalize

import "MarketLens/internal/domain/models"

// Severity and label classifiers live here so the thresholds have a single
// source of truth.

const criticalConfidence = 0.8

// SeverityFromConfidence buckets a detector confidence score into an alert
// severity: >= 0.8 is critical, anything below is high. Detector output is
// already filtered to significant events, so the weaker buckets are reserved
// for pre-labelled alert feeds.
func SeverityFromConfidence(confidence float64) string {
	if confidence >= criticalConfidence {
		return models.SeverityCritical
	}
	return models.SeverityHigh
}

// LabelFromScore maps a sentiment score in [-1, 1] to its qualitative label.
func LabelFromScore(score float64) string {
	switch {
	case score > 0.2:
		return "positive"
	case score < -0.2:
		return "negative"
	default:
		return "neutral"
	}
}

// anomaly type dictionary: detector enum <-> canonical type
var detectorTypes = map[string]string{
	"VOLUME_SPIKE":       models.AnomalyVolumeSpike,
	"PRICE_SHOCK":        models.AnomalyPriceJump,
	"SUSPICIOUS_PATTERN": models.AnomalySuspiciousPattern,
}

var canonicalTypes = map[string]string{
	models.AnomalyVolumeSpike:       "VOLUME_SPIKE",
	models.AnomalyPriceJump:         "PRICE_SHOCK",
	models.AnomalySuspiciousPattern: "SUSPICIOUS_PATTERN",
}

// AnomalyTypeFromDetector maps the detector's uppercase enum to the canonical
// type. Unrecognized values map to suspicious_pattern rather than failing,
// since the detector grows new classes ahead of this service.
func AnomalyTypeFromDetector(alertType string) string {
	if t, ok := detectorTypes[alertType]; ok {
		return t
	}
	return models.AnomalySuspiciousPattern
}

// DetectorTypeFromAnomaly is the reverse mapping, used when publishing back
// toward detector-facing consumers.
func DetectorTypeFromAnomaly(anomalyType string) string {
	if t, ok := canonicalTypes[anomalyType]; ok {
		return t
	}
	return "SUSPICIOUS_PATTERN"
}
