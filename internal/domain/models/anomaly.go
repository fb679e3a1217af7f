package models

// Anomaly type enumeration.
const (
	AnomalyVolumeSpike       = "volume_spike"
	AnomalyPriceJump         = "price_jump"
	AnomalySuspiciousPattern = "suspicious_pattern"
)

// Anomaly severity buckets, weakest to strongest.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Anomaly is a detected market irregularity.
type Anomaly struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Symbol      string `json:"symbol"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Resolved    bool   `json:"resolved"`
}
