package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"MarketLens/internal/domain/models"
)

// Recommendations maps decision-engine records into canonical
// recommendations, flattening each record's metrics object into display
// signal strings.
func Recommendations(records []RawRecommendation) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(records))
	for _, r := range records {
		out = append(out, Recommendation(r))
	}
	return out
}

// Recommendation maps a single decision-engine record. An absent or invalid
// action degrades to HOLD.
func Recommendation(r RawRecommendation) models.Recommendation {
	action := r.Action
	switch action {
	case models.ActionBuy, models.ActionSell, models.ActionHold:
	default:
		action = models.ActionHold
	}
	return models.Recommendation{
		Symbol:     r.Symbol,
		Name:       r.Stock,
		Action:     action,
		Confidence: r.Confidence,
		Reason:     r.Reason,
		Signals:    flattenMetrics(r.Metrics),
	}
}

// flattenMetrics turns a metrics JSON object into "key: value" strings,
// preserving the key order of the source document. A streaming token walk is
// used because decoding into a map would lose that order.
func flattenMetrics(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var signals []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return signals
		}
		key, ok := keyTok.(string)
		if !ok {
			return signals
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return signals
		}
		signals = append(signals, key+": "+formatMetric(value))
	}
	return signals
}

func formatMetric(v interface{}) string {
	switch val := v.(type) {
	case json.Number:
		return val.String()
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
