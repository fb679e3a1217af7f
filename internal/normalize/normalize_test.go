package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	"MarketLens/internal/domain/models"
)

func TestSeverityFromConfidence(t *testing.T) {
	cases := []struct {
		confidence float64
		want       string
	}{
		{0.95, models.SeverityCritical},
		{0.8, models.SeverityCritical},
		{0.79, models.SeverityHigh},
		{0.1, models.SeverityHigh},
	}
	for _, c := range cases {
		if got := SeverityFromConfidence(c.confidence); got != c.want {
			t.Errorf("SeverityFromConfidence(%v) = %q, want %q", c.confidence, got, c.want)
		}
	}
}

func TestLabelFromScore(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.5, "positive"},
		{0.2, "neutral"},
		{-0.2, "neutral"},
		{-0.21, "negative"},
		{0, "neutral"},
	}
	for _, c := range cases {
		if got := LabelFromScore(c.score); got != c.want {
			t.Errorf("LabelFromScore(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestAnomalyTypeDictionary(t *testing.T) {
	if got := AnomalyTypeFromDetector("VOLUME_SPIKE"); got != models.AnomalyVolumeSpike {
		t.Errorf("VOLUME_SPIKE mapped to %q", got)
	}
	if got := AnomalyTypeFromDetector("PRICE_SHOCK"); got != models.AnomalyPriceJump {
		t.Errorf("PRICE_SHOCK mapped to %q", got)
	}
	if got := AnomalyTypeFromDetector("SOMETHING_NEW"); got != models.AnomalySuspiciousPattern {
		t.Errorf("unknown detector type mapped to %q, want suspicious_pattern", got)
	}
	if got := DetectorTypeFromAnomaly(models.AnomalyPriceJump); got != "PRICE_SHOCK" {
		t.Errorf("reverse mapping for price_jump = %q", got)
	}
}

func TestDetections(t *testing.T) {
	records := []DetectionRecord{
		{
			ID:          42,
			StockSymbol: "VCB",
			AlertType:   "VOLUME_SPIKE",
			Description: "volume 5x above 20-day average",
			Limitations: "single-session window",
			Confidence:  0.91,
			CreatedAt:   "2026-08-30T09:15:00",
		},
		{
			ID:          43,
			StockSymbol: "FPT",
			AlertType:   "PRICE_SHOCK",
			Confidence:  0.55,
			CreatedAt:   "2026-08-30T09:16:00",
		},
	}
	got := Detections(records)
	if len(got) != 2 {
		t.Fatalf("got %d anomalies, want 2", len(got))
	}
	first := got[0]
	if first.ID != "42" {
		t.Errorf("ID = %q, want \"42\"", first.ID)
	}
	if first.Type != models.AnomalyVolumeSpike {
		t.Errorf("Type = %q", first.Type)
	}
	if first.Severity != models.SeverityCritical {
		t.Errorf("Severity = %q, want critical for confidence 0.91", first.Severity)
	}
	if first.Details != "single-session window" {
		t.Errorf("Details = %q", first.Details)
	}
	if first.Resolved {
		t.Error("detector records must start unresolved")
	}
	if got[1].Severity != models.SeverityHigh {
		t.Errorf("second Severity = %q, want high for confidence 0.55", got[1].Severity)
	}
}

func TestAlertsDefaults(t *testing.T) {
	records := []AlertRecord{
		{ID: "a1", Stock: "HPG", Type: "weird_type", Description: "x"},
	}
	got := Alerts(records)
	if len(got) != 1 {
		t.Fatalf("got %d anomalies, want 1", len(got))
	}
	if got[0].Severity != models.SeverityLow {
		t.Errorf("missing severity defaulted to %q, want low", got[0].Severity)
	}
	if got[0].Type != models.AnomalySuspiciousPattern {
		t.Errorf("invalid type mapped to %q, want suspicious_pattern", got[0].Type)
	}
}

func TestRecommendationMetricsOrder(t *testing.T) {
	raw := RawRecommendation{
		Symbol:     "VCB",
		Stock:      "Vietcombank",
		Action:     "BUY",
		Confidence: 0.82,
		Reason:     "positive momentum",
		Metrics:    json.RawMessage(`{"forecast_return": 0.031, "sentiment_score": 0.72, "anomalies": 0}`),
	}
	got := Recommendation(raw)
	want := []string{"forecast_return: 0.031", "sentiment_score: 0.72", "anomalies: 0"}
	if !reflect.DeepEqual(got.Signals, want) {
		t.Errorf("Signals = %v, want %v", got.Signals, want)
	}
}

func TestRecommendationInvalidAction(t *testing.T) {
	got := Recommendation(RawRecommendation{Symbol: "SSI", Action: "ACCUMULATE"})
	if got.Action != models.ActionHold {
		t.Errorf("invalid action mapped to %q, want HOLD", got.Action)
	}
}

func TestRecommendationMetricsMalformed(t *testing.T) {
	cases := []json.RawMessage{
		nil,
		json.RawMessage(`[]`),
		json.RawMessage(`{"a": 1,`),
	}
	for _, m := range cases {
		got := Recommendation(RawRecommendation{Symbol: "X", Action: "HOLD", Metrics: m})
		// Truncated input keeps whatever decoded cleanly before the break.
		for _, s := range got.Signals {
			if s == "" {
				t.Errorf("empty signal produced from metrics %s", m)
			}
		}
	}
}

func TestSentimentSignalLabelFallback(t *testing.T) {
	got := SentimentSignal(RawSentimentSignal{StockSymbol: "VCB", SentimentScore: 0.6})
	if got.Label != "positive" {
		t.Errorf("Label = %q, want derived positive", got.Label)
	}
	got = SentimentSignal(RawSentimentSignal{StockSymbol: "VCB", SentimentScore: 0.6, SentimentLabel: "neutral"})
	if got.Label != "neutral" {
		t.Errorf("upstream label overridden: got %q", got.Label)
	}
}

func TestSentimentTimeline(t *testing.T) {
	articles := []models.NewsArticle{
		{Published: "2026-08-02T10:00:00", Score: 0.4},
		{Published: "2026-08-02T15:00:00", Score: 0.8},
		{Published: "2026-08-01", Score: -0.5},
		{Published: "not a date", Score: 1.0},
	}
	got := SentimentTimeline(articles)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[0].Date != "2026-08-01" || got[1].Date != "2026-08-02" {
		t.Errorf("days out of order: %v, %v", got[0].Date, got[1].Date)
	}
	if got[1].Score != 0.6 {
		t.Errorf("mean score = %v, want 0.6", got[1].Score)
	}
	if got[1].ArticleCount != 2 {
		t.Errorf("ArticleCount = %d, want 2", got[1].ArticleCount)
	}
	if got[0].Label != "negative" {
		t.Errorf("Label = %q, want negative", got[0].Label)
	}
}

func TestSentimentTimelineRoundsMean(t *testing.T) {
	articles := []models.NewsArticle{
		{Published: "2026-08-02", Score: 0.1},
		{Published: "2026-08-02", Score: 0.1},
		{Published: "2026-08-02", Score: 0.2},
	}
	got := SentimentTimeline(articles)
	if len(got) != 1 {
		t.Fatalf("got %d points, want 1", len(got))
	}
	if got[0].Score != 0.13 {
		t.Errorf("mean score = %v, want 0.13", got[0].Score)
	}
}

func TestPortfolioRecompute(t *testing.T) {
	raw := RawPortfolio{
		SharpeRatio: 1.3,
		MaxDrawdown: -0.12,
		Positions: []RawPosition{
			{Stock: "Vietcombank", Symbol: "VCB", Quantity: 100, AvgPrice: 80, CurrentPrice: 90},
			{Stock: "FPT Corp", Symbol: "FPT", Quantity: 50, AvgPrice: 100, CurrentPrice: 80},
		},
	}
	got := Portfolio(raw)

	if got.TotalValue != 100*90+50*80 {
		t.Errorf("TotalValue = %v", got.TotalValue)
	}
	if got.TotalCost != 100*80+50*100 {
		t.Errorf("TotalCost = %v", got.TotalCost)
	}
	if got.TotalPnl != got.TotalValue-got.TotalCost {
		t.Errorf("TotalPnl = %v", got.TotalPnl)
	}
	if got.SharpeRatio != 1.3 || got.MaxDrawdown != -0.12 {
		t.Errorf("risk metrics not passed through: %v %v", got.SharpeRatio, got.MaxDrawdown)
	}

	var allocation float64
	for _, p := range got.Positions {
		allocation += p.Allocation
	}
	if allocation < 99.999 || allocation > 100.001 {
		t.Errorf("allocations sum to %v, want 100", allocation)
	}
	vcb := got.Positions[0]
	if vcb.Pnl != 1000 {
		t.Errorf("VCB Pnl = %v, want 1000", vcb.Pnl)
	}
	if vcb.PnlPercent != 12.5 {
		t.Errorf("VCB PnlPercent = %v, want 12.5", vcb.PnlPercent)
	}
}

func TestStocksDropUnidentified(t *testing.T) {
	got := Stocks([]RawStock{{Symbol: "VCB", LastPrice: 90}, {Name: "no symbol"}})
	if len(got) != 1 || got[0].Symbol != "VCB" {
		t.Errorf("Stocks = %+v", got)
	}
}
