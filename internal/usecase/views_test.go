package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"MarketLens/internal/domain/models"
	"MarketLens/internal/service/session"
	"MarketLens/internal/synthetic"
	"MarketLens/pkg/logger"
)

var errDown = errors.New("connection refused")

type stubMarket struct {
	stocks  []models.Stock
	indices []models.MarketIndex
	err     error
}

func (s *stubMarket) Stocks(context.Context, *session.Session) ([]models.Stock, error) {
	return s.stocks, s.err
}
func (s *stubMarket) Indices(context.Context, *session.Session) ([]models.MarketIndex, error) {
	return s.indices, s.err
}

type stubForecast struct {
	prediction models.ForecastPrediction
	err        error
}

func (s *stubForecast) Predict(context.Context, *session.Session, string) (models.ForecastPrediction, error) {
	return s.prediction, s.err
}

type stubSentiment struct {
	signal   models.SentimentSignal
	articles []models.NewsArticle
	err      error
}

func (s *stubSentiment) Signal(context.Context, *session.Session, string) (models.SentimentSignal, error) {
	return s.signal, s.err
}
func (s *stubSentiment) Articles(context.Context, *session.Session, string) ([]models.NewsArticle, error) {
	return s.articles, s.err
}

type stubAnomalies struct {
	alerts    []models.Anomaly
	latest    []models.Anomaly
	alertsErr error
	latestErr error
}

func (s *stubAnomalies) Alerts(context.Context, *session.Session) ([]models.Anomaly, error) {
	return s.alerts, s.alertsErr
}
func (s *stubAnomalies) Latest(context.Context, *session.Session, int) ([]models.Anomaly, error) {
	return s.latest, s.latestErr
}

type stubDecisions struct {
	recs []models.Recommendation
	err  error
}

func (s *stubDecisions) Recommendations(context.Context, *session.Session) ([]models.Recommendation, error) {
	return s.recs, s.err
}
func (s *stubDecisions) Recommendation(context.Context, *session.Session, string) (models.Recommendation, error) {
	if len(s.recs) > 0 {
		return s.recs[0], s.err
	}
	return models.Recommendation{}, s.err
}

type stubPortfolio struct {
	summary models.PortfolioSummary
	err     error
}

func (s *stubPortfolio) Summary(context.Context, *session.Session) (models.PortfolioSummary, error) {
	return s.summary, s.err
}
func (s *stubPortfolio) SubmitTransaction(context.Context, *session.Session, models.TransactionRequest) (models.TransactionResult, error) {
	return models.TransactionResult{}, s.err
}

func testViews(t *testing.T, market *stubMarket, fc *stubForecast, sent *stubSentiment, an *stubAnomalies, dec *stubDecisions, pf *stubPortfolio) *ViewsUseCase {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewViewsUseCase(market, fc, sent, an, dec, pf,
		synthetic.New(42), nil, log,
		ViewsConfig{HistoryDays: 90, SentimentDays: 30, ForecastHorizon: 5, Timeout: 2 * time.Second})
}

func TestMarketOverviewAllLive(t *testing.T) {
	uc := testViews(t,
		&stubMarket{stocks: []models.Stock{{Symbol: "TT"}}, indices: []models.MarketIndex{{Name: "TUNINDEX"}}},
		&stubForecast{}, &stubSentiment{},
		&stubAnomalies{alerts: []models.Anomaly{{ID: "a1"}}},
		&stubDecisions{recs: []models.Recommendation{{Symbol: "TT"}}},
		&stubPortfolio{})

	view, err := uc.MarketOverview(context.Background(), session.Anonymous())
	if err != nil {
		t.Fatalf("MarketOverview: %v", err)
	}
	if len(view.Stocks) != 1 || view.Stocks[0].Symbol != "TT" {
		t.Errorf("Stocks = %+v", view.Stocks)
	}
	if len(view.Synthetic) != 0 {
		t.Errorf("Synthetic flags on all-live view: %v", view.Synthetic)
	}
}

func TestMarketOverviewDegradesPerSignal(t *testing.T) {
	uc := testViews(t,
		&stubMarket{err: errDown},
		&stubForecast{}, &stubSentiment{},
		&stubAnomalies{alerts: []models.Anomaly{{ID: "a1"}}},
		&stubDecisions{err: errDown},
		&stubPortfolio{})

	view, err := uc.MarketOverview(context.Background(), session.Anonymous())
	if err != nil {
		t.Fatalf("MarketOverview: %v", err)
	}
	if len(view.Stocks) == 0 {
		t.Error("failed stocks signal not substituted")
	}
	if !view.Synthetic["stocks"] || !view.Synthetic["indices"] || !view.Synthetic["recommendations"] {
		t.Errorf("Synthetic = %v", view.Synthetic)
	}
	if view.Synthetic["anomalies"] {
		t.Error("live anomalies flagged synthetic")
	}
	if len(view.Anomalies) != 1 || view.Anomalies[0].ID != "a1" {
		t.Errorf("Anomalies = %+v", view.Anomalies)
	}
}

func TestStockAnalysisForecastFallback(t *testing.T) {
	uc := testViews(t,
		&stubMarket{},
		&stubForecast{err: errDown},
		&stubSentiment{articles: []models.NewsArticle{{Published: "2026-08-01", Score: 0.5}}},
		&stubAnomalies{}, &stubDecisions{}, &stubPortfolio{})

	view, err := uc.StockAnalysis(context.Background(), session.Anonymous(), "TT", 90)
	if err != nil {
		t.Fatalf("StockAnalysis: %v", err)
	}
	if len(view.Forecast) != 5 {
		t.Errorf("fallback forecast has %d points, want 5", len(view.Forecast))
	}
	for i, p := range view.Forecast {
		if p.Lower > p.Predicted || p.Predicted > p.Upper {
			t.Errorf("point %d: band [%v, %v] misses %v", i, p.Lower, p.Upper, p.Predicted)
		}
	}
	if !view.Synthetic["forecast"] {
		t.Error("fallback forecast not flagged synthetic")
	}
	if view.Synthetic["sentiment"] {
		t.Error("live sentiment flagged synthetic")
	}
	if len(view.History) != 91 {
		t.Errorf("history has %d bars, want 91", len(view.History))
	}
}

func TestStockAnalysisLiveForecast(t *testing.T) {
	uc := testViews(t,
		&stubMarket{},
		&stubForecast{prediction: models.ForecastPrediction{Symbol: "TT", CurrentPrice: 100, LogReturnT1: 0.01, LogReturnT5: 0.05}},
		&stubSentiment{err: errDown},
		&stubAnomalies{}, &stubDecisions{}, &stubPortfolio{})

	view, err := uc.StockAnalysis(context.Background(), session.Anonymous(), "TT", 30)
	if err != nil {
		t.Fatalf("StockAnalysis: %v", err)
	}
	if view.Synthetic["forecast"] {
		t.Error("live forecast flagged synthetic")
	}
	if !view.Synthetic["sentiment"] {
		t.Error("failed sentiment not flagged synthetic")
	}
	if len(view.Sentiment) != 31 {
		t.Errorf("fallback sentiment has %d points, want 31", len(view.Sentiment))
	}
}

func TestStockAnalysisInvalidPredictionFallsBack(t *testing.T) {
	uc := testViews(t,
		&stubMarket{},
		&stubForecast{prediction: models.ForecastPrediction{Symbol: "TT", CurrentPrice: -1}},
		&stubSentiment{err: errDown},
		&stubAnomalies{}, &stubDecisions{}, &stubPortfolio{})

	view, err := uc.StockAnalysis(context.Background(), session.Anonymous(), "TT", 30)
	if err != nil {
		t.Fatalf("StockAnalysis: %v", err)
	}
	if !view.Synthetic["forecast"] {
		t.Error("invalid prediction not substituted")
	}
}

func TestStockAnalysisCarriesSignalAndRecommendation(t *testing.T) {
	uc := testViews(t,
		&stubMarket{},
		&stubForecast{prediction: models.ForecastPrediction{Symbol: "TT", CurrentPrice: 100, LogReturnT1: 0.01, LogReturnT5: 0.05}},
		&stubSentiment{
			signal:   models.SentimentSignal{Symbol: "TT", Score: 0.72, Label: "positive", Confidence: 0.9},
			articles: []models.NewsArticle{{Published: "2026-08-01", Score: 0.5}},
		},
		&stubAnomalies{},
		&stubDecisions{recs: []models.Recommendation{{Symbol: "TT", Action: models.ActionBuy, Confidence: 0.82}}},
		&stubPortfolio{})

	view, err := uc.StockAnalysis(context.Background(), session.Anonymous(), "TT", 30)
	if err != nil {
		t.Fatalf("StockAnalysis: %v", err)
	}
	if view.Signal.Score != 0.72 || view.Signal.Label != "positive" {
		t.Errorf("signal = %+v, want live upstream signal", view.Signal)
	}
	if view.Recommendation.Action != models.ActionBuy {
		t.Errorf("recommendation action = %q, want BUY", view.Recommendation.Action)
	}
	if view.Synthetic["signal"] || view.Synthetic["recommendation"] {
		t.Error("live signal or recommendation flagged synthetic")
	}
}

func TestStockAnalysisSignalAndRecommendationFallback(t *testing.T) {
	uc := testViews(t,
		&stubMarket{},
		&stubForecast{err: errDown},
		&stubSentiment{err: errDown},
		&stubAnomalies{},
		&stubDecisions{err: errDown},
		&stubPortfolio{})

	view, err := uc.StockAnalysis(context.Background(), session.Anonymous(), "XYZ", 30)
	if err != nil {
		t.Fatalf("StockAnalysis: %v", err)
	}
	if !view.Synthetic["signal"] || !view.Synthetic["recommendation"] {
		t.Error("failed signal or recommendation not flagged synthetic")
	}
	if view.Signal.Symbol != "XYZ" || view.Signal.Label == "" {
		t.Errorf("fallback signal = %+v", view.Signal)
	}
	if view.Recommendation.Action != models.ActionHold {
		t.Errorf("fallback recommendation for uncovered symbol = %q, want HOLD", view.Recommendation.Action)
	}
}

func TestMonitoringMergesFeeds(t *testing.T) {
	uc := testViews(t,
		&stubMarket{}, &stubForecast{}, &stubSentiment{},
		&stubAnomalies{
			alerts: []models.Anomaly{{ID: "1", Symbol: "TT"}, {ID: "2", Symbol: "SFBT"}},
			latest: []models.Anomaly{{ID: "2", Symbol: "SFBT"}, {ID: "3", Symbol: "DH"}},
		},
		&stubDecisions{}, &stubPortfolio{})

	view, err := uc.Monitoring(context.Background(), session.Anonymous(), 10)
	if err != nil {
		t.Fatalf("Monitoring: %v", err)
	}
	if len(view.Anomalies) != 3 {
		t.Errorf("merged %d anomalies, want 3 deduplicated: %+v", len(view.Anomalies), view.Anomalies)
	}
}

func TestMonitoringAlertsWinDuplicateIDs(t *testing.T) {
	uc := testViews(t,
		&stubMarket{}, &stubForecast{}, &stubSentiment{},
		&stubAnomalies{
			alerts: []models.Anomaly{{ID: "1", Symbol: "TT", Severity: models.SeverityHigh}},
			latest: []models.Anomaly{{ID: "1", Symbol: "TT", Severity: models.SeverityCritical}, {ID: "2", Symbol: "DH"}},
		},
		&stubDecisions{}, &stubPortfolio{})

	// The two feeds finish in goroutine order; the merge must not depend
	// on that order, so exercise it repeatedly.
	for i := 0; i < 25; i++ {
		view, err := uc.Monitoring(context.Background(), session.Anonymous(), 10)
		if err != nil {
			t.Fatalf("Monitoring: %v", err)
		}
		if len(view.Anomalies) != 2 {
			t.Fatalf("merged %d anomalies, want 2", len(view.Anomalies))
		}
		if view.Anomalies[0].ID != "1" || view.Anomalies[1].ID != "2" {
			t.Fatalf("merge order = %s, %s; want alerts before detections", view.Anomalies[0].ID, view.Anomalies[1].ID)
		}
		if view.Anomalies[0].Severity != models.SeverityHigh {
			t.Fatalf("duplicate ID severity = %q, want alert feed's %q", view.Anomalies[0].Severity, models.SeverityHigh)
		}
	}
}

func TestMonitoringOneFeedEnough(t *testing.T) {
	uc := testViews(t,
		&stubMarket{}, &stubForecast{}, &stubSentiment{},
		&stubAnomalies{alerts: []models.Anomaly{{ID: "1"}}, latestErr: errDown},
		&stubDecisions{}, &stubPortfolio{})

	view, err := uc.Monitoring(context.Background(), session.Anonymous(), 10)
	if err != nil {
		t.Fatalf("Monitoring: %v", err)
	}
	if view.Synthetic["anomalies"] {
		t.Error("flagged synthetic although one feed succeeded")
	}
	if len(view.Anomalies) != 1 {
		t.Errorf("got %d anomalies", len(view.Anomalies))
	}
}

func TestMonitoringBothFeedsDown(t *testing.T) {
	uc := testViews(t,
		&stubMarket{}, &stubForecast{}, &stubSentiment{},
		&stubAnomalies{alertsErr: errDown, latestErr: errDown},
		&stubDecisions{}, &stubPortfolio{})

	view, err := uc.Monitoring(context.Background(), session.Anonymous(), 10)
	if err != nil {
		t.Fatalf("Monitoring: %v", err)
	}
	if !view.Synthetic["anomalies"] {
		t.Error("total feed failure not flagged synthetic")
	}
	if len(view.Anomalies) == 0 {
		t.Error("no synthetic anomalies substituted")
	}
}

func TestPortfolioPropagatesFailure(t *testing.T) {
	uc := testViews(t,
		&stubMarket{}, &stubForecast{}, &stubSentiment{}, &stubAnomalies{}, &stubDecisions{},
		&stubPortfolio{err: errDown})

	if _, err := uc.Portfolio(context.Background(), session.Anonymous()); !errors.Is(err, errDown) {
		t.Errorf("Portfolio error = %v, want propagation", err)
	}
}

func TestViewRespectsCancelledContext(t *testing.T) {
	uc := testViews(t,
		&stubMarket{}, &stubForecast{}, &stubSentiment{}, &stubAnomalies{}, &stubDecisions{}, &stubPortfolio{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := uc.MarketOverview(ctx, session.Anonymous()); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
