package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"MarketLens/internal/domain/models"
	domrepo "MarketLens/internal/domain/repository"
	domservice "MarketLens/internal/domain/service"
	"MarketLens/internal/forecast"
	"MarketLens/internal/normalize"
	"MarketLens/internal/service/session"
	"MarketLens/internal/synthetic"
	"MarketLens/pkg/logger"
)

// ViewsConfig sizes the series the views carry.
type ViewsConfig struct {
	HistoryDays     int
	SentimentDays   int
	ForecastHorizon int
	Timeout         time.Duration
}

// ViewsUseCase assembles render-ready view objects. Per view it fans out to
// the upstream signals concurrently and joins, so wall-clock latency is
// bounded by the slowest fetch. Auxiliary signal failures are swallowed:
// the view is completed with seeded synthetic data and the substitution is
// logged, counted, and flagged on the view's Synthetic map. Identity-bearing
// operations (portfolio) propagate failures instead.
type ViewsUseCase struct {
	market    domservice.MarketSource
	forecasts domservice.ForecastSource
	sentiment domservice.SentimentSource
	anomalies domservice.AnomalySource
	decisions domservice.DecisionSource
	portfolio domservice.PortfolioSource

	gen     *synthetic.Generator
	metrics domrepo.Metrics
	log     *logger.Logger
	cfg     ViewsConfig
}

func NewViewsUseCase(
	market domservice.MarketSource,
	forecasts domservice.ForecastSource,
	sentiment domservice.SentimentSource,
	anomalies domservice.AnomalySource,
	decisions domservice.DecisionSource,
	portfolio domservice.PortfolioSource,
	gen *synthetic.Generator,
	metrics domrepo.Metrics,
	log *logger.Logger,
	cfg ViewsConfig,
) *ViewsUseCase {
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = 90
	}
	if cfg.SentimentDays <= 0 {
		cfg.SentimentDays = 30
	}
	if cfg.ForecastHorizon <= 0 {
		cfg.ForecastHorizon = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &ViewsUseCase{
		market:    market,
		forecasts: forecasts,
		sentiment: sentiment,
		anomalies: anomalies,
		decisions: decisions,
		portfolio: portfolio,
		gen:       gen,
		metrics:   metrics,
		log:       log,
		cfg:       cfg,
	}
}

var errEmptyTimeline = errors.New("no dated articles for sentiment timeline")

type item struct {
	name string
	val  interface{}
	err  error
}

// substituted logs and counts one auxiliary fallback.
func (uc *ViewsUseCase) substituted(signal string, err error) {
	uc.log.Warn("signal unavailable, serving synthetic data",
		logger.String("signal", signal),
		logger.Error(err))
	if uc.metrics != nil {
		uc.metrics.RecordFallback(signal)
	}
}

func (uc *ViewsUseCase) observe(op string, start time.Time) {
	if uc.metrics != nil {
		uc.metrics.RecordLatency(op, time.Since(start).Seconds())
	}
}

// MarketOverview fans out to stocks, indices, anomalies and recommendations.
// Every signal is auxiliary; the view always completes.
func (uc *ViewsUseCase) MarketOverview(ctx context.Context, sess *session.Session) (*models.MarketOverviewView, error) {
	defer uc.observe("market_overview", time.Now())

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	view := &models.MarketOverviewView{
		Timestamp: time.Now().UTC(),
		Synthetic: map[string]bool{},
	}

	ch := make(chan item, 4)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.market.Stocks(ctx, sess)
		ch <- item{"stocks", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.market.Indices(ctx, sess)
		ch <- item{"indices", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.anomalies.Alerts(ctx, sess)
		ch <- item{"anomalies", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.decisions.Recommendations(ctx, sess)
		ch <- item{"recommendations", v, err}
	}()

	go func() { wg.Wait(); close(ch) }()

	for {
		if err := ctx.Err(); err != nil {
			// Consumer gone; in-flight results are discarded.
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case it, ok := <-ch:
			if !ok {
				return view, nil
			}
			switch it.name {
			case "stocks":
				if it.err != nil {
					uc.substituted(it.name, it.err)
					view.Stocks = uc.gen.Stocks()
					view.Synthetic[it.name] = true
					continue
				}
				view.Stocks = it.val.([]models.Stock)
			case "indices":
				if it.err != nil {
					uc.substituted(it.name, it.err)
					view.Indices = uc.gen.Indices()
					view.Synthetic[it.name] = true
					continue
				}
				view.Indices = it.val.([]models.MarketIndex)
			case "anomalies":
				if it.err != nil {
					uc.substituted(it.name, it.err)
					view.Anomalies = uc.gen.Anomalies()
					view.Synthetic[it.name] = true
					continue
				}
				view.Anomalies = it.val.([]models.Anomaly)
			case "recommendations":
				if it.err != nil {
					uc.substituted(it.name, it.err)
					view.Recommendations = uc.gen.Recommendations()
					view.Synthetic[it.name] = true
					continue
				}
				view.Recommendations = it.val.([]models.Recommendation)
			}
		}
	}
}

// StockAnalysis assembles the per-symbol view: daily history, forecast with
// confidence bands, a sentiment timeline, the aggregate sentiment signal and
// the decision engine's recommendation. The upstream exposes no history
// endpoint, so the history series is always generated; every fetched signal
// degrades to synthetic on failure.
func (uc *ViewsUseCase) StockAnalysis(ctx context.Context, sess *session.Session, symbol string, days int) (*models.StockAnalysisView, error) {
	defer uc.observe("stock_analysis", time.Now())

	if days <= 0 {
		days = uc.cfg.HistoryDays
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	view := &models.StockAnalysisView{
		Symbol:    symbol,
		Timestamp: time.Now().UTC(),
		History:   uc.gen.History(symbol, days),
		Synthetic: map[string]bool{"history": true},
	}

	ch := make(chan item, 4)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.synthesizeForecast(ctx, sess, symbol)
		ch <- item{"forecast", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.sentimentTimeline(ctx, sess, symbol)
		ch <- item{"sentiment", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.sentiment.Signal(ctx, sess, symbol)
		ch <- item{"signal", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.decisions.Recommendation(ctx, sess, symbol)
		ch <- item{"recommendation", v, err}
	}()

	go func() { wg.Wait(); close(ch) }()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case it, ok := <-ch:
			if !ok {
				return view, nil
			}
			switch it.name {
			case "forecast":
				if it.err != nil {
					uc.substituted(it.name, it.err)
					view.Forecast = uc.gen.Forecast(symbol, uc.cfg.ForecastHorizon)
					view.Synthetic[it.name] = true
					continue
				}
				view.Forecast = it.val.([]models.ForecastPoint)
			case "sentiment":
				if it.err != nil {
					uc.substituted(it.name, it.err)
					view.Sentiment = uc.gen.SentimentSeries(symbol, uc.cfg.SentimentDays)
					view.Synthetic[it.name] = true
					continue
				}
				view.Sentiment = it.val.([]models.SentimentPoint)
			case "signal":
				if it.err != nil {
					uc.substituted(it.name, it.err)
					view.Signal = uc.gen.Signal(symbol)
					view.Synthetic[it.name] = true
					continue
				}
				view.Signal = it.val.(models.SentimentSignal)
			case "recommendation":
				if it.err != nil {
					uc.substituted(it.name, it.err)
					view.Recommendation = uc.gen.Recommendation(symbol)
					view.Synthetic[it.name] = true
					continue
				}
				view.Recommendation = it.val.(models.Recommendation)
			}
		}
	}
}

func (uc *ViewsUseCase) synthesizeForecast(ctx context.Context, sess *session.Session, symbol string) ([]models.ForecastPoint, error) {
	prediction, err := uc.forecasts.Predict(ctx, sess, symbol)
	if err != nil {
		return nil, err
	}
	return forecast.Synthesize(prediction, uc.cfg.ForecastHorizon)
}

func (uc *ViewsUseCase) sentimentTimeline(ctx context.Context, sess *session.Session, symbol string) ([]models.SentimentPoint, error) {
	articles, err := uc.sentiment.Articles(ctx, sess, symbol)
	if err != nil {
		return nil, err
	}
	points := normalize.SentimentTimeline(articles)
	if len(points) == 0 {
		return nil, errEmptyTimeline
	}
	return points, nil
}

// Monitoring merges the two anomaly feeds into one list. Either feed alone
// is enough; only when both fail does the view fall back to synthetic data.
func (uc *ViewsUseCase) Monitoring(ctx context.Context, sess *session.Session, limit int) (*models.MonitoringView, error) {
	defer uc.observe("monitoring", time.Now())

	if limit <= 0 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	ch := make(chan item, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.anomalies.Alerts(ctx, sess)
		ch <- item{"alerts", v, err}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := uc.anomalies.Latest(ctx, sess, limit)
		ch <- item{"detections", v, err}
	}()

	go func() { wg.Wait(); close(ch) }()

	view := &models.MonitoringView{
		Timestamp: time.Now().UTC(),
		Synthetic: map[string]bool{},
	}

	// Collect both feeds before merging so alerts always take precedence
	// over detections, whatever order the fetches finish in.
	var alerts, detections []models.Anomaly
	failures := 0
	var lastErr error

	for done := false; !done; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case it, ok := <-ch:
			if !ok {
				done = true
				continue
			}
			if it.err != nil {
				failures++
				lastErr = it.err
				continue
			}
			switch it.name {
			case "alerts":
				alerts = it.val.([]models.Anomaly)
			case "detections":
				detections = it.val.([]models.Anomaly)
			}
		}
	}

	if failures == 2 {
		uc.substituted("anomalies", lastErr)
		view.Anomalies = uc.gen.Anomalies()
		view.Synthetic["anomalies"] = true
		return view, nil
	}

	var merged []models.Anomaly
	seen := map[string]bool{}
	for _, a := range alerts {
		if a.ID != "" && seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		merged = append(merged, a)
	}
	for _, a := range detections {
		if a.ID != "" && seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		merged = append(merged, a)
	}
	view.Anomalies = merged
	return view, nil
}

// Portfolio is identity-bearing: upstream failure propagates to the caller
// rather than degrading to synthetic numbers.
func (uc *ViewsUseCase) Portfolio(ctx context.Context, sess *session.Session) (*models.PortfolioView, error) {
	defer uc.observe("portfolio", time.Now())

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	summary, err := uc.portfolio.Summary(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &models.PortfolioView{
		Timestamp: time.Now().UTC(),
		Summary:   summary,
	}, nil
}
