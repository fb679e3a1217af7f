package di

import (
	"fmt"
	"time"

	domrepo "MarketLens/internal/domain/repository"
	domservice "MarketLens/internal/domain/service"
	"MarketLens/internal/handler/api"
	"MarketLens/internal/handler/ws"
	internalrepo "MarketLens/internal/repository"
	"MarketLens/internal/service/session"
	"MarketLens/internal/service/upstream"
	"MarketLens/internal/synthetic"
	"MarketLens/internal/usecase"
	"MarketLens/pkg/config"
	xhttp "MarketLens/pkg/http"
	applogger "MarketLens/pkg/logger"
	"MarketLens/pkg/metrics"
	"MarketLens/pkg/server"
)

// ProvideLogger creates the application logger with the error-log collector
// attached; the collector feeds the system metrics endpoint.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	log, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	log.AddCollector(&applogger.CollectionConfig{
		TimeInterval:   30 * time.Second,
		CountThreshold: 100,
		RetainLimit:    50,
	})
	return log, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideSessionStore creates the configured session backend.
func ProvideSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case "redis":
		store, err := session.NewRedisStore(session.RedisConfig{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("redis session store: %w", err)
		}
		return store, nil
	default:
		return session.NewMemoryStore(), nil
	}
}

// ProvideGenerator creates the seeded synthetic generator. A zero seed picks
// a wall-clock seed; tests pass an explicit one for reproducibility.
func ProvideGenerator(cfg *config.Config) *synthetic.Generator {
	seed := cfg.Synthetic.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return synthetic.New(seed)
}

// ProvideTransport creates the authenticated upstream transport.
func ProvideTransport(cfg *config.Config, m domrepo.Metrics, log *applogger.Logger) *upstream.Transport {
	return upstream.NewTransport(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, m, log)
}

func ProvideMarketSource(t *upstream.Transport) domservice.MarketSource { return upstream.NewMarketClient(t) }

func ProvideForecastSource(t *upstream.Transport) domservice.ForecastSource {
	return upstream.NewForecastClient(t)
}

func ProvideSentimentSource(t *upstream.Transport) domservice.SentimentSource {
	return upstream.NewSentimentClient(t)
}

func ProvideAnomalySource(t *upstream.Transport) domservice.AnomalySource {
	return upstream.NewAnomalyClient(t)
}

func ProvideDecisionSource(t *upstream.Transport) domservice.DecisionSource {
	return upstream.NewDecisionClient(t)
}

func ProvidePortfolioSource(t *upstream.Transport) domservice.PortfolioSource {
	return upstream.NewPortfolioClient(t)
}

func ProvideAuthSource(t *upstream.Transport, cfg *config.Config) domservice.AuthSource {
	return upstream.NewAuthClient(t, cfg.Session.TTL)
}

func ProvideChatSource(t *upstream.Transport) domservice.ChatSource { return upstream.NewChatClient(t) }

// ProvideViewsUseCase creates the resilient view aggregator.
func ProvideViewsUseCase(
	market domservice.MarketSource,
	forecasts domservice.ForecastSource,
	sentiment domservice.SentimentSource,
	anomalies domservice.AnomalySource,
	decisions domservice.DecisionSource,
	portfolio domservice.PortfolioSource,
	gen *synthetic.Generator,
	m domrepo.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.ViewsUseCase {
	return usecase.NewViewsUseCase(market, forecasts, sentiment, anomalies, decisions, portfolio, gen, m, log,
		usecase.ViewsConfig{
			HistoryDays:     cfg.Synthetic.HistoryDays,
			SentimentDays:   cfg.Synthetic.SentimentDays,
			ForecastHorizon: cfg.Synthetic.ForecastHorizon,
			Timeout:         cfg.Upstream.Timeout,
		})
}

// ProvideAuthUseCase creates the session-owning auth usecase.
func ProvideAuthUseCase(auth domservice.AuthSource, store session.Store, cfg *config.Config, log *applogger.Logger) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(auth, store, cfg.Session.TTL, log)
}

// ProvideActionsUseCase creates the pass-through actions usecase.
func ProvideActionsUseCase(portfolio domservice.PortfolioSource, chat domservice.ChatSource) *usecase.ActionsUseCase {
	return usecase.NewActionsUseCase(portfolio, chat)
}

// ProvideHub creates the websocket alert hub.
func ProvideHub(log *applogger.Logger, cfg *config.Config) *ws.Hub {
	return ws.NewHub(log, cfg.Alerts.HistoryLimit)
}

// ProvideAlertPublisher creates the Kafka alert publisher, or nil when
// Kafka publishing is disabled.
func ProvideAlertPublisher(cfg *config.Config) (domrepo.AlertPublisher, error) {
	k := cfg.Alerts.Kafka
	if !k.Enabled {
		return nil, nil
	}
	publisher, err := internalrepo.NewKafkaAlertPublisher(internalrepo.KafkaAlertConfig{
		Brokers:      k.Brokers,
		Topic:        k.Topic,
		RequiredAcks: k.RequiredAcks,
		Compression:  k.Compression,
		MaxAttempts:  k.MaxAttempts,
		WriteTimeout: k.WriteTimeout,
		ReadTimeout:  k.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("alert publisher: %w", err)
	}
	return publisher, nil
}

// ProvideWatcher creates the background anomaly watcher.
func ProvideWatcher(
	anomalies domservice.AnomalySource,
	hub *ws.Hub,
	publisher domrepo.AlertPublisher,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.AnomalyWatcher {
	return usecase.NewAnomalyWatcher(anomalies, hub, publisher, log, cfg.Alerts.PollInterval, 20)
}

// ProvideHandler composes every route group into one HTTP handler.
func ProvideHandler(
	log *applogger.Logger,
	views *usecase.ViewsUseCase,
	auth *usecase.AuthUseCase,
	actions *usecase.ActionsUseCase,
	hub *ws.Hub,
) xhttp.Handler {
	return api.NewRoot(
		api.NewViewsHandler(log, views, auth),
		api.NewAuthHandler(log, auth),
		api.NewActionsHandler(log, actions, auth),
		api.NewSystemHandler(log),
		hub,
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	watcher *usecase.AnomalyWatcher,
	sessions session.Store,
	publisher domrepo.AlertPublisher,
) *server.App {
	return server.New(cfg, log, handler, watcher, sessions, publisher)
}
