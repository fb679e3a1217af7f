//go:build wireinject
// +build wireinject

package di

import (
	"MarketLens/pkg/config"
	"MarketLens/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideMetrics,
		ProvideSessionStore,
		ProvideGenerator,

		// Upstream transport and endpoint clients
		ProvideTransport,
		ProvideMarketSource,
		ProvideForecastSource,
		ProvideSentimentSource,
		ProvideAnomalySource,
		ProvideDecisionSource,
		ProvidePortfolioSource,
		ProvideAuthSource,
		ProvideChatSource,

		// Use cases
		ProvideViewsUseCase,
		ProvideAuthUseCase,
		ProvideActionsUseCase,

		// Alert fan-out
		ProvideHub,
		ProvideAlertPublisher,
		ProvideWatcher,

		// Serving
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
