package service

import (
	"context"

	"MarketLens/internal/domain/models"
	"MarketLens/internal/service/session"
)

// Upstream signal sources consumed by the view aggregator. Each maps to one
// endpoint group of the intelligence backend; implementations live in
// internal/service/upstream.

type MarketSource interface {
	Stocks(ctx context.Context, sess *session.Session) ([]models.Stock, error)
	Indices(ctx context.Context, sess *session.Session) ([]models.MarketIndex, error)
}

type ForecastSource interface {
	Predict(ctx context.Context, sess *session.Session, symbol string) (models.ForecastPrediction, error)
}

type SentimentSource interface {
	Signal(ctx context.Context, sess *session.Session, symbol string) (models.SentimentSignal, error)
	Articles(ctx context.Context, sess *session.Session, symbol string) ([]models.NewsArticle, error)
}

type AnomalySource interface {
	Alerts(ctx context.Context, sess *session.Session) ([]models.Anomaly, error)
	Latest(ctx context.Context, sess *session.Session, limit int) ([]models.Anomaly, error)
}

type DecisionSource interface {
	Recommendations(ctx context.Context, sess *session.Session) ([]models.Recommendation, error)
	Recommendation(ctx context.Context, sess *session.Session, symbol string) (models.Recommendation, error)
}

type PortfolioSource interface {
	Summary(ctx context.Context, sess *session.Session) (models.PortfolioSummary, error)
	SubmitTransaction(ctx context.Context, sess *session.Session, req models.TransactionRequest) (models.TransactionResult, error)
}

type AuthSource interface {
	Login(ctx context.Context, sess *session.Session, username, password string) error
	Register(ctx context.Context, sess *session.Session, req models.RegisterRequest) error
	Me(ctx context.Context, sess *session.Session) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, sess *session.Session, req models.ProfileUpdateRequest) (models.UserProfile, error)
	SubmitQuiz(ctx context.Context, sess *session.Session, req models.QuizRequest) (models.UserProfile, error)
}

type ChatSource interface {
	Query(ctx context.Context, sess *session.Session, message string) (models.ChatReply, error)
}
