package upstream

import (
	"context"

	"MarketLens/internal/domain/models"
	domainservice "MarketLens/internal/domain/service"
	"MarketLens/internal/normalize"
	"MarketLens/internal/service/session"
)

// SentimentClient serves the aggregated signal and scored articles.
type SentimentClient struct {
	t *Transport
}

func NewSentimentClient(t *Transport) domainservice.SentimentSource {
	return &SentimentClient{t: t}
}

func (c *SentimentClient) Signal(ctx context.Context, sess *session.Session, symbol string) (models.SentimentSignal, error) {
	var raw normalize.RawSentimentSignal
	if err := c.t.get(ctx, sess, "sentiment", "/sentiment/"+symbol, nil, &raw); err != nil {
		return models.SentimentSignal{}, err
	}
	return normalize.SentimentSignal(raw), nil
}

func (c *SentimentClient) Articles(ctx context.Context, sess *session.Session, symbol string) ([]models.NewsArticle, error) {
	var raw []normalize.RawArticle
	if err := c.t.get(ctx, sess, "sentiment_articles", "/sentiment/"+symbol+"/articles", nil, &raw); err != nil {
		return nil, err
	}
	return normalize.Articles(raw), nil
}
