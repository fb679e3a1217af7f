package upstream

import (
	"context"

	"MarketLens/internal/domain/models"
	domainservice "MarketLens/internal/domain/service"
	"MarketLens/internal/normalize"
	"MarketLens/internal/service/session"
)

// DecisionClient reads the decision engine's advisory recommendations.
type DecisionClient struct {
	t *Transport
}

func NewDecisionClient(t *Transport) domainservice.DecisionSource {
	return &DecisionClient{t: t}
}

func (c *DecisionClient) Recommendations(ctx context.Context, sess *session.Session) ([]models.Recommendation, error) {
	var raw []normalize.RawRecommendation
	if err := c.t.get(ctx, sess, "recommendations", "/decision/recommendations", nil, &raw); err != nil {
		return nil, err
	}
	return normalize.Recommendations(raw), nil
}

func (c *DecisionClient) Recommendation(ctx context.Context, sess *session.Session, symbol string) (models.Recommendation, error) {
	var raw normalize.RawRecommendation
	if err := c.t.get(ctx, sess, "recommendation", "/decision/recommendation/"+symbol, nil, &raw); err != nil {
		return models.Recommendation{}, err
	}
	return normalize.Recommendation(raw), nil
}
