package upstream

import (
	"context"

	"MarketLens/internal/domain/models"
	domainservice "MarketLens/internal/domain/service"
	"MarketLens/internal/normalize"
	"MarketLens/internal/service/session"
)

// PortfolioClient reads the simulated portfolio and submits paper trades.
type PortfolioClient struct {
	t *Transport
}

func NewPortfolioClient(t *Transport) domainservice.PortfolioSource {
	return &PortfolioClient{t: t}
}

func (c *PortfolioClient) Summary(ctx context.Context, sess *session.Session) (models.PortfolioSummary, error) {
	var raw normalize.RawPortfolio
	if err := c.t.get(ctx, sess, "portfolio", "/portfolio/", nil, &raw); err != nil {
		return models.PortfolioSummary{}, err
	}
	return normalize.Portfolio(raw), nil
}

func (c *PortfolioClient) SubmitTransaction(ctx context.Context, sess *session.Session, req models.TransactionRequest) (models.TransactionResult, error) {
	var result models.TransactionResult
	if err := c.t.post(ctx, sess, "transaction", "/portfolio/transaction", req, &result); err != nil {
		return models.TransactionResult{}, err
	}
	return result, nil
}
