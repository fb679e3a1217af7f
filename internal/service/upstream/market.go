package upstream

import (
	"context"

	"MarketLens/internal/domain/models"
	domainservice "MarketLens/internal/domain/service"
	"MarketLens/internal/normalize"
	"MarketLens/internal/service/session"
)

// MarketClient serves stock quotes and index levels.
type MarketClient struct {
	t *Transport
}

func NewMarketClient(t *Transport) domainservice.MarketSource {
	return &MarketClient{t: t}
}

func (c *MarketClient) Stocks(ctx context.Context, sess *session.Session) ([]models.Stock, error) {
	var raw []normalize.RawStock
	if err := c.t.get(ctx, sess, "stocks", "/stocks/", nil, &raw); err != nil {
		return nil, err
	}
	return normalize.Stocks(raw), nil
}

func (c *MarketClient) Indices(ctx context.Context, sess *session.Session) ([]models.MarketIndex, error) {
	var raw []normalize.RawIndex
	if err := c.t.get(ctx, sess, "indices", "/market/indices", nil, &raw); err != nil {
		return nil, err
	}
	return normalize.Indices(raw), nil
}
