package upstream

import (
	"context"

	"MarketLens/internal/domain/models"
	domainservice "MarketLens/internal/domain/service"
	"MarketLens/internal/normalize"
	"MarketLens/internal/service/session"
)

// ForecastClient fetches the model's sparse two-point prediction.
type ForecastClient struct {
	t *Transport
}

func NewForecastClient(t *Transport) domainservice.ForecastSource {
	return &ForecastClient{t: t}
}

func (c *ForecastClient) Predict(ctx context.Context, sess *session.Session, symbol string) (models.ForecastPrediction, error) {
	var raw normalize.RawForecast
	if err := c.t.get(ctx, sess, "forecast", "/forecast/predict/"+symbol, nil, &raw); err != nil {
		return models.ForecastPrediction{}, err
	}
	return models.ForecastPrediction{
		Symbol:       symbol,
		CurrentPrice: raw.CurrentPrice,
		PriceT1:      raw.PredictionT1,
		LogReturnT1:  raw.LogReturnT1,
		LogReturnT5:  raw.LogReturnT5,
	}, nil
}
