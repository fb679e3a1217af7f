package forecast

import (
	"errors"
	"fmt"
	"math"

	"MarketLens/internal/domain/models"
	"MarketLens/pkg/util"
)

// The upstream model emits only a current price, an authoritative one-day
// price target and two log-returns. The dashboard needs a full per-day series
// with confidence bands, so we expand the sparse prediction by interpolating
// between the one-day and horizon-end price targets and widening the band as
// the horizon moves out.

const (
	baseVolatility = 0.02
	volatilityStep = 0.01
)

// ErrInvalidPrediction marks upstream predictions that cannot be expanded:
// non-positive prices or non-finite returns. Callers fall back to a
// synthetic series.
var ErrInvalidPrediction = errors.New("invalid forecast prediction")

// Synthesize expands a sparse prediction into a horizon-day forecast series.
// The first point is dated tomorrow; subsequent points follow calendar days.
func Synthesize(p models.ForecastPrediction, horizon int) ([]models.ForecastPoint, error) {
	if horizon <= 0 {
		horizon = 5
	}
	if p.CurrentPrice <= 0 || !isFinite(p.CurrentPrice) {
		return nil, fmt.Errorf("%w: current price %v", ErrInvalidPrediction, p.CurrentPrice)
	}
	if !isFinite(p.LogReturnT1) || !isFinite(p.LogReturnT5) {
		return nil, fmt.Errorf("%w: non-finite log return", ErrInvalidPrediction)
	}

	// The backend's own day-1 price wins when present; the log-return only
	// backs it up for older payloads that omit it.
	p1 := p.PriceT1
	if p1 <= 0 || !isFinite(p1) {
		p1 = p.CurrentPrice * math.Exp(p.LogReturnT1)
	}
	pEnd := p.CurrentPrice * math.Exp(p.LogReturnT5)

	points := make([]models.ForecastPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		predicted := interpolate(p1, pEnd, i, horizon)
		vol := baseVolatility + float64(i)*volatilityStep
		points = append(points, models.ForecastPoint{
			Date:      util.FormatDate(util.DaysFromNow(i)),
			Predicted: round2(predicted),
			Lower:     round2(predicted * (1 - vol)),
			Upper:     round2(predicted * (1 + vol)),
		})
	}
	return points, nil
}

// interpolate places day i on the line through the day-1 target and the
// horizon-end target, so day 1 is exactly p1 and day horizon exactly pEnd.
func interpolate(p1, pEnd float64, day, horizon int) float64 {
	if day <= 1 || horizon <= 1 {
		return p1
	}
	return p1 + (pEnd-p1)*float64(day-1)/float64(horizon-1)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
