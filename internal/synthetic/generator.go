package synthetic

import (
	"hash/fnv"
	"math"
	"math/rand"

	"MarketLens/internal/domain/models"
	"MarketLens/internal/normalize"
	"MarketLens/pkg/util"
)

// Generator produces plausible market series used when a live signal is
// unavailable. All randomness is seeded, so two generators built with the
// same seed emit identical series; per-symbol salting keeps different
// symbols from sharing a walk.
type Generator struct {
	seed int64
}

func New(seed int64) *Generator {
	return &Generator{seed: seed}
}

// rng derives an independent deterministic stream for a salt string.
func (g *Generator) rng(salt string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(salt))
	return rand.New(rand.NewSource(g.seed ^ int64(h.Sum64())))
}

// History returns days+1 daily bars ending today, as a bounded random walk.
// Every bar is well-formed: open equals the prior close, low <= min(open,
// close) and high >= max(open, close), volume in a fixed positive range.
func (g *Generator) History(symbol string, days int) []models.HistoricalBar {
	rng := g.rng("history:" + symbol)
	price := 8.0 + rng.Float64()*2

	bars := make([]models.HistoricalBar, 0, days+1)
	for i := days; i >= 0; i-- {
		open := price
		close := open + (rng.Float64()-0.48)*0.3
		if close <= 0.1 {
			close = 0.1
		}
		high := math.Max(open, close) + rng.Float64()*0.15
		low := math.Min(open, close) - rng.Float64()*0.15
		if low <= 0 {
			low = math.Min(open, close) * 0.99
		}
		bars = append(bars, models.HistoricalBar{
			Date:   util.FormatDate(util.DaysFromNow(-i)),
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(close),
			Volume: 50000 + rng.Int63n(150000),
		})
		price = close
	}
	return bars
}

// Forecast returns a horizon-day forecast series starting tomorrow, shaped
// like the synthesizer's output: a gentle walk with a fixed-plus-jitter
// confidence band around each point.
func (g *Generator) Forecast(symbol string, horizon int) []models.ForecastPoint {
	if horizon <= 0 {
		horizon = 5
	}
	rng := g.rng("forecast:" + symbol)
	price := 8.0 + rng.Float64()*2

	points := make([]models.ForecastPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		price += (rng.Float64() - 0.45) * 0.25
		if price <= 0.1 {
			price = 0.1
		}
		points = append(points, models.ForecastPoint{
			Date:      util.FormatDate(util.DaysFromNow(i)),
			Predicted: round2(price),
			Lower:     round2(price - 0.15 - rng.Float64()*0.1),
			Upper:     round2(price + 0.15 + rng.Float64()*0.1),
		})
	}
	return points
}

// SentimentSeries returns days+1 daily sentiment points ending today, with
// scores in [-1, 1] and the label derived from the score.
func (g *Generator) SentimentSeries(symbol string, days int) []models.SentimentPoint {
	rng := g.rng("sentiment:" + symbol)

	points := make([]models.SentimentPoint, 0, days+1)
	for i := days; i >= 0; i-- {
		score := round2(rng.Float64()*2 - 1)
		points = append(points, models.SentimentPoint{
			Date:         util.FormatDate(util.DaysFromNow(-i)),
			Score:        score,
			Label:        normalize.LabelFromScore(score),
			ArticleCount: 1 + rng.Intn(8),
		})
	}
	return points
}

// Signal returns a single as-of-today sentiment signal for a symbol.
func (g *Generator) Signal(symbol string) models.SentimentSignal {
	rng := g.rng("signal:" + symbol)
	score := round2(rng.Float64()*2 - 1)
	return models.SentimentSignal{
		Symbol:       symbol,
		Score:        score,
		Label:        normalize.LabelFromScore(score),
		Confidence:   round2(0.5 + rng.Float64()*0.5),
		ArticleCount: 1 + rng.Intn(20),
		Date:         util.FormatDate(util.DaysFromNow(0)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
