package normalize

import (
	"math"
	"sort"

	"MarketLens/internal/domain/models"
	"MarketLens/pkg/util"
)

// SentimentSignal maps an upstream sentiment payload into the canonical
// signal. A missing label is derived from the score.
func SentimentSignal(r RawSentimentSignal) models.SentimentSignal {
	label := r.SentimentLabel
	if label == "" {
		label = LabelFromScore(r.SentimentScore)
	}
	return models.SentimentSignal{
		Symbol:       r.StockSymbol,
		Score:        r.SentimentScore,
		Label:        label,
		Confidence:   r.Confidence,
		ArticleCount: r.ArticleCount,
		Date:         r.Date,
	}
}

// Articles maps upstream news records to canonical articles.
func Articles(records []RawArticle) []models.NewsArticle {
	out := make([]models.NewsArticle, 0, len(records))
	for _, r := range records {
		out = append(out, models.NewsArticle{
			ID:        r.ID,
			Symbol:    r.StockSymbol,
			Title:     r.Title,
			URL:       r.URL,
			Source:    r.Source,
			Published: r.PublishedDate,
			Score:     r.SentimentScore,
		})
	}
	return out
}

// SentimentTimeline builds a daily sentiment series from scored articles.
// Articles are bucketed by calendar day of publication and each bucket's
// score is the mean of its members, rounded to two decimals like every
// other emitted score. Days are emitted oldest first; articles whose
// publication date cannot be parsed are skipped.
func SentimentTimeline(articles []models.NewsArticle) []models.SentimentPoint {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket)
	for _, a := range articles {
		ts, ok := util.ParseTime(a.Published)
		if !ok {
			continue
		}
		day := util.FormatDate(ts.UTC())
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.sum += a.Score
		b.count++
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]models.SentimentPoint, 0, len(days))
	for _, day := range days {
		b := buckets[day]
		score := math.Round(b.sum/float64(b.count)*100) / 100
		out = append(out, models.SentimentPoint{
			Date:         day,
			Score:        score,
			Label:        LabelFromScore(score),
			ArticleCount: b.count,
		})
	}
	return out
}
