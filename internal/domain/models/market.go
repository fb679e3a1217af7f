package models

// Stock is the canonical equity quote shape served to dashboard views.
// Symbol is the only identity; everything else is display data.
type Stock struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	LastPrice     float64 `json:"lastPrice"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
}

// MarketIndex is a composite index level.
type MarketIndex struct {
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// HistoricalBar is one daily OHLCV record.
// Well-formed bars satisfy low <= min(open, close) and high >= max(open, close).
type HistoricalBar struct {
	Date   string  `json:"date"` // ISO calendar date, day granularity
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// SentimentPoint is one day of the sentiment timeline shown next to the
// price chart.
type SentimentPoint struct {
	Date         string  `json:"date"`
	Score        float64 `json:"score"` // -1..1
	Label        string  `json:"label"` // "positive" | "negative" | "neutral"
	ArticleCount int     `json:"articleCount"`
}

// SentimentSignal is the latest aggregated sentiment for a symbol.
// The label is backend-supplied and not recomputed here.
type SentimentSignal struct {
	Symbol       string  `json:"symbol"`
	Score        float64 `json:"score"`
	Label        string  `json:"label"`
	Confidence   float64 `json:"confidence"`
	ArticleCount int     `json:"articleCount"`
	Date         string  `json:"date"`
}

// NewsArticle is a scored press article backing a sentiment signal.
type NewsArticle struct {
	ID        int64   `json:"id"`
	Symbol    string  `json:"symbol"`
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Source    string  `json:"source"`
	Published string  `json:"published"`
	Score     float64 `json:"score"`
}
