package normalize

import "encoding/json"

// Raw wire shapes accepted from the upstream backend. The anomaly feed has
// two distinct variants depending on which endpoint served it; each gets its
// own normalizer branch instead of duck-typed field probing.

// AlertRecord is the pre-normalized shape from GET /alerts/.
type AlertRecord struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Stock       string `json:"stock"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Resolved    bool   `json:"resolved"`
}

// DetectionRecord is the detector-native shape from GET /anomaly/latest:
// server-assigned numeric id, uppercase type enum, raw confidence float.
type DetectionRecord struct {
	ID          int64   `json:"id"`
	StockSymbol string  `json:"stock_symbol"`
	AlertType   string  `json:"alert_type"`
	Description string  `json:"description"`
	Limitations string  `json:"limitations"`
	Confidence  float64 `json:"confidence"`
	CreatedAt   string  `json:"created_at"`
}

// RawStock is the quote shape from GET /stocks/.
type RawStock struct {
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

// RawIndex is the shape from GET /market/indices.
type RawIndex struct {
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// RawRecommendation is a decision-engine record. Metrics is kept as raw JSON
// so its key order can be preserved when flattening to display signals.
type RawRecommendation struct {
	Symbol     string          `json:"symbol"`
	Stock      string          `json:"stock"`
	Action     string          `json:"action"`
	Confidence float64         `json:"confidence"`
	Reason     string          `json:"reason"`
	Metrics    json.RawMessage `json:"metrics"`
}

// RawSentimentSignal is the shape from GET /sentiment/{symbol}.
type RawSentimentSignal struct {
	ID             int64   `json:"id"`
	StockSymbol    string  `json:"stock_symbol"`
	SentimentScore float64 `json:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label"`
	Confidence     float64 `json:"confidence"`
	ArticleCount   int     `json:"article_count"`
	Date           string  `json:"date"`
}

// RawArticle is the shape from GET /sentiment/{symbol}/articles.
type RawArticle struct {
	ID             int64   `json:"id"`
	StockSymbol    string  `json:"stock_symbol"`
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	Source         string  `json:"source"`
	PublishedDate  string  `json:"published_date"`
	SentimentScore float64 `json:"sentiment_score"`
}

// RawForecast is the two-point prediction from GET /forecast/predict/{symbol}.
type RawForecast struct {
	Ticker       string  `json:"ticker"`
	CurrentPrice float64 `json:"current_price"`
	PredictionT1 float64 `json:"prediction_t1"`
	LogReturnT1  float64 `json:"log_return_t1"`
	LogReturnT5  float64 `json:"log_return_t5"`
}

// RawPosition and RawPortfolio mirror GET /portfolio/.
type RawPosition struct {
	Stock        string  `json:"stock"`
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
}

type RawPortfolio struct {
	TotalValue  float64       `json:"totalValue"`
	TotalCost   float64       `json:"totalCost"`
	SharpeRatio float64       `json:"sharpeRatio"`
	MaxDrawdown float64       `json:"maxDrawdown"`
	Positions   []RawPosition `json:"positions"`
}
