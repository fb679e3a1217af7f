package models

import "time"

// View models are the render-ready objects the gateway assembles per page.
// The Synthetic maps record which signals were substituted with locally
// generated data after an upstream failure.

type MarketOverviewView struct {
	Timestamp       time.Time        `json:"timestamp"`
	Stocks          []Stock          `json:"stocks"`
	Indices         []MarketIndex    `json:"indices"`
	Anomalies       []Anomaly        `json:"anomalies"`
	Recommendations []Recommendation `json:"recommendations"`
	Synthetic       map[string]bool  `json:"synthetic,omitempty"`
}

type StockAnalysisView struct {
	Symbol         string           `json:"symbol"`
	Timestamp      time.Time        `json:"timestamp"`
	History        []HistoricalBar  `json:"history"`
	Forecast       []ForecastPoint  `json:"forecast"`
	Sentiment      []SentimentPoint `json:"sentiment"`
	Signal         SentimentSignal  `json:"signal"`
	Recommendation Recommendation   `json:"recommendation"`
	Synthetic      map[string]bool  `json:"synthetic,omitempty"`
}

type MonitoringView struct {
	Timestamp time.Time       `json:"timestamp"`
	Anomalies []Anomaly       `json:"anomalies"`
	Synthetic map[string]bool `json:"synthetic,omitempty"`
}

type PortfolioView struct {
	Timestamp time.Time        `json:"timestamp"`
	Summary   PortfolioSummary `json:"summary"`
}
