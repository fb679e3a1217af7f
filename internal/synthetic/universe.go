package synthetic

import "MarketLens/internal/domain/models"

// Static BVMT exchange universe served when the corresponding list endpoint
// is unavailable. Copies are returned so callers can mutate freely.

var universeStocks = []models.Stock{
	{Symbol: "TT", Name: "Tunisie Telecom", Sector: "Telecom", LastPrice: 8.45, Change: 0.21, ChangePercent: 2.55, Volume: 154320, High: 8.52, Low: 8.20, Open: 8.24},
	{Symbol: "SFBT", Name: "SFBT", Sector: "Agroalimentaire", LastPrice: 21.30, Change: -0.45, ChangePercent: -2.07, Volume: 89200, High: 21.80, Low: 21.10, Open: 21.75},
	{Symbol: "BNA", Name: "Banque Nationale Agricole", Sector: "Banque", LastPrice: 12.60, Change: 0.35, ChangePercent: 2.86, Volume: 67800, High: 12.70, Low: 12.20, Open: 12.25},
	{Symbol: "BIAT", Name: "BIAT", Sector: "Banque", LastPrice: 108.50, Change: 1.50, ChangePercent: 1.40, Volume: 12450, High: 109.00, Low: 106.50, Open: 107.00},
	{Symbol: "PGH", Name: "Poulina Group Holding", Sector: "Holding", LastPrice: 14.80, Change: -0.10, ChangePercent: -0.67, Volume: 45600, High: 15.00, Low: 14.70, Open: 14.90},
	{Symbol: "DH", Name: "Délice Holding", Sector: "Agroalimentaire", LastPrice: 18.90, Change: 0.60, ChangePercent: 3.28, Volume: 78900, High: 19.10, Low: 18.20, Open: 18.30},
	{Symbol: "STAR", Name: "STAR Assurances", Sector: "Assurance", LastPrice: 142.00, Change: -2.00, ChangePercent: -1.39, Volume: 3200, High: 144.00, Low: 141.50, Open: 144.00},
	{Symbol: "ATB", Name: "Arab Tunisian Bank", Sector: "Banque", LastPrice: 4.85, Change: 0.05, ChangePercent: 1.04, Volume: 98700, High: 4.90, Low: 4.78, Open: 4.80},
	{Symbol: "SAH", Name: "SAH Lilas", Sector: "Industrie", LastPrice: 6.20, Change: 0.15, ChangePercent: 2.48, Volume: 112000, High: 6.30, Low: 6.00, Open: 6.05},
	{Symbol: "OTH", Name: "One Tech Holding", Sector: "Technologie", LastPrice: 9.75, Change: -0.30, ChangePercent: -2.98, Volume: 34500, High: 10.10, Low: 9.70, Open: 10.05},
}

var universeIndices = []models.MarketIndex{
	{Name: "TUNINDEX", Value: 9847.32, Change: 23.45, ChangePercent: 0.24},
	{Name: "TUNINDEX20", Value: 4312.18, Change: -8.72, ChangePercent: -0.20},
}

var universeAnomalies = []models.Anomaly{
	{ID: "a1", Timestamp: "2026-02-07T10:23:00", Symbol: "SFBT", Type: models.AnomalyVolumeSpike, Severity: models.SeverityHigh, Description: "Volume spike +800% detected on SFBT", Details: "Trading volume surged to 712,000 shares at 10:23, 8x above 30-day average. Coincided with unverified partnership rumor.", Resolved: false},
	{ID: "a2", Timestamp: "2026-02-07T09:45:00", Symbol: "DH", Type: models.AnomalyPriceJump, Severity: models.SeverityCritical, Description: "Délice Holding +12% without significant news", Details: "Price jumped from 16.87 to 18.90 TND within 45 minutes. No official news or press release found. Volume 10x above average.", Resolved: false},
	{ID: "a3", Timestamp: "2026-02-06T14:12:00", Symbol: "OTH", Type: models.AnomalySuspiciousPattern, Severity: models.SeverityMedium, Description: "Unusual order pattern on One Tech Holding", Details: "Repeated small buy orders (50-100 shares) every 30 seconds for 15 minutes, followed by a large sell order.", Resolved: true},
	{ID: "a4", Timestamp: "2026-02-06T11:30:00", Symbol: "BNA", Type: models.AnomalyVolumeSpike, Severity: models.SeverityLow, Description: "Moderate volume increase on BNA", Details: "Volume 3.2x above average during morning session. Likely institutional rebalancing.", Resolved: true},
	{ID: "a5", Timestamp: "2026-02-05T15:45:00", Symbol: "STAR", Type: models.AnomalyPriceJump, Severity: models.SeverityMedium, Description: "STAR price drop -5.2% in last hour", Details: "Sharp decline in final trading hour without clear catalyst. Possible profit-taking after recent rally.", Resolved: false},
}

var universeRecommendations = []models.Recommendation{
	{Symbol: "TT", Name: "Tunisie Telecom", Action: models.ActionBuy, Confidence: 0.82, Reason: "Positive news sentiment + upward price trend forecast + no anomalies detected. Recent contract announcement supports bullish outlook.", Signals: []string{"Sentiment: +0.72", "5-day forecast: +2.5%", "RSI: 45 (neutral)", "Volume: stable"}},
	{Symbol: "SFBT", Name: "SFBT", Action: models.ActionHold, Confidence: 0.65, Reason: "Unusual volume activity detected. Wait for confirmation before acting. High volatility expected in next 48h.", Signals: []string{"Anomaly: volume spike", "Sentiment: +0.85", "Forecast: uncertain", "Caution advised"}},
	{Symbol: "BIAT", Name: "BIAT", Action: models.ActionBuy, Confidence: 0.74, Reason: "Strong banking sector performance. BIAT shows consistent upward trend with solid fundamentals.", Signals: []string{"Sentiment: +0.45", "5-day forecast: +1.4%", "RSI: 52", "Sector: bullish"}},
	{Symbol: "DH", Name: "Délice Holding", Action: models.ActionSell, Confidence: 0.71, Reason: "Critical anomaly detected: +12% price jump without news. High manipulation risk. Recommend taking profits.", Signals: []string{"Anomaly: critical", "No supporting news", "Volume: 10x avg", "Risk: HIGH"}},
	{Symbol: "OTH", Name: "One Tech Holding", Action: models.ActionHold, Confidence: 0.58, Reason: "Mixed signals. Suspicious order pattern recently detected but resolved. Wait for clearer direction.", Signals: []string{"Sentiment: -0.15", "Forecast: flat", "Anomaly: resolved", "RSI: 38"}},
}

var universePortfolio = models.PortfolioSummary{
	TotalValue:      12847.50,
	TotalCost:       10000,
	TotalPnl:        2847.50,
	TotalPnlPercent: 28.48,
	ROI:             28.48,
	SharpeRatio:     1.42,
	MaxDrawdown:     -8.3,
	Positions: []models.PortfolioPosition{
		{Name: "Tunisie Telecom", Symbol: "TT", Quantity: 200, AvgPrice: 7.80, CurrentPrice: 8.45, Pnl: 130, PnlPercent: 8.33, Allocation: 13.2},
		{Name: "BIAT", Symbol: "BIAT", Quantity: 30, AvgPrice: 95.00, CurrentPrice: 108.50, Pnl: 405, PnlPercent: 14.21, Allocation: 25.3},
		{Name: "Délice Holding", Symbol: "DH", Quantity: 150, AvgPrice: 16.50, CurrentPrice: 18.90, Pnl: 360, PnlPercent: 14.55, Allocation: 22.1},
		{Name: "SAH Lilas", Symbol: "SAH", Quantity: 300, AvgPrice: 5.40, CurrentPrice: 6.20, Pnl: 240, PnlPercent: 14.81, Allocation: 14.5},
		{Name: "Poulina Group Holding", Symbol: "PGH", Quantity: 100, AvgPrice: 13.20, CurrentPrice: 14.80, Pnl: 160, PnlPercent: 12.12, Allocation: 11.5},
		{Name: "Banque Nationale Agricole", Symbol: "BNA", Quantity: 80, AvgPrice: 11.50, CurrentPrice: 12.60, Pnl: 88, PnlPercent: 9.57, Allocation: 7.8},
		{Name: "Arab Tunisian Bank", Symbol: "ATB", Quantity: 150, AvgPrice: 4.60, CurrentPrice: 4.85, Pnl: 37.5, PnlPercent: 5.43, Allocation: 5.6},
	},
}

// Stocks returns the static exchange universe.
func (g *Generator) Stocks() []models.Stock {
	out := make([]models.Stock, len(universeStocks))
	copy(out, universeStocks)
	return out
}

// Indices returns the static index levels.
func (g *Generator) Indices() []models.MarketIndex {
	out := make([]models.MarketIndex, len(universeIndices))
	copy(out, universeIndices)
	return out
}

// Anomalies returns the static anomaly sample.
func (g *Generator) Anomalies() []models.Anomaly {
	out := make([]models.Anomaly, len(universeAnomalies))
	copy(out, universeAnomalies)
	return out
}

// Recommendations returns the static recommendation sample.
func (g *Generator) Recommendations() []models.Recommendation {
	out := make([]models.Recommendation, len(universeRecommendations))
	copy(out, universeRecommendations)
	return out
}

// Recommendation returns the symbol's static recommendation when the
// universe carries one, else a seeded neutral suggestion.
func (g *Generator) Recommendation(symbol string) models.Recommendation {
	for _, r := range universeRecommendations {
		if r.Symbol == symbol {
			return r
		}
	}
	rng := g.rng("recommendation:" + symbol)
	return models.Recommendation{
		Symbol:     symbol,
		Action:     models.ActionHold,
		Confidence: round2(0.4 + rng.Float64()*0.3),
		Reason:     "Insufficient signal coverage for " + symbol + ". Hold until more data is available.",
		Signals:    []string{"Coverage: partial", "Forecast: unavailable"},
	}
}

// Portfolio returns the static demo portfolio.
func (g *Generator) Portfolio() models.PortfolioSummary {
	p := universePortfolio
	p.Positions = make([]models.PortfolioPosition, len(universePortfolio.Positions))
	copy(p.Positions, universePortfolio.Positions)
	return p
}
