package models

// PortfolioPosition is one simulated holding with derived P&L fields.
type PortfolioPosition struct {
	Name         string  `json:"stock"`
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	Pnl          float64 `json:"pnl"`
	PnlPercent   float64 `json:"pnlPercent"`
	Allocation   float64 `json:"allocation"` // percent of total value
}

// PortfolioSummary aggregates positions plus portfolio-level risk metrics.
type PortfolioSummary struct {
	TotalValue      float64             `json:"totalValue"`
	TotalCost       float64             `json:"totalCost"`
	TotalPnl        float64             `json:"totalPnl"`
	TotalPnlPercent float64             `json:"totalPnlPercent"`
	ROI             float64             `json:"roi"`
	SharpeRatio     float64             `json:"sharpeRatio"`
	MaxDrawdown     float64             `json:"maxDrawdown"`
	Positions       []PortfolioPosition `json:"positions"`
}

// TransactionResult is the upstream's reply to a simulated trade.
type TransactionResult struct {
	Status   string  `json:"status"`
	Symbol   string  `json:"symbol"`
	Action   string  `json:"action"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Message  string  `json:"message,omitempty"`
}
