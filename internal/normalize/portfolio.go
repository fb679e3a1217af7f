package normalize

import "MarketLens/internal/domain/models"

// Portfolio maps an upstream portfolio snapshot into the canonical summary,
// recomputing per-position P&L and allocation locally so the numbers shown
// are always consistent with each other. Risk metrics the upstream already
// computed (sharpe, drawdown) pass through untouched.
func Portfolio(r RawPortfolio) models.PortfolioSummary {
	totalValue := 0.0
	totalCost := 0.0
	for _, p := range r.Positions {
		totalValue += p.Quantity * p.CurrentPrice
		totalCost += p.Quantity * p.AvgPrice
	}

	positions := make([]models.PortfolioPosition, 0, len(r.Positions))
	for _, p := range r.Positions {
		value := p.Quantity * p.CurrentPrice
		cost := p.Quantity * p.AvgPrice
		pnl := value - cost
		pnlPercent := 0.0
		if cost > 0 {
			pnlPercent = pnl / cost * 100
		}
		allocation := 0.0
		if totalValue > 0 {
			allocation = value / totalValue * 100
		}
		positions = append(positions, models.PortfolioPosition{
			Name:         p.Stock,
			Symbol:       p.Symbol,
			Quantity:     p.Quantity,
			AvgPrice:     p.AvgPrice,
			CurrentPrice: p.CurrentPrice,
			Pnl:          pnl,
			PnlPercent:   pnlPercent,
			Allocation:   allocation,
		})
	}

	totalPnl := totalValue - totalCost
	totalPnlPercent := 0.0
	if totalCost > 0 {
		totalPnlPercent = totalPnl / totalCost * 100
	}

	return models.PortfolioSummary{
		TotalValue:      totalValue,
		TotalCost:       totalCost,
		TotalPnl:        totalPnl,
		TotalPnlPercent: totalPnlPercent,
		ROI:             totalPnlPercent,
		SharpeRatio:     r.SharpeRatio,
		MaxDrawdown:     r.MaxDrawdown,
		Positions:       positions,
	}
}
