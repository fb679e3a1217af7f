package normalize

import "MarketLens/internal/domain/models"

// Stocks maps upstream quote records to canonical stocks. Records without a
// symbol are dropped; every other field passes through as-is.
func Stocks(records []RawStock) []models.Stock {
	out := make([]models.Stock, 0, len(records))
	for _, r := range records {
		if r.Symbol == "" {
			continue
		}
		out = append(out, models.Stock{
			Symbol:        r.Symbol,
			Name:          r.Name,
			Sector:        r.Sector,
			LastPrice:     r.LastPrice,
			Change:        r.Change,
			ChangePercent: r.ChangePercent,
			Volume:        r.Volume,
			High:          r.High,
			Low:           r.Low,
			Open:          r.Open,
		})
	}
	return out
}

// Indices maps upstream index records, dropping unnamed entries.
func Indices(records []RawIndex) []models.MarketIndex {
	out := make([]models.MarketIndex, 0, len(records))
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		out = append(out, models.MarketIndex{
			Name:          r.Name,
			Value:         r.Value,
			Change:        r.Change,
			ChangePercent: r.ChangePercent,
		})
	}
	return out
}
