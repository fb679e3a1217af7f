package models

// ForecastPoint is one horizon day of a synthesized price forecast.
// Invariant: Lower <= Predicted <= Upper, with the band widening as the
// horizon moves out.
type ForecastPoint struct {
	Date      string  `json:"date"`
	Predicted float64 `json:"predicted"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
}

// ForecastPrediction is the sparse two-point prediction returned by the
// upstream model: a current price plus one-day and five-day log-returns.
type ForecastPrediction struct {
	Symbol       string
	CurrentPrice float64
	PriceT1      float64
	LogReturnT1  float64
	LogReturnT5  float64
}
