package models

// Recommendation actions.
const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
	ActionHold = "HOLD"
)

// Recommendation is an advisory trade suggestion for a symbol.
type Recommendation struct {
	Symbol     string   `json:"symbol"`
	Name       string   `json:"name,omitempty"`
	Action     string   `json:"action"` // BUY | SELL | HOLD
	Confidence float64  `json:"confidence"`
	Reason     string   `json:"reason"`
	Signals    []string `json:"signals"` // "key: value" strings, source order preserved
}
