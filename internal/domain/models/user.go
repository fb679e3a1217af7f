package models

// UserProfile is the authenticated user's profile, fetched from upstream.
type UserProfile struct {
	ID                int64   `json:"id"`
	Username          string  `json:"username"`
	Email             string  `json:"email"`
	RiskProfile       string  `json:"risk_profile"` // conservative | moderate | aggressive
	TradingExperience string  `json:"trading_experience"`
	InitialCapital    float64 `json:"initial_capital"`
}

// AuthResult carries the gateway session handle issued after login or
// registration, plus the profile when available.
type AuthResult struct {
	SessionID string       `json:"sessionId"`
	Profile   *UserProfile `json:"profile,omitempty"`
}

// ChatReply is the assistant's answer to a chat query.
type ChatReply struct {
	Response string `json:"response"`
}
