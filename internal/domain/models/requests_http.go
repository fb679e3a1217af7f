package models

// Requests for the gateway HTTP endpoints. Defined in domain for consistency
// and reuse.

type StockAnalysisRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,alphanum,uppercase,max=12"`
	Days   int    `query:"days" json:"days" default:"90" validate:"gte=1,lte=365"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type ProfileUpdateRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	RiskProfile string `json:"risk_profile" validate:"omitempty,oneof=conservative moderate aggressive"`
}

type QuizRequest struct {
	TradingExperience string `json:"trading_experience" validate:"required,oneof=none beginner intermediate advanced"`
	RiskScore         int    `json:"risk_score" validate:"gte=0,lte=100"`
}

type TransactionRequest struct {
	Symbol   string  `json:"symbol" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Action   string  `json:"action" validate:"required,oneof=BUY SELL"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}
