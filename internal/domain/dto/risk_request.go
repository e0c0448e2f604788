package dto

// RiskScoreRequest carries the four manually assessed category scores,
// each an integer in [0, 10]. Values outside the range are rejected, not
// clamped.
//
// swagger:model RiskScoreRequest
type RiskScoreRequest struct {
	TradingStyle       int    `json:"trading_style" example:"2"`       // Trading Style Compliance
	AccountManagement  int    `json:"account_management" example:"3"`  // Account Management Adherence
	ProhibitedRisk     int    `json:"prohibited_risk" example:"1"`     // Prohibited Practices Risk
	GamblingIndicators int    `json:"gambling_indicators" example:"4"` // Gambling Behavior Indicators
	Notes              string `json:"notes,omitempty"`                 // Free-form assessor notes
}
