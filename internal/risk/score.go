// Package risk maps four manually assessed category scores onto a single
// payout decision. It is a pure function of its inputs: no trade data, no
// side effects, and the same scores always yield the same decision.
package risk

import "fmt"

// Category weights. Style and prohibited practices carry the most weight;
// the four must sum to 1 so the composite stays in [0, 10].
const (
	tradingStyleWeight      = 0.3
	accountManagementWeight = 0.2
	prohibitedRiskWeight    = 0.3
	gamblingWeight          = 0.2
)

// Scores are the four category assessments, each an integer in [0, 10].
// They come from a human reviewer, not from the trade analyzers.
type Scores struct {
	TradingStyle       int // Trading Style Compliance
	AccountManagement  int // Account Management Adherence
	ProhibitedRisk     int // Prohibited Practices Risk
	GamblingIndicators int // Gambling Behavior Indicators
}

// Decision is the outcome of one risk evaluation.
type Decision struct {
	CompositeScore  float64 `json:"composite_score"`
	RiskLevel       string  `json:"risk_level"`
	PrimaryAction   string  `json:"primary_action"`
	SecondaryAction string  `json:"secondary_action"`
	Notes           string  `json:"notes"`
}

// tier is one row of the ordered decision table. Upper bounds are
// inclusive, so a composite of exactly 4.0 lands in Low-Moderate, not
// Moderate.
type tier struct {
	upper     float64
	level     string
	primary   string
	secondary string
	notes     string
}

var tiers = []tier{
	{3, "Low", "Pay the trader", "None", "Regular monitoring continues"},
	{4, "Low-Moderate", "Pay the trader", "Issue a warning", "Specify areas of concern in the warning"},
	{6, "Moderate", "Pay with a deduction", "Increased monitoring", "Deduction percentage based on severity of issues"},
	{7, "High-Moderate", "Reject payout, allow trading", "Implement restrictions", "Specify conditions for future payouts"},
	{10, "High", "Reject and ban", "Close account", "Document reasons thoroughly"},
}

// Evaluate validates the category scores, computes the weighted
// composite, and resolves it to exactly one decision tier.
//
// Out-of-range input is rejected, never clamped: a score outside [0, 10]
// or a composite outside [0, 10] fails the whole call rather than
// returning a defaulted tier.
func Evaluate(s Scores) (Decision, error) {
	for _, c := range []struct {
		name  string
		value int
	}{
		{"trading style", s.TradingStyle},
		{"account management", s.AccountManagement},
		{"prohibited practices", s.ProhibitedRisk},
		{"gambling indicators", s.GamblingIndicators},
	} {
		if c.value < 0 || c.value > 10 {
			return Decision{}, fmt.Errorf("%s score %d out of range [0, 10]", c.name, c.value)
		}
	}

	composite := float64(s.TradingStyle)*tradingStyleWeight +
		float64(s.AccountManagement)*accountManagementWeight +
		float64(s.ProhibitedRisk)*prohibitedRiskWeight +
		float64(s.GamblingIndicators)*gamblingWeight
	if composite < 0 || composite > 10 {
		return Decision{}, fmt.Errorf("composite score %.2f out of range [0, 10]", composite)
	}

	for _, t := range tiers {
		if composite <= t.upper {
			return Decision{
				CompositeScore:  composite,
				RiskLevel:       t.level,
				PrimaryAction:   t.primary,
				SecondaryAction: t.secondary,
				Notes:           t.notes,
			}, nil
		}
	}
	// Unreachable: composite <= 10 always matches the last tier.
	return Decision{}, fmt.Errorf("composite score %.2f matched no tier", composite)
}
