package models

import "time"

// OverlapGroup consolidates the simultaneous-position observations for one
// (symbol, trade day) cluster. Tickets holds the unique set of trades that
// were open while at least one other trade was open; TotalPnLNet sums
// their commission-adjusted results.
//
// swagger:model OverlapGroup
type OverlapGroup struct {
	Symbol      string    `json:"symbol"`
	TradeDay    time.Time `json:"trade_day"`
	Tickets     []string  `json:"tickets"`
	TotalPnLNet float64   `json:"total_pnl_net"`
}

// ConcurrencyReport is the output of the open/close event sweep.
//
// Counts maps each ticket to the number of positions open at the instant
// its Open event fired (itself included, so an isolated trade counts 1).
// Groups lists the (symbol, day) overlap clusters; Flagged is the number
// of distinct tickets appearing in any cluster.
type ConcurrencyReport struct {
	Counts     map[string]int `json:"counts"`
	Groups     []OverlapGroup `json:"groups"`
	Flagged    int            `json:"flagged"`
	Proportion float64        `json:"proportion"`
}

// IntervalBand is one cumulative row of the regular-interval table: how
// many trades followed their predecessor within CeilingSeconds.
// MeanLots averages the position size of the matching trades and is zero
// when none match.
type IntervalBand struct {
	CeilingSeconds float64 `json:"ceiling_seconds"`
	TotalTrades    int     `json:"total_trades"`
	MatchingTrades int     `json:"matching_trades"`
	Percentage     float64 `json:"percentage"`
	MeanLots       float64 `json:"mean_lots"`
}

// ReversalPair records a loss followed by an opposite-direction trade
// within the detection window. PartitionPnLNet is the summed net result
// of the whole (day, symbol) partition, reported as context only.
type ReversalPair struct {
	Ticket1         string    `json:"ticket_1"`
	Ticket2         string    `json:"ticket_2"`
	Symbol          string    `json:"symbol"`
	TradeDay        time.Time `json:"trade_day"`
	Side1           string    `json:"side_1"`
	Side2           string    `json:"side_2"`
	PnL1            float64   `json:"pnl_1"`
	PnL2            float64   `json:"pnl_2"`
	Lots1           float64   `json:"lots_1"`
	Lots2           float64   `json:"lots_2"`
	ElapsedSeconds  float64   `json:"elapsed_seconds"`
	PartitionPnLNet float64   `json:"partition_pnl_net"`
}

// EscalationCandidate records a trade whose size grew right after a loss
// on the same symbol (classic martingale doubling). Reported separately
// from ReversalPair; the two detectors may overlap on the same trades.
type EscalationCandidate struct {
	Ticket     string    `json:"ticket"`
	PrevTicket string    `json:"prev_ticket"`
	Symbol     string    `json:"symbol"`
	Side       string    `json:"side"`
	TradeTime  time.Time `json:"trade_time"`
	Lots       float64   `json:"lots"`
	PrevLots   float64   `json:"prev_lots"`
	PrevPnLNet float64   `json:"prev_pnl_net"`
}

// SummaryStats are the headline figures of a ledger.
type SummaryStats struct {
	TotalTrades     int     `json:"total_trades"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	WinPercentage   float64 `json:"win_percentage"`
	AverageWin      float64 `json:"average_win"`
	AverageLoss     float64 `json:"average_loss"`
	RiskReturnRatio float64 `json:"risk_return_ratio"`
	MeanDuration    float64 `json:"mean_duration_minutes"`
	QuickTrades     int     `json:"quick_trades"`
	QuickTradePct   float64 `json:"quick_trade_percentage"`
	CumulativePnL   float64 `json:"cumulative_pnl_net"`
	TotalLots       float64 `json:"total_lots"`
}

// DayCount is one day's trade count.
type DayCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

// FrequencyReport describes how trade counts distribute across days.
type FrequencyReport struct {
	PerDay        []DayCount `json:"per_day"`
	Mean          float64    `json:"mean"`
	Median        float64    `json:"median"`
	LowerQuartile float64    `json:"lower_quartile"`
	UpperQuartile float64    `json:"upper_quartile"`
	Min           int        `json:"min"`
	Max           int        `json:"max"`
	AboveMean     []DayCount `json:"above_mean"`
}

// DayPnL is one day's summed net result.
type DayPnL struct {
	Day    time.Time `json:"day"`
	PnLNet float64   `json:"pnl_net"`
}

// ConsistencyReport measures how concentrated the profit is. BestDayShare
// is the best day's percentage of TotalProfits and is zero when there are
// no profitable days.
type ConsistencyReport struct {
	PerDay        []DayPnL  `json:"per_day"`
	TotalProfits  float64   `json:"total_profits"`
	CumulativePnL float64   `json:"cumulative_pnl"`
	BestDay       time.Time `json:"best_day"`
	BestDayPnL    float64   `json:"best_day_pnl"`
	BestDayShare  float64   `json:"best_day_share"`
}

// UncoveredDay groups the tickets that traded without a stop loss on one
// day, with their summed net result.
type UncoveredDay struct {
	Day     time.Time `json:"day"`
	Tickets []string  `json:"tickets"`
	PnLNet  float64   `json:"pnl_net"`
}

// StopLossReport quantifies trades executed without a stop loss.
type StopLossReport struct {
	TotalTrades  int            `json:"total_trades"`
	Uncovered    int            `json:"uncovered"`
	UncoveredPct float64        `json:"uncovered_percentage"`
	PerDay       []UncoveredDay `json:"per_day"`
}

// VolumeProfile summarizes position sizing behavior.
type VolumeProfile struct {
	Mean          float64            `json:"mean"`
	Median        float64            `json:"median"`
	StdDev        float64            `json:"std_dev"`
	Min           float64            `json:"min"`
	Max           float64            `json:"max"`
	LowerQuartile float64            `json:"lower_quartile"`
	UpperQuartile float64            `json:"upper_quartile"`
	MeanByWeekday map[string]float64 `json:"mean_by_weekday"`
	MeanWhenWin   float64            `json:"mean_when_win"`
	MeanWhenLoss  float64            `json:"mean_when_loss"`
}

// Report bundles every analyzer output for one run. Each section is
// produced independently; a failed run yields no Report at all.
type Report struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	TradeCount  int                   `json:"trade_count"`
	Warnings    []Warning             `json:"warnings,omitempty"`
	Concurrency ConcurrencyReport     `json:"concurrency"`
	Intervals   []IntervalBand        `json:"intervals"`
	Reversals   []ReversalPair        `json:"reversals"`
	Escalations []EscalationCandidate `json:"escalations"`
	Summary     SummaryStats          `json:"summary"`
	Frequency   FrequencyReport       `json:"frequency"`
	Consistency ConsistencyReport     `json:"consistency"`
	StopLoss    StopLossReport        `json:"stop_loss"`
	Volume      VolumeProfile         `json:"volume"`
}
