package models

import "time"

// PnLCategory classifies a trade outcome. Derived from the gross PnL:
// Gain iff pnl > 0, Loss otherwise (a flat trade counts as a loss,
// matching the upstream report convention).
type PnLCategory string

const (
	Gain PnLCategory = "Gain"
	Loss PnLCategory = "Loss"
)

// Trade is one closed transaction from the normalized feed.
//
// Records are immutable once normalized: analyzers read them and publish
// their findings in separate output collections keyed by Ticket, never by
// writing back onto the record.
//
// Fields:
//   - Ticket: best-effort unique identifier (uniqueness is not guaranteed
//     by the upstream feed).
//   - Side: direction token (e.g. "buy"/"sell"); empty means unknown and
//     excludes the trade from side-sensitive comparisons.
//   - OpenTime, CloseTime, TradeTime: timezone-normalized timestamps.
//     OpenTime <= CloseTime is expected but not guaranteed; violations are
//     surfaced as warnings, not corrected.
//   - DurationMinutes: fractional minutes (sub-minute trades keep the
//     fraction).
//   - PnL / PnLNet: gross and commission-adjusted result. PnLNet is the
//     canonical figure for every aggregate; PnL is kept as context.
//   - StopLoss: nil when the trade ran without a stop loss. The absence
//     itself is a risk-management signal.
//   - TradeDay: calendar date bucket of TradeTime in the feed timezone,
//     truncated to midnight. All daily groupings key on it.
type Trade struct {
	Ticket          string      `json:"ticket"`
	Symbol          string      `json:"symbol"`
	Side            string      `json:"side"`
	OpenTime        time.Time   `json:"open_time"`
	CloseTime       time.Time   `json:"close_time"`
	TradeTime       time.Time   `json:"trade_time"`
	DurationMinutes float64     `json:"duration_minutes"`
	Lots            float64     `json:"lots"`
	PnL             float64     `json:"pnl"`
	PnLNet          float64     `json:"pnl_net"`
	PnLCategory     PnLCategory `json:"pnl_category"`
	StopLoss        *float64    `json:"stop_loss,omitempty"`
	TradeDay        time.Time   `json:"trade_day"`
}

// CategorizePnL derives the outcome category from a gross PnL value.
func CategorizePnL(pnl float64) PnLCategory {
	if pnl > 0 {
		return Gain
	}
	return Loss
}

// DayOf buckets a timestamp into its calendar trading day, keeping the
// location so day boundaries follow the feed timezone.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Warning is a structured data-quality note attached to an offending
// record. Warnings never abort a run; the caller decides whether to
// proceed with exclusions.
type Warning struct {
	Ticket string `json:"ticket,omitempty"`
	Line   int    `json:"line,omitempty"`
	Reason string `json:"reason"`
}
