// Package analysis holds the pure, deterministic computations over one
// normalized trade batch. Every function takes the trade collection as an
// explicit argument, never reads shared state, and owns its own output
// collection, so the analyzers can run on independent goroutines against
// the same read-only slice.
package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/guttosm/payoutpulse/internal/domain/models"
)

type eventKind int

const (
	eventClose eventKind = iota // Close sorts before Open on equal times
	eventOpen
)

// event is one endpoint of a trade's open interval. Each trade yields
// exactly one Open and one Close event; events do not outlive a sweep.
type event struct {
	time   time.Time
	kind   eventKind
	ticket string
}

// groupKey clusters overlap observations by instrument and trading day.
type groupKey struct {
	symbol string
	day    time.Time
}

// SweepConcurrency reconstructs simultaneous open positions from the
// independent open/close timestamps of an unordered trade set.
//
// The sweep emits two events per trade, orders them by time with Close
// before Open on ties (a position closing at the same instant another
// opens does not overlap it), and walks them with a set of currently open
// tickets. On each Open the triggering trade's count is the set size
// right after insertion; when that size exceeds one, the snapshot of open
// tickets is attributed to the (symbol, trade day) of the trigger.
//
// Malformed intervals (open after close) are reported as warnings on the
// affected ticket. A trade whose Close sorts at or before its own Open
// (zero-length or inverted interval) is never seen as open under the
// tie-break, so it is counted as an isolated position and kept out of
// the open-set bookkeeping. A Close for a ticket that is not open is
// ignored.
func SweepConcurrency(trades []models.Trade) (models.ConcurrencyReport, []models.Warning) {
	report := models.ConcurrencyReport{Counts: make(map[string]int, len(trades))}
	if len(trades) == 0 {
		return report, nil
	}

	var warnings []models.Warning
	byTicket := make(map[string]models.Trade, len(trades))
	events := make([]event, 0, 2*len(trades))
	for _, t := range trades {
		if t.OpenTime.After(t.CloseTime) {
			warnings = append(warnings, models.Warning{
				Ticket: t.Ticket,
				Reason: fmt.Sprintf("open time %s after close time %s", t.OpenTime.Format(time.RFC3339), t.CloseTime.Format(time.RFC3339)),
			})
		}
		if _, dup := byTicket[t.Ticket]; !dup {
			byTicket[t.Ticket] = t
		}
		if !t.CloseTime.After(t.OpenTime) {
			// The Close would fire at or before the Open, leaving the
			// ticket stuck in the open set once inserted. Count it as
			// isolated instead of emitting its events.
			if _, seen := report.Counts[t.Ticket]; !seen {
				report.Counts[t.Ticket] = 1
			}
			continue
		}
		events = append(events,
			event{time: t.OpenTime, kind: eventOpen, ticket: t.Ticket},
			event{time: t.CloseTime, kind: eventClose, ticket: t.Ticket},
		)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].time.Equal(events[j].time) {
			return events[i].time.Before(events[j].time)
		}
		return events[i].kind < events[j].kind
	})

	open := make(map[string]struct{})
	grouped := make(map[groupKey]map[string]struct{})
	var order []groupKey

	for _, ev := range events {
		switch ev.kind {
		case eventOpen:
			if _, already := open[ev.ticket]; already {
				// Duplicate ticket in the feed; the set guard keeps the
				// sweep from double-counting it.
				continue
			}
			open[ev.ticket] = struct{}{}
			report.Counts[ev.ticket] = len(open)
			if len(open) > 1 {
				trigger := byTicket[ev.ticket]
				key := groupKey{symbol: trigger.Symbol, day: trigger.TradeDay}
				set, ok := grouped[key]
				if !ok {
					set = make(map[string]struct{})
					grouped[key] = set
					order = append(order, key)
				}
				for ticket := range open {
					set[ticket] = struct{}{}
				}
			}
		case eventClose:
			delete(open, ev.ticket)
		}
	}

	flagged := make(map[string]struct{})
	sort.Slice(order, func(i, j int) bool {
		if !order[i].day.Equal(order[j].day) {
			return order[i].day.Before(order[j].day)
		}
		return order[i].symbol < order[j].symbol
	})
	for _, key := range order {
		group := models.OverlapGroup{Symbol: key.symbol, TradeDay: key.day}
		tickets := make([]string, 0, len(grouped[key]))
		for ticket := range grouped[key] {
			tickets = append(tickets, ticket)
		}
		sort.Strings(tickets)
		for _, ticket := range tickets {
			group.TotalPnLNet += byTicket[ticket].PnLNet
			flagged[ticket] = struct{}{}
		}
		group.Tickets = tickets
		report.Groups = append(report.Groups, group)
	}

	report.Flagged = len(flagged)
	report.Proportion = float64(report.Flagged) / float64(len(trades))
	return report, warnings
}
