package analysis

import (
	"sort"

	"github.com/guttosm/payoutpulse/internal/domain/models"
)

// Consistency sums PnLNet per trading day and measures profit
// concentration: a payout built on one outsized day reads differently
// from one earned steadily, so the best day's share of total profits is
// the headline number.
func Consistency(trades []models.Trade) models.ConsistencyReport {
	var report models.ConsistencyReport
	if len(trades) == 0 {
		return report
	}

	perDay := make(map[int64]*models.DayPnL)
	for _, t := range trades {
		key := t.TradeDay.Unix()
		if d, ok := perDay[key]; ok {
			d.PnLNet += t.PnLNet
		} else {
			perDay[key] = &models.DayPnL{Day: t.TradeDay, PnLNet: t.PnLNet}
		}
	}
	for _, d := range perDay {
		report.PerDay = append(report.PerDay, *d)
	}
	sort.Slice(report.PerDay, func(i, j int) bool {
		return report.PerDay[i].Day.Before(report.PerDay[j].Day)
	})

	best := report.PerDay[0]
	for _, d := range report.PerDay {
		report.CumulativePnL += d.PnLNet
		if d.PnLNet > 0 {
			report.TotalProfits += d.PnLNet
		}
		if d.PnLNet > best.PnLNet {
			best = d
		}
	}
	report.BestDay = best.Day
	report.BestDayPnL = best.PnLNet
	if report.TotalProfits > 0 {
		report.BestDayShare = best.PnLNet / report.TotalProfits * 100
	}
	return report
}

// StopLossCoverage quantifies trades executed without a stop loss and
// groups the uncovered tickets per day with their summed net result.
// Absence of a stop loss is the signal; a zero stop loss still counts as
// covered.
func StopLossCoverage(trades []models.Trade) models.StopLossReport {
	report := models.StopLossReport{TotalTrades: len(trades)}
	if len(trades) == 0 {
		return report
	}

	perDay := make(map[int64]*models.UncoveredDay)
	var order []int64
	for _, t := range trades {
		if t.StopLoss != nil {
			continue
		}
		report.Uncovered++
		key := t.TradeDay.Unix()
		d, ok := perDay[key]
		if !ok {
			d = &models.UncoveredDay{Day: t.TradeDay}
			perDay[key] = d
			order = append(order, key)
		}
		d.Tickets = append(d.Tickets, t.Ticket)
		d.PnLNet += t.PnLNet
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for _, key := range order {
		report.PerDay = append(report.PerDay, *perDay[key])
	}
	report.UncoveredPct = float64(report.Uncovered) / float64(report.TotalTrades) * 100
	return report
}
