package analysis

import (
	"math"
	"sort"

	"github.com/guttosm/payoutpulse/internal/domain/models"
)

// quickTradeMinutes is the duration under which a trade is counted as a
// quick trade, a proxy for automated execution.
const quickTradeMinutes = 1.0

// Summarize computes the headline figures of a batch. All monetary
// figures use the commission-adjusted PnLNet. RiskReturnRatio is +Inf
// when the batch has no losing trades.
func Summarize(trades []models.Trade) models.SummaryStats {
	s := models.SummaryStats{TotalTrades: len(trades)}
	if len(trades) == 0 {
		return s
	}

	var winSum, lossSum, durationSum float64
	for _, t := range trades {
		durationSum += t.DurationMinutes
		s.CumulativePnL += t.PnLNet
		s.TotalLots += t.Lots
		if t.PnLNet > 0 {
			s.Wins++
			winSum += t.PnLNet
		} else if t.PnLNet < 0 {
			s.Losses++
			lossSum += t.PnLNet
		}
		if t.DurationMinutes < quickTradeMinutes {
			s.QuickTrades++
		}
	}

	n := float64(len(trades))
	s.WinPercentage = float64(s.Wins) / n * 100
	s.QuickTradePct = float64(s.QuickTrades) / n * 100
	s.MeanDuration = durationSum / n
	if s.Wins > 0 {
		s.AverageWin = winSum / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AverageLoss = lossSum / float64(s.Losses)
		s.RiskReturnRatio = s.AverageWin / math.Abs(s.AverageLoss)
	} else if s.Wins > 0 {
		s.RiskReturnRatio = math.Inf(1)
	}
	return s
}

// DailyFrequency counts trades per trading day and describes the
// distribution of those counts, including the days above the mean (a high
// count day often marks a volatility chase).
func DailyFrequency(trades []models.Trade) models.FrequencyReport {
	var report models.FrequencyReport
	if len(trades) == 0 {
		return report
	}

	counts := make(map[int64]*models.DayCount)
	for _, t := range trades {
		key := t.TradeDay.Unix()
		if c, ok := counts[key]; ok {
			c.Count++
		} else {
			counts[key] = &models.DayCount{Day: t.TradeDay, Count: 1}
		}
	}
	for _, c := range counts {
		report.PerDay = append(report.PerDay, *c)
	}
	sort.Slice(report.PerDay, func(i, j int) bool {
		return report.PerDay[i].Day.Before(report.PerDay[j].Day)
	})

	values := make([]float64, 0, len(report.PerDay))
	total := 0
	report.Min = report.PerDay[0].Count
	for _, c := range report.PerDay {
		values = append(values, float64(c.Count))
		total += c.Count
		if c.Count < report.Min {
			report.Min = c.Count
		}
		if c.Count > report.Max {
			report.Max = c.Count
		}
	}
	report.Mean = float64(total) / float64(len(report.PerDay))
	sort.Float64s(values)
	report.Median = quantile(values, 0.5)
	report.LowerQuartile = quantile(values, 0.25)
	report.UpperQuartile = quantile(values, 0.75)

	for _, c := range report.PerDay {
		if float64(c.Count) > report.Mean {
			report.AboveMean = append(report.AboveMean, c)
		}
	}
	return report
}

// VolumeProfile describes position sizing: central tendency, spread,
// weekday habits, and whether winners or losers carry more size.
func VolumeProfile(trades []models.Trade) models.VolumeProfile {
	var p models.VolumeProfile
	if len(trades) == 0 {
		return p
	}

	lots := make([]float64, 0, len(trades))
	weekdaySum := make(map[string]float64)
	weekdayCount := make(map[string]int)
	var sum, winSum, lossSum float64
	var wins, losses int
	p.Min = trades[0].Lots
	for _, t := range trades {
		lots = append(lots, t.Lots)
		sum += t.Lots
		if t.Lots < p.Min {
			p.Min = t.Lots
		}
		if t.Lots > p.Max {
			p.Max = t.Lots
		}
		day := t.TradeTime.Weekday().String()
		weekdaySum[day] += t.Lots
		weekdayCount[day]++
		if t.PnLNet > 0 {
			winSum += t.Lots
			wins++
		} else {
			lossSum += t.Lots
			losses++
		}
	}

	n := float64(len(lots))
	p.Mean = sum / n
	var variance float64
	for _, l := range lots {
		variance += (l - p.Mean) * (l - p.Mean)
	}
	if len(lots) > 1 {
		p.StdDev = math.Sqrt(variance / (n - 1))
	}
	sort.Float64s(lots)
	p.Median = quantile(lots, 0.5)
	p.LowerQuartile = quantile(lots, 0.25)
	p.UpperQuartile = quantile(lots, 0.75)

	p.MeanByWeekday = make(map[string]float64, len(weekdaySum))
	for day, total := range weekdaySum {
		p.MeanByWeekday[day] = total / float64(weekdayCount[day])
	}
	if wins > 0 {
		p.MeanWhenWin = winSum / float64(wins)
	}
	if losses > 0 {
		p.MeanWhenLoss = lossSum / float64(losses)
	}
	return p
}

// quantile interpolates linearly between the two nearest ranks of an
// already sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
