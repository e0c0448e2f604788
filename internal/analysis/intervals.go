package analysis

import (
	"sort"

	"github.com/guttosm/payoutpulse/internal/domain/models"
)

// IntervalBands buckets the gaps between consecutive trades into
// cumulative interval bands: each band answers "what fraction of trades
// followed their predecessor within at most T seconds". A high percentage
// at a small ceiling indicates trading on a fixed cadence.
//
// Trades are ordered by trade time before differencing; the first trade
// has no predecessor and never matches a band, so the percentage at the
// observed maximum gap equals 100% minus the first-trade share. The
// observed maximum gap is appended as a final ceiling when it exceeds the
// configured list.
func IntervalBands(trades []models.Trade, ceilings []float64) []models.IntervalBand {
	if len(trades) == 0 {
		return nil
	}

	ordered := make([]models.Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TradeTime.Before(ordered[j].TradeTime)
	})

	gaps := make([]float64, 0, len(ordered)-1)
	lots := make([]float64, 0, len(ordered)-1)
	maxGap := 0.0
	for i := 1; i < len(ordered); i++ {
		gap := ordered[i].TradeTime.Sub(ordered[i-1].TradeTime).Seconds()
		gaps = append(gaps, gap)
		lots = append(lots, ordered[i].Lots)
		if gap > maxGap {
			maxGap = gap
		}
	}

	bounds := append([]float64(nil), ceilings...)
	if len(bounds) == 0 || maxGap > bounds[len(bounds)-1] {
		bounds = append(bounds, maxGap)
	}

	bands := make([]models.IntervalBand, 0, len(bounds))
	for _, ceiling := range bounds {
		band := models.IntervalBand{
			CeilingSeconds: ceiling,
			TotalTrades:    len(trades),
		}
		lotSum := 0.0
		for i, gap := range gaps {
			if gap >= 0 && gap <= ceiling {
				band.MatchingTrades++
				lotSum += lots[i]
			}
		}
		band.Percentage = float64(band.MatchingTrades) / float64(band.TotalTrades) * 100
		if band.MatchingTrades > 0 {
			band.MeanLots = lotSum / float64(band.MatchingTrades)
		}
		bands = append(bands, band)
	}
	return bands
}
