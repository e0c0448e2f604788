package analysis

import (
	"sort"
	"time"

	"github.com/guttosm/payoutpulse/internal/domain/models"
)

// DefaultReversalWindow bounds the gap between a loss and the reversed
// trade that is read as an attempt to win it back.
const DefaultReversalWindow = 60 * time.Second

// DetectReversals flags "revenge trading": a losing trade immediately
// followed, within the window, by a trade in the opposite direction.
//
// Trades are partitioned by (trade day, symbol), each partition sorted by
// trade time, and consecutive pairs scanned. A pair is flagged when the
// earlier trade is a loss, the sides differ, and the gap is at most
// window. Trades with an unknown side are incomparable and break the
// chain rather than defaulting to "no reversal".
//
// The scan is pure: no state crosses partitions, so a reshuffled input
// yields the same pairs. Pairs come back ordered by day, symbol, time.
func DetectReversals(trades []models.Trade, window time.Duration) []models.ReversalPair {
	if window <= 0 {
		window = DefaultReversalWindow
	}

	partitions := make(map[groupKey][]models.Trade)
	var order []groupKey
	for _, t := range trades {
		key := groupKey{symbol: t.Symbol, day: t.TradeDay}
		if _, ok := partitions[key]; !ok {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], t)
	}
	sort.Slice(order, func(i, j int) bool {
		if !order[i].day.Equal(order[j].day) {
			return order[i].day.Before(order[j].day)
		}
		return order[i].symbol < order[j].symbol
	})

	var pairs []models.ReversalPair
	for _, key := range order {
		group := partitions[key]
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].TradeTime.Before(group[j].TradeTime)
		})

		partitionPnL := 0.0
		for _, t := range group {
			partitionPnL += t.PnLNet
		}

		for i := 1; i < len(group); i++ {
			prev, curr := group[i-1], group[i]
			if prev.Side == "" || curr.Side == "" {
				continue
			}
			elapsed := curr.TradeTime.Sub(prev.TradeTime)
			if prev.PnLCategory == models.Loss && curr.Side != prev.Side && elapsed <= window {
				pairs = append(pairs, models.ReversalPair{
					Ticket1:         prev.Ticket,
					Ticket2:         curr.Ticket,
					Symbol:          key.symbol,
					TradeDay:        key.day,
					Side1:           prev.Side,
					Side2:           curr.Side,
					PnL1:            prev.PnLNet,
					PnL2:            curr.PnLNet,
					Lots1:           prev.Lots,
					Lots2:           curr.Lots,
					ElapsedSeconds:  elapsed.Seconds(),
					PartitionPnLNet: partitionPnL,
				})
			}
		}
	}
	return pairs
}

// DetectEscalations flags sizing-based recovery: a trade whose lots grew
// relative to the immediately preceding trade on the same symbol when
// that trade was a net loss. Grouped by symbol only, not by day, since a
// doubling sequence can straddle midnight.
//
// Independent of DetectReversals by design: one targets direction, the
// other targets size, and a trader may exhibit either or both.
func DetectEscalations(trades []models.Trade) []models.EscalationCandidate {
	bySymbol := make(map[string][]models.Trade)
	var symbols []string
	for _, t := range trades {
		if _, ok := bySymbol[t.Symbol]; !ok {
			symbols = append(symbols, t.Symbol)
		}
		bySymbol[t.Symbol] = append(bySymbol[t.Symbol], t)
	}
	sort.Strings(symbols)

	var candidates []models.EscalationCandidate
	for _, symbol := range symbols {
		group := bySymbol[symbol]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].TradeTime.Before(group[j].TradeTime)
		})
		for i := 1; i < len(group); i++ {
			prev, curr := group[i-1], group[i]
			if prev.PnLNet < 0 && curr.Lots > prev.Lots {
				candidates = append(candidates, models.EscalationCandidate{
					Ticket:     curr.Ticket,
					PrevTicket: prev.Ticket,
					Symbol:     symbol,
					Side:       curr.Side,
					TradeTime:  curr.TradeTime,
					Lots:       curr.Lots,
					PrevLots:   prev.Lots,
					PrevPnLNet: prev.PnLNet,
				})
			}
		}
	}
	return candidates
}
