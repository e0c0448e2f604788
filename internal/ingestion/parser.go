package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/payoutpulse/internal/domain/models"
)

// requiredColumns are the feed columns every export must carry. The header
// is matched by name, not position, because broker exports reorder columns
// and append extras (volume, prices, swap, comment) freely.
var requiredColumns = []string{
	"ticket",
	"symbol",
	"side",
	"open-time",
	"close-time",
	"trade-date",
	"duration",
	"lots",
	"pnl",
}

// timestampLayout is the broker export format: day first, 12-hour clock.
const timestampLayout = "02/01/2006 03:04:05 PM"

// parseFeed reads one CSV trade export into normalized Trade records.
//
// It fails on:
//   - unreadable input or a header missing a required column
//
// It tolerates, emitting a models.Warning and excluding the row:
//   - unparseable timestamps or numerics, empty required cells
//
// It tolerates, emitting a models.Warning and KEEPING the row:
//   - open-time after close-time (the sweep still runs on the given values)
//
// Timestamps are read as UTC and converted into loc; TradeDay, PnLNet and
// PnLCategory are derived here so every analyzer sees the same values.
func parseFeed(ctx context.Context, r io.Reader, loc *time.Location) ([]models.Trade, []models.Warning, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range requiredColumns {
		if _, ok := col[want]; !ok {
			return nil, nil, fmt.Errorf("header missing required column %q", want)
		}
	}

	var (
		trades   []models.Trade
		warnings []models.Warning
	)
	line := 1 // header already read

	for {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		rec, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		t, warn, err := recordToTrade(rec, col, loc)
		if err != nil {
			warnings = append(warnings, models.Warning{
				Ticket: cell(rec, col, "ticket"),
				Line:   line,
				Reason: err.Error(),
			})
			continue
		}
		if warn != nil {
			warn.Line = line
			warnings = append(warnings, *warn)
		}
		trades = append(trades, t)
	}

	return trades, warnings, nil
}

// cell returns the named column of a record, or "" when the record is too
// short to hold it.
func cell(rec []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// recordToTrade converts one CSV record into a models.Trade. A returned
// error excludes the row; a returned warning keeps it.
func recordToTrade(rec []string, col map[string]int, loc *time.Location) (models.Trade, *models.Warning, error) {
	var t models.Trade

	t.Ticket = cell(rec, col, "ticket")
	if t.Ticket == "" {
		return t, nil, fmt.Errorf("empty ticket")
	}
	t.Symbol = cell(rec, col, "symbol")
	if t.Symbol == "" {
		return t, nil, fmt.Errorf("empty symbol")
	}
	t.Side = strings.ToLower(cell(rec, col, "side"))

	var err error
	if t.OpenTime, err = parseTimestamp(cell(rec, col, "open-time"), loc); err != nil {
		return t, nil, fmt.Errorf("invalid open-time: %w", err)
	}
	if t.CloseTime, err = parseTimestamp(cell(rec, col, "close-time"), loc); err != nil {
		return t, nil, fmt.Errorf("invalid close-time: %w", err)
	}
	if t.TradeTime, err = parseTimestamp(cell(rec, col, "trade-date"), loc); err != nil {
		return t, nil, fmt.Errorf("invalid trade-date: %w", err)
	}

	if t.DurationMinutes, err = durationToMinutes(cell(rec, col, "duration")); err != nil {
		return t, nil, fmt.Errorf("invalid duration: %w", err)
	}
	if t.Lots, err = parseNumber(cell(rec, col, "lots")); err != nil {
		return t, nil, fmt.Errorf("invalid lots: %w", err)
	}
	if t.Lots < 0 {
		return t, nil, fmt.Errorf("negative lots %v", t.Lots)
	}
	if t.PnL, err = parseNumber(cell(rec, col, "pnl")); err != nil {
		return t, nil, fmt.Errorf("invalid pnl: %w", err)
	}

	// commissions column may be absent or empty; both mean zero.
	commissions := 0.0
	if s := cell(rec, col, "commissions"); s != "" {
		if commissions, err = parseNumber(s); err != nil {
			return t, nil, fmt.Errorf("invalid commissions: %w", err)
		}
	}
	t.PnLNet = t.PnL - commissions

	// An empty sl cell is meaningful: the trade ran without a stop loss.
	if s := cell(rec, col, "sl"); s != "" {
		v, err := parseNumber(s)
		if err != nil {
			return t, nil, fmt.Errorf("invalid sl: %w", err)
		}
		t.StopLoss = &v
	}

	t.PnLCategory = models.CategorizePnL(t.PnL)
	t.TradeDay = models.DayOf(t.TradeTime)

	var warn *models.Warning
	if t.OpenTime.After(t.CloseTime) {
		warn = &models.Warning{
			Ticket: t.Ticket,
			Reason: fmt.Sprintf("open-time %s after close-time %s", t.OpenTime.Format(time.RFC3339), t.CloseTime.Format(time.RFC3339)),
		}
	}
	return t, warn, nil
}

// parseTimestamp reads a broker timestamp as UTC and converts it into the
// feed timezone.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	t, err := time.ParseInLocation(timestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// parseNumber accepts both dot and comma decimal separators, as broker
// exports mix locales.
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// durationToMinutes parses "[[days:]hours:]minutes:seconds" into
// fractional minutes, so a 30-second trade yields 0.5.
func durationToMinutes(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 4 {
		return 0, fmt.Errorf("want mm:ss, hh:mm:ss or dd:hh:mm:ss, got %q", s)
	}
	vals := make([]int, 4) // days, hours, minutes, seconds
	offset := 4 - len(parts)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return 0, fmt.Errorf("bad segment %q in %q", p, s)
		}
		vals[offset+i] = v
	}
	return float64(vals[0])*1440 + float64(vals[1])*60 + float64(vals[2]) + float64(vals[3])/60, nil
}
