package ingestion

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/payoutpulse/internal/domain/models"
	"github.com/guttosm/payoutpulse/internal/logger"
)

// maxParallelFiles caps concurrent file parsing when a ledger arrives
// split across several exports.
const maxParallelFiles = 4

// Parse reads one trade export from an arbitrary reader (e.g. an HTTP
// upload) into normalized records. Same contract as LoadFile.
func Parse(ctx context.Context, r io.Reader, loc *time.Location) ([]models.Trade, []models.Warning, error) {
	return parseFeed(ctx, r, loc)
}

// LoadFile parses one trade export into normalized records.
//
// Parameters:
//   - ctx:  context for cancellation.
//   - path: CSV file path.
//   - loc:  feed timezone the timestamps are converted into.
//
// Returns the parsed trades, the data-quality warnings collected along the
// way, and an error only for structural failures (unreadable file, header
// missing a required column).
func LoadFile(ctx context.Context, path string, loc *time.Location) ([]models.Trade, []models.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	start := time.Now()
	trades, warnings, err := parseFeed(ctx, f, loc)
	if err != nil {
		return nil, nil, fmt.Errorf("file %s: %w", path, err)
	}
	logger.L().Info().
		Str("file", path).
		Int("trades", len(trades)).
		Int("warnings", len(warnings)).
		Dur("elapsed", time.Since(start)).
		Msg("feed loaded")
	return trades, warnings, nil
}

// LoadFiles parses several exports concurrently and merges them into one
// batch, sorted by trade time. The first structural error cancels the
// remaining files and fails the whole load.
func LoadFiles(ctx context.Context, paths []string, loc *time.Location) ([]models.Trade, []models.Warning, error) {
	if len(paths) == 1 {
		return LoadFile(ctx, paths[0], loc)
	}

	type result struct {
		trades   []models.Trade
		warnings []models.Warning
	}
	results := make([]result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFiles)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			trades, warnings, err := LoadFile(gctx, p, loc)
			if err != nil {
				return err
			}
			results[i] = result{trades: trades, warnings: warnings}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var trades []models.Trade
	var warnings []models.Warning
	for _, r := range results {
		trades = append(trades, r.trades...)
		warnings = append(warnings, r.warnings...)
	}
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].TradeTime.Before(trades[j].TradeTime)
	})
	return trades, warnings, nil
}

// FilterRange keeps trades whose trade time falls within [start, end],
// both inclusive and both optional. Day-precision bounds are widened so an
// end date covers its whole day.
func FilterRange(trades []models.Trade, start, end *time.Time) []models.Trade {
	if start == nil && end == nil {
		return trades
	}
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if start != nil && t.TradeTime.Before(*start) {
			continue
		}
		if end != nil && !t.TradeTime.Before(end.AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, t)
	}
	return out
}
