package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/payoutpulse/internal/analysis"
	"github.com/guttosm/payoutpulse/internal/domain/models"
	"github.com/guttosm/payoutpulse/internal/logger"
	"github.com/guttosm/payoutpulse/internal/risk"
)

// Options are the engine tunables the caller may override per run.
type Options struct {
	IntervalCeilings []float64     // ascending interval band ceilings, seconds
	MartingaleWindow time.Duration // loss-to-reversal window
}

// Analyzer runs the behavioral analyzers over one normalized trade batch.
// This decouples HTTP handlers and the CLI from the analysis internals.
type Analyzer interface {
	Run(ctx context.Context, trades []models.Trade, warnings []models.Warning) (*models.Report, error)
	ScoreRisk(scores risk.Scores, notes string) (risk.Decision, error)
}

type analyzer struct {
	opts Options
}

// NewAnalyzer builds an Analyzer with the given tunables.
func NewAnalyzer(opts Options) Analyzer {
	return &analyzer{opts: opts}
}

// Run executes the analyzers as an errgroup fan-out: they share the same
// read-only trade slice and have no data dependency on one another, so
// each goroutine owns exactly one section of the report and nothing else
// writes to it. Within each analyzer the chronological scan stays
// sequential.
//
// Results are all-or-nothing per run: if the context is canceled the
// partial report is discarded and an error returned.
func (a *analyzer) Run(ctx context.Context, trades []models.Trade, warnings []models.Warning) (*models.Report, error) {
	start := time.Now()
	report := &models.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: start.UTC(),
		TradeCount:  len(trades),
		Warnings:    warnings,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sweep, sweepWarnings := analysis.SweepConcurrency(trades)
		report.Concurrency = sweep
		// Only this goroutine appends; report.Warnings is assigned after
		// Wait, keeping the slice single-writer.
		warnings = append(warnings, sweepWarnings...)
		return gctx.Err()
	})
	g.Go(func() error {
		report.Intervals = analysis.IntervalBands(trades, a.opts.IntervalCeilings)
		return gctx.Err()
	})
	g.Go(func() error {
		report.Reversals = analysis.DetectReversals(trades, a.opts.MartingaleWindow)
		report.Escalations = analysis.DetectEscalations(trades)
		return gctx.Err()
	})
	g.Go(func() error {
		report.Summary = analysis.Summarize(trades)
		report.Frequency = analysis.DailyFrequency(trades)
		report.Consistency = analysis.Consistency(trades)
		report.StopLoss = analysis.StopLossCoverage(trades)
		report.Volume = analysis.VolumeProfile(trades)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	report.Warnings = warnings

	logger.L().Info().
		Str("run_id", report.RunID).
		Int("trades", len(trades)).
		Int("overlap_groups", len(report.Concurrency.Groups)).
		Int("reversals", len(report.Reversals)).
		Int("escalations", len(report.Escalations)).
		Dur("elapsed", time.Since(start)).
		Msg("analysis run complete")
	return report, nil
}

// ScoreRisk evaluates the manual category scores into a payout decision.
// Assessor notes are appended to the tier's standing notes.
func (a *analyzer) ScoreRisk(scores risk.Scores, notes string) (risk.Decision, error) {
	decision, err := risk.Evaluate(scores)
	if err != nil {
		return risk.Decision{}, err
	}
	if notes != "" {
		decision.Notes = decision.Notes + "; " + notes
	}
	return decision, nil
}
