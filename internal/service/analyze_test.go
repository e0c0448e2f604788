package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/payoutpulse/internal/domain/models"
	"github.com/guttosm/payoutpulse/internal/risk"
)

func mkTrade(ticket, symbol, side string, open, close time.Time, lots, pnl float64) models.Trade {
	return models.Trade{
		Ticket:      ticket,
		Symbol:      symbol,
		Side:        side,
		OpenTime:    open,
		CloseTime:   close,
		TradeTime:   open,
		Lots:        lots,
		PnL:         pnl,
		PnLNet:      pnl,
		PnLCategory: models.CategorizePnL(pnl),
		TradeDay:    models.DayOf(open),
	}
}

func TestRun_FullReport(t *testing.T) {
	at := func(hh, mm, ss int) time.Time {
		return time.Date(2024, time.September, 2, hh, mm, ss, 0, time.UTC)
	}
	// A and B overlap and form a loss-then-reversal pair 2 seconds apart
	// with grown size; C is unrelated on another symbol.
	trades := []models.Trade{
		mkTrade("A", "EURUSD", "buy", at(10, 0, 0), at(10, 5, 0), 1, -50),
		mkTrade("B", "EURUSD", "sell", at(10, 0, 2), at(10, 6, 0), 2, 30),
		mkTrade("C", "GBPUSD", "buy", at(11, 0, 0), at(11, 5, 0), 1, 10),
	}
	warnings := []models.Warning{{Ticket: "Z", Line: 99, Reason: "invalid duration"}}

	svc := NewAnalyzer(Options{MartingaleWindow: time.Minute})
	report, err := svc.Run(context.Background(), trades, warnings)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if report.RunID == "" || report.GeneratedAt.IsZero() {
		t.Fatalf("run metadata missing: %+v", report)
	}
	if report.TradeCount != 3 {
		t.Fatalf("want trade count 3, got %d", report.TradeCount)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Ticket != "Z" {
		t.Fatalf("ingestion warnings must carry through: %+v", report.Warnings)
	}

	if len(report.Concurrency.Groups) != 1 {
		t.Fatalf("want 1 overlap group, got %+v", report.Concurrency.Groups)
	}
	g := report.Concurrency.Groups[0]
	if len(g.Tickets) != 2 || g.Tickets[0] != "A" || g.Tickets[1] != "B" {
		t.Fatalf("unexpected overlap tickets: %v", g.Tickets)
	}
	if report.Concurrency.Counts["C"] != 1 {
		t.Fatalf("unrelated trade must count 1, got %d", report.Concurrency.Counts["C"])
	}

	if len(report.Reversals) != 1 {
		t.Fatalf("want 1 reversal pair, got %+v", report.Reversals)
	}
	if report.Reversals[0].ElapsedSeconds != 2 {
		t.Fatalf("want 2s elapsed, got %v", report.Reversals[0].ElapsedSeconds)
	}
	if len(report.Escalations) != 1 || report.Escalations[0].Ticket != "B" {
		t.Fatalf("want escalation on B, got %+v", report.Escalations)
	}

	if len(report.Intervals) == 0 {
		t.Fatalf("interval bands missing")
	}
	if report.Summary.TotalTrades != 3 || report.Summary.Wins != 2 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
	if len(report.Frequency.PerDay) != 1 || report.Frequency.PerDay[0].Count != 3 {
		t.Fatalf("unexpected frequency: %+v", report.Frequency)
	}
	if report.StopLoss.Uncovered != 3 {
		t.Fatalf("no trade carries a stop loss here: %+v", report.StopLoss)
	}
	if report.Volume.Max != 2 {
		t.Fatalf("unexpected volume profile: %+v", report.Volume)
	}
}

func TestRun_EmptyBatch(t *testing.T) {
	svc := NewAnalyzer(Options{})
	report, err := svc.Run(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.TradeCount != 0 || len(report.Concurrency.Groups) != 0 {
		t.Fatalf("unexpected report for empty batch: %+v", report)
	}
}

func TestRun_CanceledContextDiscardsReport(t *testing.T) {
	at := func(hh int) time.Time {
		return time.Date(2024, time.September, 2, hh, 0, 0, 0, time.UTC)
	}
	trades := []models.Trade{
		mkTrade("A", "EURUSD", "buy", at(10), at(11), 1, 10),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewAnalyzer(Options{})
	report, err := svc.Run(ctx, trades, nil)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if report != nil {
		t.Fatalf("a failed run must not yield a partial report: %+v", report)
	}
}

func TestScoreRisk(t *testing.T) {
	svc := NewAnalyzer(Options{})

	d, err := svc.ScoreRisk(risk.Scores{TradingStyle: 2, AccountManagement: 2, ProhibitedRisk: 2, GamblingIndicators: 2}, "reviewed by desk")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.RiskLevel != "Low" {
		t.Fatalf("unexpected level: %+v", d)
	}
	if !strings.HasSuffix(d.Notes, "; reviewed by desk") {
		t.Fatalf("assessor notes must be appended: %q", d.Notes)
	}

	if _, err := svc.ScoreRisk(risk.Scores{TradingStyle: 11}, ""); err == nil {
		t.Fatalf("out-of-range scores must be rejected")
	}
}
