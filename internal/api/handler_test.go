package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/payoutpulse/internal/domain/models"
	"github.com/guttosm/payoutpulse/internal/risk"
	"github.com/guttosm/payoutpulse/internal/service"
)

type mockAnalyzer struct {
	report   *models.Report
	runErr   error
	decision risk.Decision
	scoreErr error

	gotTrades []models.Trade
}

func (m *mockAnalyzer) Run(_ context.Context, trades []models.Trade, _ []models.Warning) (*models.Report, error) {
	m.gotTrades = trades
	return m.report, m.runErr
}

func (m *mockAnalyzer) ScoreRisk(_ risk.Scores, _ string) (risk.Decision, error) {
	return m.decision, m.scoreErr
}

var _ service.Analyzer = (*mockAnalyzer)(nil)

func setupRouterWithMock(m *mockAnalyzer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(m, time.UTC)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/analyze", h.Analyze)
	v1.POST("/risk-score", h.ScoreRisk)
	return r
}

func multipartUpload(t *testing.T, csv string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "trades.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(csv)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = w.Close()
	return &buf, w.FormDataContentType()
}

const feedHeader = "ticket,symbol,side,open-time,close-time,trade-date,duration,lots,pnl\n"

const feedRows = feedHeader +
	"1001,EURUSD,buy,01/09/2024 09:30:00 AM,01/09/2024 09:32:00 AM,01/09/2024 09:30:00 AM,02:00,0.5,10\n" +
	"1002,EURUSD,buy,05/09/2024 09:30:00 AM,05/09/2024 09:32:00 AM,05/09/2024 09:30:00 AM,02:00,0.5,10\n"

func TestAnalyze_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockAnalyzer
		query  string
		csv    string
		noFile bool
		status int
		assert func(t *testing.T, m *mockAnalyzer, body []byte)
	}{
		{
			name:   "missing file",
			svc:    &mockAnalyzer{},
			query:  "/api/v1/analyze",
			noFile: true,
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid start_date",
			svc:    &mockAnalyzer{},
			query:  "/api/v1/analyze?start_date=2024/09/01",
			csv:    feedRows,
			status: http.StatusBadRequest,
		},
		{
			name:   "start after end",
			svc:    &mockAnalyzer{},
			query:  "/api/v1/analyze?start_date=2024-09-30&end_date=2024-09-01",
			csv:    feedRows,
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed export",
			svc:    &mockAnalyzer{},
			query:  "/api/v1/analyze",
			csv:    "not,a,trade,export\n",
			status: http.StatusBadRequest,
		},
		{
			name:   "analysis failure",
			svc:    &mockAnalyzer{runErr: errors.New("boom")},
			query:  "/api/v1/analyze",
			csv:    feedRows,
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockAnalyzer{report: &models.Report{RunID: "run-1", TradeCount: 2}},
			query:  "/api/v1/analyze",
			csv:    feedRows,
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockAnalyzer, body []byte) {
				var out models.Report
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.RunID != "run-1" {
					t.Fatalf("unexpected body: %+v", out)
				}
				if len(m.gotTrades) != 2 {
					t.Fatalf("service must receive the parsed batch, got %d", len(m.gotTrades))
				}
			},
		},
		{
			name:   "date range filters before analysis",
			svc:    &mockAnalyzer{report: &models.Report{RunID: "run-2"}},
			query:  "/api/v1/analyze?start_date=2024-09-01&end_date=2024-09-01",
			csv:    feedRows,
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockAnalyzer, _ []byte) {
				if len(m.gotTrades) != 1 || m.gotTrades[0].Ticket != "1001" {
					t.Fatalf("want only the in-range trade, got %+v", m.gotTrades)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)

			var req *http.Request
			if tc.noFile {
				req = httptest.NewRequest(http.MethodPost, tc.query, nil)
			} else {
				body, contentType := multipartUpload(t, tc.csv)
				req = httptest.NewRequest(http.MethodPost, tc.query, body)
				req.Header.Set("Content-Type", contentType)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

func TestScoreRisk_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockAnalyzer
		body   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "invalid json",
			svc:    &mockAnalyzer{},
			body:   "{not json",
			status: http.StatusBadRequest,
		},
		{
			name:   "rejected scores",
			svc:    &mockAnalyzer{scoreErr: errors.New("out of range")},
			body:   `{"trading_style": 11}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "success",
			svc:    &mockAnalyzer{decision: risk.Decision{CompositeScore: 2.5, RiskLevel: "Low", PrimaryAction: "Pay the trader"}},
			body:   `{"trading_style": 2, "account_management": 3, "prohibited_risk": 2, "gambling_indicators": 3}`,
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out risk.Decision
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.RiskLevel != "Low" || out.CompositeScore != 2.5 {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/risk-score", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}
