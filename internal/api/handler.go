package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/payoutpulse/internal/domain/dto"
	"github.com/guttosm/payoutpulse/internal/ingestion"
	"github.com/guttosm/payoutpulse/internal/risk"
	"github.com/guttosm/payoutpulse/internal/service"
)

// Handler provides HTTP handlers for the payout-analysis endpoints.
//
// Responsibilities:
//   - Validate incoming uploads and query parameters
//   - Hand the normalized batch to the analysis service
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.Analyzer
	loc *time.Location
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc: the analysis service dependency.
//   - loc: feed timezone used to normalize uploaded timestamps.
func NewHandler(svc service.Analyzer, loc *time.Location) *Handler {
	return &Handler{svc: svc, loc: loc}
}

// Analyze handles POST /api/v1/analyze requests.
//
// The trade ledger arrives as a multipart CSV upload; the full behavioral
// report comes back as JSON. Data-quality problems are returned inside
// the report's warnings, not as HTTP errors.
//
// Analyze godoc
// @Summary      Analyze a trade ledger
// @Description  Runs the concurrency sweep, interval, martingale and statistics analyzers over an uploaded CSV ledger
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        file        formData  file    true   "CSV trade export"
// @Param        start_date  query     string  false  "Inclusive lower bound in YYYY-MM-DD" example(2024-09-01)
// @Param        end_date    query     string  false  "Inclusive upper bound in YYYY-MM-DD" example(2024-09-30)
// @Success      200  {object}  models.Report          "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("file upload is required", err))
		return
	}

	startDate, err := h.parseDateParam(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start_date format, expected YYYY-MM-DD", err))
		return
	}
	endDate, err := h.parseDateParam(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end_date format, expected YYYY-MM-DD", err))
		return
	}
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start_date must not be after end_date", nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("cannot read upload", err))
		return
	}
	defer func() { _ = f.Close() }()

	trades, warnings, err := ingestion.Parse(c.Request.Context(), f, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("malformed trade export", err))
		return
	}
	trades = ingestion.FilterRange(trades, startDate, endDate)

	report, err := h.svc.Run(c.Request.Context(), trades, warnings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("analysis run failed", err))
		return
	}

	c.JSON(http.StatusOK, report)
}

// ScoreRisk handles POST /api/v1/risk-score requests.
//
// ScoreRisk godoc
// @Summary      Score a payout request
// @Description  Combines the four manual category scores into a weighted composite and the matching payout decision
// @Tags         risk
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RiskScoreRequest  true  "Category scores, each in [0,10]"
// @Success      200      {object}  risk.Decision          "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Router       /api/v1/risk-score [post]
func (h *Handler) ScoreRisk(c *gin.Context) {
	var req dto.RiskScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	decision, err := h.svc.ScoreRisk(risk.Scores{
		TradingStyle:       req.TradingStyle,
		AccountManagement:  req.AccountManagement,
		ProhibitedRisk:     req.ProhibitedRisk,
		GamblingIndicators: req.GamblingIndicators,
	}, req.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid category scores", err))
		return
	}

	c.JSON(http.StatusOK, decision)
}

// parseDateParam reads an optional YYYY-MM-DD query value in the feed
// timezone, so day boundaries match TradeDay bucketing.
func (h *Handler) parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", s, h.loc)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
