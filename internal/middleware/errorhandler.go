package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/payoutpulse/internal/domain/dto"
	"github.com/guttosm/payoutpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors collected during
// request handling into a standardized JSON error response.
//
// Behavior:
//   - Lets the request run, then inspects c.Errors.
//   - If a handler already wrote a response, does nothing.
//   - Otherwise logs the first error and answers 500 with dto.ErrorResponse.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors[0].Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError aborts the request with the given status and a
// standardized error body. Handlers use it instead of assembling
// dto.ErrorResponse by hand.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
