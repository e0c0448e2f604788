package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestID is a Gin middleware that tags each request with a UUID.
//
// The id is stored in the Gin context under "request_id" and echoed in
// the X-Request-ID response header, so a slow or failed analysis upload
// can be matched to its request log line. Analysis runs themselves get
// a separate run_id; the two identify different lifetimes (one HTTP
// exchange vs one report).
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()

		// Store in context for downstream usage
		c.Set(RequestIDKey, id)

		// Expose in response headers for clients
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
