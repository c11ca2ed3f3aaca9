package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/conspirant/kcet-planner-go/internal/ctxutil"
)

// requestContextMiddleware tags every API request with an ID surfaceable
// in logs and the response headers.
func requestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(ctxutil.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// profileContextMiddleware puts the profile path parameter into the
// request context so downstream logging picks it up.
func profileContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(ctxutil.WithProfileID(c.Request.Context(), c.Param("profile")))
		c.Next()
	}
}
