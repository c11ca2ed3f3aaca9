// Package main provides the planner API server entry point.
package main

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conspirant/kcet-planner-go/internal/logger"
	"github.com/conspirant/kcet-planner-go/internal/metrics"
)

// securityHeadersMiddleware adds security headers to all responses
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")
		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")
		// Strict referrer policy
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		// Restrict permissions
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	}
}

// loggingMiddleware logs HTTP requests and records per-route metrics
func loggingMiddleware(log *logger.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.HTTPDurationSeconds.WithLabelValues(route).Observe(duration.Seconds())

		entry := log.WithField("method", method).
			WithField("path", path).
			WithField("status", status).
			WithField("duration_ms", duration.Milliseconds()).
			WithField("ip", c.ClientIP())

		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Errorf("Request completed with errors")
		} else {
			switch {
			case status >= 500:
				entry.Errorf("Request failed")
			case status >= 400:
				entry.Warnf("Request completed with client error")
			default:
				entry.Debugf("Request completed")
			}
		}
	}
}
