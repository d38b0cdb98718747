package middleware

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// sensitiveHeaderPatterns matches headers whose values must never be logged
var sensitiveHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)authorization`),
	regexp.MustCompile(`(?i)api[-_]?key`),
	regexp.MustCompile(`(?i)token`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`(?i)cookie`),
}

// RequestLogger creates a middleware that logs every request with its
// status, latency, and client address. Sensitive header values are redacted.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)

		path := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			path = path + "?" + query
		}

		log.Printf("%s %s | %d | %s | %s | %s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			redactedHeaderSummary(c.Request.Header),
		)

		if len(c.Errors) > 0 {
			log.Printf("Request errors: %s", c.Errors.String())
		}
	}
}

// redactedHeaderSummary returns a compact header summary with sensitive
// values replaced
func redactedHeaderSummary(headers map[string][]string) string {
	parts := make([]string, 0, len(headers))
	for key, values := range headers {
		if isSensitiveHeader(key) {
			parts = append(parts, key+"=[REDACTED]")
			continue
		}
		parts = append(parts, key+"="+strings.Join(values, ","))
	}
	return strings.Join(parts, " ")
}

// isSensitiveHeader checks if a header name is sensitive
func isSensitiveHeader(headerName string) bool {
	for _, pattern := range sensitiveHeaderPatterns {
		if pattern.MatchString(headerName) {
			return true
		}
	}
	return false
}
