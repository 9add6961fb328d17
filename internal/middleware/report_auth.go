package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// reportAuthKey marks a request that presented the application bearer
// token.
const reportAuthKey = contextKey("reportAuthorized")

// ReportTokenAuth creates a Gin middleware that records whether the
// request carries the configured application token in an
// "Authorization: Bearer <token>" header. It never aborts the request:
// the gated report handlers fail open and serve empty payloads to
// unauthorized callers instead of a 401.
func ReportTokenAuth(appToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractBearerToken(c.GetHeader("Authorization")); token != "" && token == appToken {
			c.Set(string(reportAuthKey), true)
		}
		c.Next()
	}
}

// IsReportAuthorized reports whether ReportTokenAuth matched the
// application token for this request.
func IsReportAuthorized(c *gin.Context) bool {
	authorized, _ := c.Get(string(reportAuthKey))
	ok, _ := authorized.(bool)
	return ok
}

func extractBearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
