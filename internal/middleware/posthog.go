package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/billing_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// reportEvents maps the last segment of a report route to its analytics event.
var reportEvents = map[string]string{
	"ledger": "ledger_viewed",
	"aging":  "aging_viewed",
}

// PosthogMiddleware creates a Gin middleware handler that records successful report views with PostHog.
func PosthogMiddleware(analytics *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !analytics.Enabled() {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		event, props, ok := reportEvent(c)
		if !ok {
			return
		}
		analytics.Track(userID, event, props)
	}
}

// reportEvent derives the event name and properties for a report route such as
// /api/v1/companies/:company_id/customers/:party_id/aging.
func reportEvent(c *gin.Context) (string, map[string]any, bool) {
	route := c.FullPath()
	segments := strings.Split(strings.Trim(route, "/"), "/")
	if len(segments) < 2 {
		return "", nil, false
	}
	event, ok := reportEvents[segments[len(segments)-1]]
	if !ok {
		return "", nil, false
	}

	props := map[string]any{
		"route":       route,
		"status_code": c.Writer.Status(),
		"company_id":  c.Param("company_id"),
	}
	for _, s := range segments {
		switch s {
		case "customers":
			props["party_kind"] = "CUSTOMER"
		case "suppliers":
			props["party_kind"] = "SUPPLIER"
		}
	}
	if c.Query("fromDate") != "" || c.Query("toDate") != "" {
		props["date_range_supplied"] = true
	}
	return event, props, true
}
