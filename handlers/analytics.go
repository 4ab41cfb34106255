package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookease/services/analytics"
)

// GetAnalytics computes the reporting snapshot from the current ledger
// and catalog. Back-office only.
func (h *HandlerBundle) GetAnalytics(c *gin.Context) {
	snapshot := analytics.Compute(h.Ledger.List(), h.Catalog.Courses())
	c.JSON(http.StatusOK, gin.H{"analytics": snapshot})
}
