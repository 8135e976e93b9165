package services

import (
	"net/http"

	"dentadmin_back_end_go/provider"

	"github.com/gin-gonic/gin"
)

// loadFailed blocks a data endpoint while the collections are unusable:
// either the last load failed or a reload is still in flight. The client
// recovers by calling POST /api/v1/dashboard/reload.
func loadFailed(c *gin.Context, p *provider.Provider) bool {
	if p.LoadErr() != nil || p.Loading() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Dashboard data unavailable, reload required"})
		return true
	}
	return false
}

// GetStats returns the count-only projection from the last load.
func GetStats(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	c.JSON(http.StatusOK, p.Stats())
}

// ReloadDashboard refetches all collections. There is no automatic retry
// anywhere; a failed load stays failed until this is called again.
func ReloadDashboard(c *gin.Context, p *provider.Provider) {
	if err := p.Load(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Dashboard reloaded"})
}
