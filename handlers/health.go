package handlers

import (
	"net/http"
	"time"

	"ecoskip/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /api/health. It always answers 200; dependency state is
// reported from the background monitor's last snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"checks":    status.Checks,
		"checkedAt": status.CheckedAt,
	})
}
