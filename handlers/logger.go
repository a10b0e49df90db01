package handlers

import (
	"net/http"

	"ecoskip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the global logger tagged with the request route.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.GetLogger().With(
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
	)
}

// serverError writes the 500 body: a fixed message plus the underlying error text.
func serverError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusInternalServerError, "Server error", err.Error())
}
