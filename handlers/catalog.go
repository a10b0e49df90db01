package handlers

import (
	"net/http"
	"strconv"

	"ecoskip/services/catalog"
	"ecoskip/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: c}
}

// parseSkipFilter reads the optional road and heavy query flags. It writes the 400
// itself and reports false when a flag is malformed.
func parseSkipFilter(c *gin.Context) (catalog.Filter, bool) {
	var f catalog.Filter
	for param, dst := range map[string]*bool{"road": &f.RoadPlacement, "heavy": &f.HeavyWaste} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid filter", param+" must be true or false")
			return f, false
		}
		*dst = v
	}
	return f, true
}

// GetSkipsHandler handles GET /api/skips?road=&heavy=.
func (h *CatalogHandler) GetSkipsHandler(c *gin.Context) {
	f, ok := parseSkipFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"skips": catalog.Views(h.Catalog.Available(f), nil)})
}

func (h *CatalogHandler) GetWasteTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wasteTypes": h.Catalog.WasteTypes()})
}
