package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/metrics"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/services"
)

// Maximum import body size
const maxImportBytes = 10 << 20 // 10 MiB

type ImportHandler struct {
	importService *services.ImportService
}

func NewImportHandler(importer *services.ImportService) *ImportHandler {
	return &ImportHandler{importService: importer}
}

// ImportGameplans accepts either a JSON array of gameplan objects or a
// single raw markdown document. ?upsert=true updates rows matching an
// existing title instead of creating duplicates.
func (h *ImportHandler) ImportGameplans(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	upsert := c.Query("upsert") == "true"
	result, err := h.importService.Import(body, upsert)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics.ImportsTotal.WithLabelValues("imported").Add(float64(result.Imported))
	metrics.ImportsTotal.WithLabelValues("updated").Add(float64(result.Updated))
	metrics.ImportsTotal.WithLabelValues("skipped").Add(float64(result.Skipped))
	c.JSON(http.StatusOK, result)
}
