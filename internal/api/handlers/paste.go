package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/metrics"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/services"
)

type PasteHandler struct {
	pasteService *services.PasteService
}

func NewPasteHandler(paste *services.PasteService) *PasteHandler {
	return &PasteHandler{pasteService: paste}
}

// FetchPaste proxies a roster fetch for the UI: GET /api/paste/fetch?url=...
// A paste that cannot be fetched is a 404, not a 500; the UI falls back
// to the manually entered opponent roster.
func (h *PasteHandler) FetchPaste(c *gin.Context) {
	pasteURL := strings.TrimSpace(c.Query("url"))
	if pasteURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}
	if !strings.HasPrefix(pasteURL, "http://") && !strings.HasPrefix(pasteURL, "https://") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url must be absolute"})
		return
	}

	start := time.Now()
	result, err := h.pasteService.FetchRoster(c.Request.Context(), pasteURL)
	metrics.PasteFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.PasteFetchesTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		metrics.PasteFetchesTotal.WithLabelValues("miss").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "no roster found at url"})
		return
	}

	metrics.PasteFetchesTotal.WithLabelValues("hit").Inc()
	c.JSON(http.StatusOK, result)
}
