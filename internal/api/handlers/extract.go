package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/dex"
)

// ExtractHandler serves lookups over the static dex tables.
type ExtractHandler struct{}

func NewExtractHandler() *ExtractHandler {
	return &ExtractHandler{}
}

// GetSprite resolves a free-text Pokémon name to its dex number and
// sprite slug: GET /api/sprites/:name.
func (h *ExtractHandler) GetSprite(c *gin.Context) {
	name, ok := dex.Resolve(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown pokemon name"})
		return
	}
	entry, _ := dex.Lookup(name)
	c.JSON(http.StatusOK, gin.H{
		"name":   name,
		"dex":    entry.Dex,
		"sprite": entry.Sprite,
	})
}
