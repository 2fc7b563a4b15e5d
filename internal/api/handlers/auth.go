package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/services"
)

type AuthHandler struct {
	githubService *services.GitHubService
}

func NewAuthHandler(github *services.GitHubService) *AuthHandler {
	return &AuthHandler{githubService: github}
}

type exchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeGitHubCode trades an OAuth authorization code for an access
// token. The client secret stays server-side.
func (h *AuthHandler) ExchangeGitHubCode(c *gin.Context) {
	if !h.githubService.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "github oauth is not configured"})
		return
	}

	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.githubService.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}
