package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/database"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/extract"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/metrics"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

type GameplanHandler struct{}

func NewGameplanHandler() *GameplanHandler {
	return &GameplanHandler{}
}

func (h *GameplanHandler) ListGameplans(c *gin.Context) {
	db := database.GetDB()

	var plans []models.Gameplan
	query := db.Order("updated_at DESC")

	// Optional filters
	if season := c.Query("season"); season != "" {
		query = query.Where("season = ?", season)
	}
	if format := c.Query("format"); format != "" {
		query = query.Where("format = ?", format)
	}
	if tag := c.Query("tag"); tag != "" {
		query = query.Where("tags LIKE ?", "%"+tag+"%")
	}

	if err := query.Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.GameplansTotal.Set(float64(len(plans)))
	c.JSON(http.StatusOK, models.GameplanListResult{
		Gameplans:  plans,
		TotalCount: len(plans),
	})
}

func (h *GameplanHandler) GetGameplan(c *gin.Context) {
	plan, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *GameplanHandler) CreateGameplan(c *gin.Context) {
	var req models.CreateGameplanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Metadata absent from the request falls back to the document's
	// front matter.
	fm := extract.ParseFrontMatter(req.Content)
	title := req.Title
	if title == "" {
		title = fm.Title
	}
	if title == "" {
		title = "Untitled Gameplan"
	}
	tags := req.Tags
	if len(tags) == 0 {
		tags = fm.Tags
	}

	now := time.Now()
	plan := models.Gameplan{
		ID:            uuid.New().String(),
		Title:         title,
		Content:       req.Content,
		Tags:          strings.Join(tags, ","),
		Season:        firstNonEmpty(req.Season, fm.Season),
		Tournament:    firstNonEmpty(req.Tournament, fm.Tournament),
		Format:        firstNonEmpty(req.Format, fm.Format),
		Author:        fm.Author,
		TeamArchetype: fm.TeamArchetype,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := database.GetDB().Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *GameplanHandler) UpdateGameplan(c *gin.Context) {
	plan, ok := h.load(c)
	if !ok {
		return
	}

	var req models.UpdateGameplanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Content != nil {
		plan.Content = *req.Content
	}
	if req.Tags != nil {
		plan.Tags = strings.Join(*req.Tags, ",")
	}
	if req.Season != nil {
		plan.Season = *req.Season
	}
	if req.Tournament != nil {
		plan.Tournament = *req.Tournament
	}
	if req.Format != nil {
		plan.Format = *req.Format
	}
	plan.UpdatedAt = time.Now()

	if err := database.GetDB().Save(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *GameplanHandler) DeleteGameplan(c *gin.Context) {
	plan, ok := h.load(c)
	if !ok {
		return
	}
	if err := database.GetDB().Delete(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": plan.ID})
}

// GetTeam returns the roster extracted from the gameplan document.
func (h *GameplanHandler) GetTeam(c *gin.Context) {
	plan, ok := h.load(c)
	if !ok {
		return
	}
	metrics.ExtractionsTotal.WithLabelValues("team").Inc()
	c.JSON(http.StatusOK, extract.ExtractTeam(plan.Content))
}

// GetMatchups returns the matchup records extracted from the gameplan
// document, keyed by opponent label.
func (h *GameplanHandler) GetMatchups(c *gin.Context) {
	plan, ok := h.load(c)
	if !ok {
		return
	}
	start := time.Now()
	matchups := extract.ExtractMatchups(plan.Content)
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	metrics.ExtractionsTotal.WithLabelValues("matchups").Inc()
	c.JSON(http.StatusOK, matchups)
}

// GetReplays returns replay records parsed from the document's Replays
// section, optionally filtered by ?matchup= and ?gameplan=.
func (h *GameplanHandler) GetReplays(c *gin.Context) {
	plan, ok := h.load(c)
	if !ok {
		return
	}

	matchup := c.Query("matchup")
	gameplanNumber := 0
	if raw := c.Query("gameplan"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameplan must be a number"})
			return
		}
		gameplanNumber = n
	}

	metrics.ExtractionsTotal.WithLabelValues("replays").Inc()
	c.JSON(http.StatusOK, extract.ExtractReplays(plan.Content, matchup, gameplanNumber))
}

// GetCalcs returns damage-calc entries for one matchup (?matchup=),
// associated with roster Pokémon by label/text mention.
func (h *GameplanHandler) GetCalcs(c *gin.Context) {
	plan, ok := h.load(c)
	if !ok {
		return
	}

	matchup := c.Query("matchup")
	if matchup == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "matchup query parameter is required"})
		return
	}

	metrics.ExtractionsTotal.WithLabelValues("calcs").Inc()
	calcs := extract.ExtractDamageCalcs(plan.Content, matchup)
	roster := extract.ExtractTeam(plan.Content)
	c.JSON(http.StatusOK, extract.AssociateCalcs(calcs, roster))
}

// load fetches the gameplan named by the :id path param, writing the
// error response itself on failure.
func (h *GameplanHandler) load(c *gin.Context) (models.Gameplan, bool) {
	var plan models.Gameplan
	if err := database.GetDB().First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "gameplan not found"})
		return plan, false
	}
	return plan, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
