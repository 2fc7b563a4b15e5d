package models

import (
	"strings"
	"time"
)

// Gameplan is the persisted document: one markdown file describing a team
// and its matchup strategies. Everything else in the API is derived from
// Content on demand.
type Gameplan struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null;index"`
	Content       string    `json:"content"`
	Tags          string    `json:"tags"` // comma-joined
	Season        string    `json:"season" gorm:"index"`
	Tournament    string    `json:"tournament"`
	Format        string    `json:"format" gorm:"index"`
	Author        string    `json:"author"`
	TeamArchetype string    `json:"team_archetype"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TagList splits the stored comma-joined tags, dropping empties.
func (g *Gameplan) TagList() []string {
	if g.Tags == "" {
		return nil
	}
	parts := strings.Split(g.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

type CreateGameplanRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content" binding:"required"`
	Tags       []string `json:"tags"`
	Season     string   `json:"season"`
	Tournament string   `json:"tournament"`
	Format     string   `json:"format"`
}

type UpdateGameplanRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	Season     *string   `json:"season"`
	Tournament *string   `json:"tournament"`
	Format     *string   `json:"format"`
}

type GameplanListResult struct {
	Gameplans  []Gameplan `json:"gameplans"`
	TotalCount int        `json:"total_count"`
}
