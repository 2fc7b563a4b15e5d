package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/extract"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

// ImportService loads gameplans from exported JSON arrays or single raw
// markdown documents.
type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// importedGameplan is the export-file shape. Tags arrive as a list;
// everything except content is optional.
type importedGameplan struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Season     string   `json:"season"`
	Tournament string   `json:"tournament"`
	Format     string   `json:"format"`
	Author     string   `json:"author"`
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Import dispatches on the body shape: a JSON array of gameplan objects
// or a single markdown document. With upsert set, entries matching an
// existing title update that row instead of creating a duplicate.
func (s *ImportService) Import(body []byte, upsert bool) (*ImportResult, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, fmt.Errorf("empty import body")
	}
	if strings.HasPrefix(trimmed, "[") {
		return s.importJSON([]byte(trimmed), upsert)
	}
	return s.importMarkdown(trimmed, upsert)
}

func (s *ImportService) importJSON(body []byte, upsert bool) (*ImportResult, error) {
	var entries []importedGameplan
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse import JSON: %w", err)
	}

	result := &ImportResult{}
	for i, entry := range entries {
		if strings.TrimSpace(entry.Content) == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("entry %d: missing content", i))
			continue
		}
		if entry.Title == "" {
			entry.Title = extract.ParseFrontMatter(entry.Content).Title
		}
		if entry.Title == "" {
			entry.Title = "Untitled Gameplan"
		}

		plan := models.Gameplan{
			ID:         entry.ID,
			Title:      entry.Title,
			Content:    entry.Content,
			Tags:       strings.Join(entry.Tags, ","),
			Season:     entry.Season,
			Tournament: entry.Tournament,
			Format:     entry.Format,
			Author:     entry.Author,
		}
		if err := s.save(&plan, upsert); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("entry %d (%s): %v", i, entry.Title, err))
			continue
		}
		if plan.CreatedAt.Equal(plan.UpdatedAt) {
			result.Imported++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func (s *ImportService) importMarkdown(doc string, upsert bool) (*ImportResult, error) {
	fm := extract.ParseFrontMatter(doc)
	title := fm.Title
	if title == "" {
		title = "Untitled Gameplan"
	}

	plan := models.Gameplan{
		Title:         title,
		Content:       doc,
		Tags:          strings.Join(fm.Tags, ","),
		Season:        fm.Season,
		Tournament:    fm.Tournament,
		Format:        fm.Format,
		Author:        fm.Author,
		TeamArchetype: fm.TeamArchetype,
	}
	if err := s.save(&plan, upsert); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	if plan.CreatedAt.Equal(plan.UpdatedAt) {
		result.Imported = 1
	} else {
		result.Updated = 1
	}
	return result, nil
}

// save creates the gameplan, or updates the row with the same title when
// upserting. Timestamps distinguish create from update for the caller.
func (s *ImportService) save(plan *models.Gameplan, upsert bool) error {
	if upsert {
		var existing models.Gameplan
		err := s.db.Where("title = ?", plan.Title).First(&existing).Error
		if err == nil {
			plan.ID = existing.ID
			plan.CreatedAt = existing.CreatedAt
			plan.UpdatedAt = time.Now()
			return s.db.Save(plan).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
	}

	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	return s.db.Create(plan).Error
}
