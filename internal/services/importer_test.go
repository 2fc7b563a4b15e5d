package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Gameplan{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestImportJSONArray(t *testing.T) {
	db := newTestDB(t)
	svc := NewImportService(db)

	body := `[
		{"title": "Trick Room", "content": "# Trick Room\n", "tags": ["trick room"], "season": "2026"},
		{"content": "no title here"},
		{"title": "Broken", "content": ""}
	]`

	result, err := svc.Import([]byte(body), false)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}

	var plans []models.Gameplan
	if err := db.Order("title").Find(&plans).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("got %d rows, want 2", len(plans))
	}
	if plans[0].Title != "Trick Room" {
		t.Errorf("title = %q, want %q", plans[0].Title, "Trick Room")
	}
	if plans[0].ID == "" {
		t.Error("imported gameplan has empty id")
	}
	if plans[0].Tags != "trick room" {
		t.Errorf("tags = %q, want %q", plans[0].Tags, "trick room")
	}
	if plans[1].Title != "Untitled Gameplan" {
		t.Errorf("title = %q, want %q", plans[1].Title, "Untitled Gameplan")
	}
}

func TestImportMarkdown(t *testing.T) {
	db := newTestDB(t)
	svc := NewImportService(db)

	doc := `---
title: "Sun Balance"
tags: [sun, balance]
season: "2026"
---

# Sun Balance
`
	result, err := svc.Import([]byte(doc), false)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}

	var plan models.Gameplan
	if err := db.First(&plan).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if plan.Title != "Sun Balance" {
		t.Errorf("Title = %q, want %q", plan.Title, "Sun Balance")
	}
	if plan.Tags != "sun,balance" {
		t.Errorf("Tags = %q, want %q", plan.Tags, "sun,balance")
	}
	if plan.Season != "2026" {
		t.Errorf("Season = %q, want %q", plan.Season, "2026")
	}
}

func TestImportUpsertByTitle(t *testing.T) {
	db := newTestDB(t)
	svc := NewImportService(db)

	first := `[{"title": "Rain", "content": "v1"}]`
	if _, err := svc.Import([]byte(first), true); err != nil {
		t.Fatalf("first import: %v", err)
	}

	second := `[{"title": "Rain", "content": "v2"}]`
	result, err := svc.Import([]byte(second), true)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if result.Updated != 1 || result.Imported != 0 {
		t.Errorf("Updated/Imported = %d/%d, want 1/0", result.Updated, result.Imported)
	}

	var count int64
	db.Model(&models.Gameplan{}).Count(&count)
	if count != 1 {
		t.Errorf("row count = %d, want 1 after upsert", count)
	}
	var plan models.Gameplan
	db.First(&plan)
	if plan.Content != "v2" {
		t.Errorf("Content = %q, want %q", plan.Content, "v2")
	}
}

func TestImportRejectsEmptyBody(t *testing.T) {
	svc := NewImportService(newTestDB(t))
	if _, err := svc.Import([]byte("   "), false); err == nil {
		t.Fatal("expected error for empty body")
	}
}
