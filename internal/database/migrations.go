package database

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RunMigrations runs custom data migrations after AutoMigrate. Gameplans
// written by older exports may lack ids or carry NULL metadata columns;
// readers expect both to be present. Safe to run repeatedly.
func RunMigrations(db *gorm.DB) error {
	if err := backfillGameplanIDs(db); err != nil {
		return err
	}
	normalizeMetadataColumns(db)
	return nil
}

// backfillGameplanIDs assigns ids to rows imported without one. Bulk
// JSON imports from the old export format identified gameplans by title
// only.
func backfillGameplanIDs(db *gorm.DB) error {
	if !db.Migrator().HasTable("gameplans") {
		return nil
	}

	var titles []string
	if err := db.Raw(`SELECT title FROM gameplans WHERE id IS NULL OR id = ''`).Scan(&titles).Error; err != nil {
		return err
	}
	for _, title := range titles {
		result := db.Exec(`UPDATE gameplans SET id = ? WHERE title = ? AND (id IS NULL OR id = '')`,
			uuid.New().String(), title)
		if result.Error != nil {
			log.Printf("Warning: failed to backfill id for gameplan %q: %v", title, result.Error)
		}
	}
	if len(titles) > 0 {
		log.Printf("Backfilled ids for %d gameplans", len(titles))
	}
	return nil
}

// normalizeMetadataColumns replaces NULL metadata values with empty
// strings so handlers never see sql NULLs in optional fields.
func normalizeMetadataColumns(db *gorm.DB) {
	if !db.Migrator().HasTable("gameplans") {
		return
	}
	for _, col := range []string{"tags", "season", "tournament", "format", "author", "team_archetype"} {
		if !db.Migrator().HasColumn("gameplans", col) {
			continue
		}
		result := db.Exec(`UPDATE gameplans SET ` + col + ` = '' WHERE ` + col + ` IS NULL`)
		if result.Error != nil {
			log.Printf("Warning: failed to normalize %s column: %v", col, result.Error)
		}
	}
}
