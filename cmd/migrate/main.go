package main

import (
	"log"

	"ai-journal-be/internal/bootstrap"
	"ai-journal-be/internal/config"
	"ai-journal-be/internal/model"
	"ai-journal-be/pkg/database"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()

	// 2. Connect to Database using existing GORM helpers
	db, err := bootstrap.OpenDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Printf("Starting GORM migration (%s)...", db.Dialector.Name())

	// 3. Extension, tables and the ivfflat index
	if err := database.Migrate(db, model.AllModels()...); err != nil {
		log.Fatalf("Error: migration failed: %v", err)
	}

	// 4. Post-migration: read-side view
	if db.Dialector.Name() == database.DriverPostgres {
		err := db.Exec(`CREATE OR REPLACE VIEW note_latest_insights AS
			SELECT DISTINCT ON (m.note_id) m.note_id, n.user_id, n.entry_date,
				m.ai_mood_score, m.ai_productivity_score, m.sentiment_polarity, m.tags, m.created_at
			FROM note_ai_metrics m JOIN notes n ON n.id = m.note_id
			WHERE n.deleted_at IS NULL
			ORDER BY m.note_id, m.created_at DESC;`).Error
		if err != nil {
			log.Printf("Warn: Failed to create note_latest_insights view: %v", err)
		}
	}

	log.Println("[INFO] Database migration completed successfully.")
}
