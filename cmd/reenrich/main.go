package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"ai-journal-be/internal/bootstrap"
	"ai-journal-be/internal/config"
	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/repository/specification"
	"ai-journal-be/internal/repository/unitofwork"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// reenrich runs the enrichment pipeline for one stored note, synchronously,
// and prints the resulting metric.
func main() {
	noteFlag := flag.String("note", "", "note id to re-enrich")
	mood := flag.Int("mood", 0, "self-reported mood 1-10 (optional)")
	productivity := flag.Int("productivity", 0, "self-reported productivity 1-10 (optional)")
	flag.Parse()

	noteId, err := uuid.Parse(*noteFlag)
	if err != nil {
		color.Red("usage: reenrich -note <uuid> [-mood N -productivity N]")
		os.Exit(2)
	}

	cfg := config.Load()
	ctx := context.Background()

	db, err := bootstrap.OpenDatabase(cfg.Database)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	note, err := uowFactory.NewUnitOfWork(ctx).NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		color.Red("Failed to load note: %v", err)
		os.Exit(1)
	}
	if note == nil {
		color.Red("Note %s not found", noteId)
		os.Exit(1)
	}
	if note.UserId == nil {
		color.Yellow("Note %s is anonymous; anonymous notes are never enriched", noteId)
		os.Exit(0)
	}

	container := bootstrap.NewContainer(ctx, db, cfg)
	defer container.Close()

	job := dto.EnrichmentJob{
		NoteId:  note.Id,
		UserId:  *note.UserId,
		Content: note.Content,
		Date:    note.EntryDate,
	}
	if *mood > 0 && *productivity > 0 {
		job.SelfReportedMood = mood
		job.SelfReportedProductivity = productivity
	}

	before, _ := uowFactory.NewUnitOfWork(ctx).AiMetricRepository().FindLatestByNoteId(ctx, note.Id)

	color.Cyan("Re-enriching note %s (%s)", note.Id, note.EntryDate)
	container.EnrichmentService.Enrich(ctx, job)

	after, err := uowFactory.NewUnitOfWork(ctx).AiMetricRepository().FindLatestByNoteId(ctx, note.Id)
	if err != nil {
		color.Red("Failed to read metric: %v", err)
		os.Exit(1)
	}
	if after == nil || (before != nil && after.Id == before.Id) {
		color.Red("No new metric was written; check the logs for the failure or a held run guard")
		os.Exit(1)
	}

	printMetric(after)
}

func printMetric(m *entity.AiMetric) {
	color.Green("Metric %s written at %s", m.Id, m.CreatedAt.Format("2006-01-02 15:04:05"))
	color.White("  mood:          %s", score(m.AiMoodScore))
	color.White("  productivity:  %s", score(m.AiProductivityScore))

	sentiment := color.New(color.FgYellow)
	switch m.SentimentPolarity {
	case "positive":
		sentiment = color.New(color.FgGreen)
	case "negative":
		sentiment = color.New(color.FgRed)
	}
	sentiment.Printf("  sentiment:     %s / %s (%.2f)\n", m.SentimentPolarity, m.SentimentEmotion, m.SentimentConfidence)

	tags := "-"
	if len(m.Tags) > 0 {
		tags = strings.Join(m.Tags, ", ")
	}
	color.White("  tags:          %s", tags)
}

func score(v *int) string {
	if v == nil {
		return "-"
	}
	return color.New(color.Bold).Sprintf("%d/10", *v)
}
