package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai-journal-be/internal/config"
	"ai-journal-be/internal/dto"
	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/pkg/logger"
	"ai-journal-be/internal/repository/memory"
	"ai-journal-be/pkg/ai/enrich"
	"ai-journal-be/pkg/embedding"
	"ai-journal-be/pkg/events"
	"ai-journal-be/pkg/lock"
	ragcontext "ai-journal-be/pkg/rag/context"
	"ai-journal-be/pkg/rag/search"
	"ai-journal-be/pkg/sentiment"
	"ai-journal-be/pkg/utils"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

// EnrichmentNotifier is told about every note whose enrichment was stored.
type EnrichmentNotifier interface {
	NotifyNoteEnriched(ctx context.Context, event events.NoteEnriched)
}

type IEnrichmentService interface {
	// Enrich runs the whole pipeline for one note. It never returns an error
	// and never panics; failures are logged.
	Enrich(ctx context.Context, job dto.EnrichmentJob)
}

type enrichmentService struct {
	store        EnrichmentStore
	embedder     *embedding.Embedder
	aiClient     *enrich.Client
	guard        lock.Guard
	profileCache *memory.ProfileCache
	notifier     EnrichmentNotifier
	logger       logger.ILogger
	cfg          config.EnrichmentConfig
	tracer       trace.Tracer
}

func NewEnrichmentService(
	store EnrichmentStore,
	embedder *embedding.Embedder,
	aiClient *enrich.Client,
	guard lock.Guard,
	profileCache *memory.ProfileCache,
	notifier EnrichmentNotifier,
	log logger.ILogger,
	cfg config.EnrichmentConfig,
) IEnrichmentService {
	if cfg.NeighborK <= 0 {
		cfg.NeighborK = 5
	}
	if cfg.RecentDays <= 0 {
		cfg.RecentDays = 5
	}
	if cfg.PerDayLimit <= 0 {
		cfg.PerDayLimit = 20
	}
	if cfg.GuardTTL <= 0 {
		cfg.GuardTTL = 5 * time.Minute
	}
	return &enrichmentService{
		store:        store,
		embedder:     embedder,
		aiClient:     aiClient,
		guard:        guard,
		profileCache: profileCache,
		notifier:     notifier,
		logger:       log,
		cfg:          cfg,
		tracer:       otel.Tracer("enrichment"),
	}
}

// reconciled is what ends up in the AiMetric row.
type reconciled struct {
	Mood         *int
	Productivity *int
	Tags         []string
	Polarity     string
	Emotion      string
	Confidence   float64
}

// reconcile prefers narrative scores over metadata scores. Sentiment comes
// from the metadata when the model produced one, else from the local hints.
func reconcile(narrative enrich.Scores, meta *enrich.Metadata, hints sentiment.Hint) reconciled {
	if meta == nil {
		meta = &enrich.Metadata{}
	}

	r := reconciled{
		Mood:         narrative.Mood,
		Productivity: narrative.Productivity,
		Tags:         meta.Tags,
		Polarity:     string(hints.Polarity),
		Emotion:      string(hints.Emotion),
		Confidence:   hints.Confidence,
	}
	if r.Mood == nil {
		r.Mood = meta.Mood
	}
	if r.Productivity == nil {
		r.Productivity = meta.Productivity
	}
	if meta.Sentiment != nil {
		r.Polarity = string(meta.Sentiment.Polarity)
		r.Emotion = string(meta.Sentiment.Emotion)
		r.Confidence = meta.Sentiment.Confidence
	}
	return r
}

func (s *enrichmentService) Enrich(ctx context.Context, job dto.EnrichmentJob) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("ENRICHMENT", "Enrichment run panicked", map[string]interface{}{
				"note_id": job.NoteId.String(),
				"panic":   fmt.Sprint(r),
			})
		}
	}()

	if s.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RunTimeout)
		defer cancel()
	}

	ctx, span := s.tracer.Start(ctx, "enrichment.Enrich", trace.WithAttributes(
		attribute.String("note.id", job.NoteId.String()),
		attribute.String("user.id", job.UserId.String()),
	))
	defer span.End()

	if s.guard != nil {
		acquired, err := s.guard.Acquire(ctx, "enrich:"+job.NoteId.String(), s.cfg.GuardTTL)
		switch {
		case err != nil:
			s.logger.Warn("ENRICHMENT", "Run guard unavailable, continuing without it", map[string]interface{}{
				"note_id": job.NoteId.String(),
				"error":   err.Error(),
			})
		case !acquired:
			s.logger.Info("ENRICHMENT", "Enrichment already running for note, skipping", map[string]interface{}{
				"note_id": job.NoteId.String(),
			})
			return
		default:
			defer s.releaseGuard(job)
		}
	}

	start := time.Now()
	if err := s.run(ctx, job); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("ENRICHMENT", "Enrichment run failed", map[string]interface{}{
			"note_id": job.NoteId.String(),
			"error":   err.Error(),
		})
		return
	}

	s.logger.Info("ENRICHMENT", "Note enriched", map[string]interface{}{
		"note_id":     job.NoteId.String(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

// releaseGuard uses a fresh context so a timed-out run still frees its claim.
func (s *enrichmentService) releaseGuard(job dto.EnrichmentJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.guard.Release(ctx, "enrich:"+job.NoteId.String()); err != nil {
		s.logger.Warn("ENRICHMENT", "Failed to release run guard", map[string]interface{}{
			"note_id": job.NoteId.String(),
			"error":   err.Error(),
		})
	}
}

func (s *enrichmentService) run(ctx context.Context, job dto.EnrichmentJob) error {
	hints := sentiment.Analyze(job.Content)
	mainChunk := utils.MainChunk(job.Content, utils.DefaultChunkSize)

	// 1. Embed and load recent history in one joined wait
	var (
		vector           []float32
		recentEmbeddings []*entity.NoteEmbedding
		recentNotes      []*entity.Note
	)

	fetchCtx, fetchSpan := s.tracer.Start(ctx, "enrichment.fetch")
	g, gctx := errgroup.WithContext(fetchCtx)
	g.Go(func() error {
		callCtx, cancel := s.callContext(gctx)
		defer cancel()
		vector = s.embedder.Embed(callCtx, mainChunk)
		return nil
	})
	g.Go(func() error {
		callCtx, cancel := s.callContext(gctx)
		defer cancel()
		rows, err := s.store.GetRecentEmbeddings(callCtx, job.UserId, s.cfg.RecentDays, s.cfg.PerDayLimit)
		if err != nil {
			return fmt.Errorf("failed to load recent embeddings: %w", err)
		}
		recentEmbeddings = rows
		return nil
	})
	g.Go(func() error {
		callCtx, cancel := s.callContext(gctx)
		defer cancel()
		rows, err := s.store.GetRecentNotes(callCtx, job.UserId, s.cfg.RecentDays)
		if err != nil {
			return fmt.Errorf("failed to load recent notes: %w", err)
		}
		recentNotes = rows
		return nil
	})
	err := g.Wait()
	fetchSpan.End()
	if err != nil {
		return err
	}

	// 2. Retrieval and context
	neighbors := s.findSimilar(ctx, job, vector, recentEmbeddings)
	contextText := ragcontext.BuildContext(neighbors, s.contentLookup(ctx, job.UserId, neighbors, recentNotes))

	// 3. Persona
	persona := s.loadPersona(ctx, job.UserId)

	// 4. Generative calls
	if s.aiClient == nil {
		return enrich.ErrNoProvider
	}

	var (
		narrative string
		metadata  *enrich.Metadata
	)

	genCtx, genSpan := s.tracer.Start(ctx, "enrichment.generate")
	g, gctx = errgroup.WithContext(genCtx)
	g.Go(func() error {
		out, err := s.aiClient.Summarize(gctx, enrich.SummaryInput{
			Content:                  job.Content,
			RecentContext:            contextText,
			Hints:                    hints,
			Persona:                  persona,
			SelfReportedMood:         job.SelfReportedMood,
			SelfReportedProductivity: job.SelfReportedProductivity,
		})
		if err != nil {
			return err
		}
		narrative = out
		return nil
	})
	g.Go(func() error {
		md, err := s.aiClient.ExtractMetadata(gctx, enrich.MetadataInput{
			Content:       job.Content,
			RecentContext: contextText,
			Persona:       persona,
		})
		if err != nil {
			s.logger.Warn("ENRICHMENT", "Metadata extraction failed, continuing without it", map[string]interface{}{
				"note_id": job.NoteId.String(),
				"error":   err.Error(),
			})
			md = &enrich.Metadata{}
		}
		metadata = md
		return nil
	})
	err = g.Wait()
	genSpan.End()
	if err != nil {
		return err
	}

	result := reconcile(enrich.ParseScores(narrative), metadata, hints)

	// 5. Persist
	userId := job.UserId
	persistCtx, persistSpan := s.tracer.Start(ctx, "enrichment.persist")
	defer persistSpan.End()

	metric := &entity.AiMetric{
		NoteId:              job.NoteId,
		UserId:              &userId,
		AiMoodScore:         result.Mood,
		AiProductivityScore: result.Productivity,
		SentimentPolarity:   result.Polarity,
		SentimentEmotion:    result.Emotion,
		SentimentConfidence: result.Confidence,
		Tags:                result.Tags,
	}

	g, gctx = errgroup.WithContext(persistCtx)
	if !embedding.IsZero(vector) {
		g.Go(func() error {
			callCtx, cancel := s.callContext(gctx)
			defer cancel()
			err := s.store.UpsertEmbedding(callCtx, &entity.NoteEmbedding{
				NoteId:         job.NoteId,
				UserId:         &userId,
				Document:       mainChunk,
				EmbeddingValue: vector,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert embedding: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		callCtx, cancel := s.callContext(gctx)
		defer cancel()
		if err := s.store.InsertAiMetric(callCtx, metric); err != nil {
			return fmt.Errorf("failed to insert ai metric: %w", err)
		}
		return nil
	})
	if narrative != "" {
		g.Go(func() error {
			callCtx, cancel := s.callContext(gctx)
			defer cancel()
			err := s.store.InsertSummary(callCtx, &entity.NoteSummary{
				NoteId:    job.NoteId,
				UserId:    &userId,
				AiSummary: narrative,
			})
			if err != nil {
				return fmt.Errorf("failed to insert summary: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// 6. Mood entry on the user's behalf
	userSupplied := job.SelfReportedMood != nil && job.SelfReportedProductivity != nil
	if !userSupplied && result.Mood != nil && result.Productivity != nil {
		date := job.Date
		if date == "" {
			date = time.Now().UTC().Format(dateLayout)
		}

		callCtx, cancel := s.callContext(persistCtx)
		err := s.store.InsertMoodEntry(callCtx, &entity.MoodEntry{
			UserId:            &userId,
			Date:              date,
			MoodScore:         *result.Mood,
			ProductivityScore: *result.Productivity,
			Source:            entity.MoodSourceAI,
		})
		cancel()
		if err != nil {
			return fmt.Errorf("failed to insert derived mood entry: %w", err)
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyNoteEnriched(ctx, events.NoteEnriched{
			NoteId:              job.NoteId,
			UserId:              userId,
			AiMoodScore:         result.Mood,
			AiProductivityScore: result.Productivity,
			SentimentPolarity:   result.Polarity,
			SentimentEmotion:    result.Emotion,
			Tags:                result.Tags,
			OccurredAt:          time.Now().UTC(),
		})
	}

	return nil
}

// findSimilar asks the store for nearest neighbours and, when that fails,
// ranks the recent embeddings in memory. A zero query vector has nothing to
// compare against, so it yields no neighbours at all.
func (s *enrichmentService) findSimilar(ctx context.Context, job dto.EnrichmentJob, vector []float32, recent []*entity.NoteEmbedding) []search.Neighbor {
	if embedding.IsZero(vector) {
		return nil
	}

	ctx, span := s.tracer.Start(ctx, "enrichment.retrieve")
	defer span.End()

	callCtx, cancel := s.callContext(ctx)
	distances, err := s.store.NearestByVector(callCtx, job.UserId, vector, s.cfg.NeighborK, job.NoteId)
	cancel()
	if err == nil {
		span.SetAttributes(attribute.String("retrieval.path", "vector"))
		neighbors := make([]search.Neighbor, 0, len(distances))
		for _, d := range distances {
			neighbors = append(neighbors, search.Neighbor{NoteId: d.NoteId, Score: d.Distance, Metric: search.MetricDistance})
		}
		return neighbors
	}

	s.logger.Warn("ENRICHMENT", "Vector search failed, ranking recent embeddings in memory", map[string]interface{}{
		"note_id": job.NoteId.String(),
		"error":   err.Error(),
	})
	span.SetAttributes(attribute.String("retrieval.path", "memory"))

	candidates := make([]search.Candidate, 0, len(recent))
	for _, e := range recent {
		candidates = append(candidates, search.Candidate{NoteId: e.NoteId, Vector: e.EmbeddingValue})
	}
	return search.RankByCosine(vector, candidates, job.NoteId, s.cfg.NeighborK)
}

// contentLookup maps neighbour ids to note content. Neighbours older than the
// recent window are loaded by id.
func (s *enrichmentService) contentLookup(ctx context.Context, userId uuid.UUID, neighbors []search.Neighbor, recent []*entity.Note) map[uuid.UUID]string {
	lookup := make(map[uuid.UUID]string, len(recent))
	for _, n := range recent {
		lookup[n.Id] = n.Content
	}

	var missing []uuid.UUID
	for _, n := range neighbors {
		if _, ok := lookup[n.NoteId]; !ok {
			missing = append(missing, n.NoteId)
		}
	}
	if len(missing) == 0 {
		return lookup
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	notes, err := s.store.GetNotesByIds(callCtx, userId, missing)
	if err != nil {
		s.logger.Warn("ENRICHMENT", "Failed to load neighbour notes", map[string]interface{}{
			"error": err.Error(),
		})
		return lookup
	}
	for _, n := range notes {
		lookup[n.Id] = n.Content
	}
	return lookup
}

// loadPersona never fails; a missing or unreadable profile means no persona.
func (s *enrichmentService) loadPersona(ctx context.Context, userId uuid.UUID) string {
	if s.profileCache != nil {
		if profile, ok := s.profileCache.Get(userId); ok {
			return renderPersona(profile)
		}
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	profile, err := s.store.GetUserProfile(callCtx, userId)
	if err != nil {
		s.logger.Warn("ENRICHMENT", "Profile lookup failed, continuing without persona", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return ""
	}

	if s.profileCache != nil {
		s.profileCache.Save(userId, profile)
	}
	return renderPersona(profile)
}

func renderPersona(profile *entity.UserProfile) string {
	if profile == nil || len(profile.Preferences) == 0 {
		return ""
	}
	b, err := json.Marshal(profile.Preferences)
	if err != nil {
		return ""
	}
	return string(b)
}

func (s *enrichmentService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.CallTimeout)
}
