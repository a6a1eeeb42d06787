package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-journal-be/internal/config"
	"ai-journal-be/internal/controller"
	"ai-journal-be/internal/handler"
	"ai-journal-be/internal/pkg/logger"
	"ai-journal-be/internal/repository/memory"
	"ai-journal-be/internal/repository/unitofwork"
	"ai-journal-be/internal/service"
	"ai-journal-be/internal/websocket"
	"ai-journal-be/pkg/ai/enrich"
	"ai-journal-be/pkg/embedding"
	"ai-journal-be/pkg/embedding/jina"
	"ai-journal-be/pkg/llm/factory"
	"ai-journal-be/pkg/lock"
	pktNats "ai-journal-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController    controller.INoteController
	MoodController    controller.IMoodController
	ReportController  controller.IReportController
	TopicController   controller.ITopicController
	AiController      controller.IAiController
	ProfileController controller.IProfileController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	EnrichmentService   service.IEnrichmentService
	NotificationService *service.NotificationService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	// 2. Job queue (in-process)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. AI providers. A missing key disables the client, not the server.
	embedder := embedding.NewEmbedder(newEmbeddingProvider(cfg), cfg.Ai.EmbeddingDimension, sysLogger)

	var aiClient *enrich.Client
	llmProvider, err := factory.NewLLMProvider(ctx, factory.Config{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		GeminiAPIKey:  cfg.Keys.GoogleGemini,
		GeminiBaseURL: cfg.Ai.GeminiBaseURL,
		Timeout:       cfg.Enrichment.CallTimeout,
	})
	if err != nil {
		log.Printf("[WARN] LLM provider unavailable, enrichment will be skipped: %v", err)
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
		aiClient, err = enrich.NewClient(llmProvider, enrich.Config{CallTimeout: cfg.Enrichment.CallTimeout})
		if err != nil {
			log.Printf("[WARN] Failed to create enrichment client: %v", err)
		}
	}

	// 4. Infrastructure
	rdb := newRedisClient(ctx, cfg.App.RedisURL)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// interfaces stay untyped nil when NATS is off
	var eventPub service.EventPublisher
	var eventSub service.EventSubscriber
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPub = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
		natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		} else {
			eventSub = natsSub
			c.closers = append(c.closers, natsSub.Close)
		}
	} else {
		log.Println("[INFO] NATS_URL not set, enrichment notifications are delivered in-process")
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run(ctx)

	// 5. Services
	uow := uowFactory.NewUnitOfWork(ctx)
	notifService := service.NewNotificationService(uow.NotificationRepository(), eventPub, eventSub, wsHub, wsLogger)
	if err := notifService.Start(ctx); err != nil {
		log.Printf("[WARN] Notification worker not started: %v", err)
	}

	profileCache := memory.NewProfileCache(cfg.Enrichment.PersonaTTL)

	enrichmentService := service.NewEnrichmentService(
		service.NewEnrichmentStore(uowFactory, cfg.Database.VectorSearchEnabled && db.Dialector.Name() == "postgres"),
		embedder,
		aiClient,
		lock.NewGuard(rdb),
		profileCache,
		notifService,
		sysLogger,
		cfg.Enrichment,
	)

	publisherService := service.NewPublisherService(cfg.Enrichment.Topic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Enrichment.Topic, enrichmentService, sysLogger)

	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)
	moodService := service.NewMoodService(uowFactory)
	reportService := service.NewReportService(uowFactory)
	topicService := service.NewTopicService(uowFactory)
	aiSummaryService := service.NewAiSummaryService(aiClient)
	profileService := service.NewProfileService(uowFactory, profileCache)

	// 6. Controllers
	secret := cfg.App.JwtSecret
	c.NoteController = controller.NewNoteController(noteService, secret)
	c.MoodController = controller.NewMoodController(moodService, secret)
	c.ReportController = controller.NewReportController(reportService, secret)
	c.TopicController = controller.NewTopicController(topicService, secret)
	c.AiController = controller.NewAiController(aiSummaryService, secret)
	c.ProfileController = controller.NewProfileController(profileService, secret)

	c.ConsumerService = consumerService
	c.EnrichmentService = enrichmentService
	c.NotificationService = notifService
	c.NotificationHandler = handler.NewNotificationHandler(notifService, wsHub, secret, wsLogger)
	c.WebSocketHub = wsHub

	return c
}

// Close releases brokers and connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func newEmbeddingProvider(cfg *config.Config) embedding.EmbeddingProvider {
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	case "jina":
		p, err := jina.NewJinaProvider(cfg.Keys.Jina, cfg.Ai.JinaBaseURL)
		if err != nil {
			log.Printf("[WARN] Jina embedding provider unavailable, using zero vectors: %v", err)
			return nil
		}
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
		return p
	default:
		p, err := embedding.NewGeminiProvider(embedding.GeminiConfig{
			ApiKey:  cfg.Keys.GoogleGemini,
			Model:   cfg.Ai.EmbeddingModel,
			BaseURL: cfg.Ai.GeminiBaseURL,
			Timeout: cfg.Enrichment.CallTimeout,
		})
		if err != nil {
			log.Printf("[WARN] Gemini embedding provider unavailable, using zero vectors: %v", err)
			return nil
		}
		log.Printf("[INFO] Using Embedding Provider: GEMINI (%s)", cfg.Ai.EmbeddingModel)
		return p
	}
}

// newRedisClient returns nil when no URL is configured.
func newRedisClient(ctx context.Context, url string) *redis.Client {
	if url == "" {
		log.Println("[INFO] REDIS_URL not set, websocket pushes and run guards stay local")
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	return rdb
}
