package bootstrap

import (
	"context"
	"log"
	"os"

	"rag-assessment-be/internal/config"
	"rag-assessment-be/internal/controller"
	"rag-assessment-be/internal/pkg/logger"
	"rag-assessment-be/internal/pkg/mailer"
	"rag-assessment-be/internal/repository/unitofwork"
	"rag-assessment-be/internal/service"
	"rag-assessment-be/pkg/chunking"
	"rag-assessment-be/pkg/embedding"
	"rag-assessment-be/pkg/embedding/jina"
	"rag-assessment-be/pkg/llm/factory"
	pktNats "rag-assessment-be/pkg/nats"
	"rag-assessment-be/pkg/rag"
	"rag-assessment-be/pkg/store"
	"rag-assessment-be/pkg/vectorstore"
	pgvStore "rag-assessment-be/pkg/vectorstore/pgvector"
	"rag-assessment-be/pkg/vectorstore/qdrant"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	IngestionController controller.IIngestionController
	ChatController      controller.IChatController
	BookingController   controller.IBookingController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Vector Store
	var vectorStore vectorstore.VectorStore
	if cfg.Vector.Backend == "pgvector" {
		vectorStore = pgvStore.NewStore(db)
		log.Printf("[INFO] Using Vector Backend: PGVECTOR")
	} else {
		qdrantStore := qdrant.NewStore(qdrant.Config{
			URL:        cfg.Vector.QdrantURL,
			APIKey:     cfg.Vector.QdrantKey,
			Collection: cfg.Vector.Collection,
		})
		if err := qdrantStore.Init(context.Background(), cfg.Vector.Dimension); err != nil {
			log.Printf("[WARN] Failed to ensure Qdrant collection: %v", err)
		}
		vectorStore = qdrantStore
		log.Printf("[INFO] Using Vector Backend: QDRANT (%s)", cfg.Vector.Collection)
	}

	// 5. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (conversation memory). Falls back to in-process storage when
	// Redis is unreachable.
	var conversations store.ConversationStore
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory conversation store", err)
		conversations = store.NewMemoryConversationStore()
	} else {
		conversations = store.NewRedisConversationStore(rdb)
	}

	// 6. RAG Pipeline
	ragLogger := log.New(os.Stdout, "[RAG] ", log.LstdFlags)
	composer := rag.NewComposer(llmProvider, conversations, ragLogger)
	pipeline := rag.NewPipeline(embeddingProvider, vectorStore, conversations, composer, ragLogger)
	extractor := rag.NewBookingExtractor(llmProvider, ragLogger)

	// 7. Services
	publisherService := service.NewPublisherService(cfg.App.ChatTurnTopic, pubSub, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ChatTurnTopic,
		uowFactory,
		sysLogger,
	)

	chunkingCfg := chunking.Config{
		ChunkSize:    cfg.Chunking.ChunkSize,
		ChunkOverlap: cfg.Chunking.ChunkOverlap,
		MinChunkSize: cfg.Chunking.MinChunkSize,
	}

	ingestionService := service.NewIngestionService(
		uowFactory,
		embeddingProvider,
		vectorStore,
		chunkingCfg,
		natsPub,
		sysLogger,
	)
	chatService := service.NewChatService(pipeline, extractor, uowFactory, publisherService)
	bookingService := service.NewBookingService(uowFactory, emailService, natsPub, sysLogger)

	// 8. Controllers
	return &Container{
		IngestionController: controller.NewIngestionController(ingestionService),
		ChatController:      controller.NewChatController(chatService),
		BookingController:   controller.NewBookingController(bookingService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
