package bootstrap

import (
	"context"
	"log"

	"ai-studio-be/internal/config"
	"ai-studio-be/internal/controller"
	"ai-studio-be/internal/handler"
	"ai-studio-be/internal/pkg/logger"
	"ai-studio-be/internal/repository/contract"
	"ai-studio-be/internal/repository/implementation"
	"ai-studio-be/internal/repository/memory"
	"ai-studio-be/internal/service"
	"ai-studio-be/internal/websocket"
	"ai-studio-be/pkg/genai/factory"

	pktNats "ai-studio-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	LibraryController  controller.ILibraryController
	StudioController   controller.IStudioController
	ActivityController controller.IActivityController
	PresetController   controller.IPresetController
	MediaController    controller.IMediaController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. External Transform Provider
	transformer, err := factory.NewTransformer(
		cfg.Ai.TransformProvider,
		cfg.Ai.GeminiModel,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize transform provider: %v", err)
	}
	log.Printf("[INFO] Using transform provider: %s (%s)", cfg.Ai.TransformProvider, cfg.Ai.GeminiModel)

	// 3.5 Infrastructure
	// NATS (optional event mirror)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (persistence collaborator + cluster fan-out)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)

	var kvRepo contract.IKeyValueRepository
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		// Degraded mode: the session still works, state just won't survive
		// a restart.
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory persistence", err)
		kvRepo = memory.NewKeyValueRepository()
		rdb = nil
	} else {
		kvRepo = implementation.NewRedisKeyValueRepository(rdb)
	}

	// Display handle storage
	handleRepo := memory.NewHandleRepository()

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.StudioTopic, pubSub, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.StudioTopic,
		wsHub,
		natsPub,
		sysLogger,
	)

	libraryService := service.NewLibraryService(handleRepo, publisherService, sysLogger)
	activityService := service.NewActivityService(kvRepo, publisherService, sysLogger)
	presetService := service.NewPresetService(kvRepo, publisherService, sysLogger)

	batchService := service.NewBatchService(
		libraryService,
		transformer,
		activityService,
		publisherService,
		sysLogger,
	)
	studioService := service.NewStudioService(
		libraryService,
		transformer,
		activityService,
		sysLogger,
	)

	// Restore persisted stores before serving anything
	activityService.Load(context.Background())
	presetService.Load(context.Background())

	// 5. Controllers
	return &Container{
		LibraryController:  controller.NewLibraryController(libraryService),
		StudioController:   controller.NewStudioController(batchService, studioService),
		ActivityController: controller.NewActivityController(activityService),
		PresetController:   controller.NewPresetController(presetService),
		MediaController:    controller.NewMediaController(handleRepo),

		ConsumerService: consumerService,

		StreamHandler: handler.NewStreamHandler(wsHub, wsLogger),
		WebSocketHub:  wsHub,
	}
}
