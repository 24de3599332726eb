package bootstrap

import (
	"context"
	"log"

	"ducochat-be/internal/config"
	"ducochat-be/internal/constant"
	"ducochat-be/internal/controller"
	"ducochat-be/internal/pkg/logger"
	"ducochat-be/internal/repository/memory"
	"ducochat-be/internal/repository/unitofwork"
	"ducochat-be/internal/service"
	"ducochat-be/internal/websocket"
	"ducochat-be/pkg/bot"
	pktNats "ducochat-be/pkg/nats"
	"ducochat-be/pkg/whatsapp"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	OpsController      controller.IOpsController
	WebhookController  controller.IWebhookController
	AuthController     controller.IAuthController
	CategoryController controller.ICategoryController
	QuestionController controller.IQuestionController
	ModalityController controller.IModalityController
	EndUserController  controller.IEndUserController
	RatingController   controller.IRatingController
	TutorialController controller.ITutorialController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	FeedService     *service.FeedService

	WebSocketHub *websocket.Hub
	NatsPub      *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/dashboard.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Bot Pipeline
	conversationStore := memory.NewConversationRepository()
	waClient := whatsapp.NewClient(
		cfg.WhatsApp.GraphBaseURL,
		cfg.WhatsApp.AccessToken,
		cfg.WhatsApp.PhoneNumberID,
		sysLogger,
	)
	botData := service.NewBotDataService(uowFactory)
	engine := bot.NewEngine(botData, waClient, conversationStore, sysLogger)

	publisherService := service.NewPublisherService(pubSub, constant.InboundMessagesTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.InboundMessagesTopic,
		uowFactory,
		engine,
	)

	// 4. Services
	authService := service.NewAuthService(uowFactory)
	categoryService := service.NewCategoryService(uowFactory)
	questionService := service.NewQuestionService(uowFactory)
	modalityService := service.NewModalityService(uowFactory)
	endUserService := service.NewEndUserService(uowFactory)
	ratingService := service.NewRatingService(uowFactory, natsPub)
	tutorialService := service.NewTutorialService(uowFactory, natsPub)

	feedService := service.NewFeedService(natsSub, wsHub, wsLogger)

	return &Container{
		OpsController:      controller.NewOpsController(cfg, wsHub),
		WebhookController:  controller.NewWebhookController(cfg, publisherService, sysLogger),
		AuthController:     controller.NewAuthController(authService),
		CategoryController: controller.NewCategoryController(categoryService, sysLogger),
		QuestionController: controller.NewQuestionController(questionService, sysLogger),
		ModalityController: controller.NewModalityController(modalityService, sysLogger),
		EndUserController:  controller.NewEndUserController(endUserService, sysLogger),
		RatingController:   controller.NewRatingController(ratingService, sysLogger),
		TutorialController: controller.NewTutorialController(tutorialService, sysLogger),

		ConsumerService: consumerService,
		FeedService:     feedService,

		WebSocketHub: wsHub,
		NatsPub:      natsPub,
	}
}
