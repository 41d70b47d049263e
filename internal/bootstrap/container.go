package bootstrap

import (
	"context"
	"log"

	"bloom-be/internal/config"
	"bloom-be/internal/controller"
	"bloom-be/internal/handler"
	"bloom-be/internal/pkg/i18n"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/pkg/mailer"
	"bloom-be/internal/repository/implementation"
	"bloom-be/internal/repository/unitofwork"
	"bloom-be/internal/service"
	"bloom-be/internal/websocket"

	pktNats "bloom-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// completionTopic is the in-process watermill topic for profile completion
// recomputes.
const completionTopic = "RECOMPUTE_COMPLETION"

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	OAuthController      controller.IOAuthController
	OnboardingController controller.IOnboardingController
	ProfileController    controller.IProfileController
	PhotoController      controller.IPhotoController
	AdminController      controller.IAdminController
	MatchController      controller.IMatchController

	// Background services, run from main.go
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

	// WebSockets & notifications
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// Root logger, exposed for shutdown Sync
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	translator := i18n.NewTranslator(cfg.App.DefaultLocale)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// In-process event bus for the completion worker
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// NATS for cross-service domain events
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis backs the cross-instance websocket fan-out
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Services
	publisherService := service.NewPublisherService(pubSub, completionTopic)

	authService := service.NewAuthService(uowFactory, emailService, cfg, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, authService, cfg, sysLogger)

	questionService := service.NewQuestionService(uowFactory, sysLogger)
	answerService := service.NewAnswerService(uowFactory, questionService, publisherService, sysLogger)
	profileService := service.NewProfileService(uowFactory, questionService, natsPub, sysLogger)
	photoService := service.NewPhotoService(uowFactory, publisherService, cfg, sysLogger)
	onboardingService := service.NewOnboardingService(uowFactory, questionService, answerService, profileService, translator, sysLogger)

	adminService := service.NewAdminService(uowFactory, emailService, natsPub, sysLogger)
	matchService := service.NewMatchService(uowFactory, natsPub, sysLogger)

	consumerService := service.NewConsumerService(pubSub, completionTopic, uowFactory, profileService, sysLogger)

	// Notification pipeline: NATS events -> registry -> inbox rows -> hub
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	return &Container{
		AuthController:       controller.NewAuthController(authService),
		OAuthController:      controller.NewOAuthController(oauthService),
		OnboardingController: controller.NewOnboardingController(onboardingService, questionService),
		ProfileController:    controller.NewProfileController(profileService, answerService),
		PhotoController:      controller.NewPhotoController(photoService),
		AdminController:      controller.NewAdminController(adminService, questionService, matchService),
		MatchController:      controller.NewMatchController(matchService),

		ConsumerService:     consumerService,
		NotificationService: notifService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}
