package bootstrap

import (
	"context"
	"log"
	"time"

	"agegate-admin-be/internal/changefeed"
	"agegate-admin-be/internal/config"
	"agegate-admin-be/internal/controller"
	"agegate-admin-be/internal/pkg/invoice"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/pkg/mailer"
	"agegate-admin-be/internal/pkg/ratelimit"
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/repository/unitofwork"
	"agegate-admin-be/internal/service"
	"agegate-admin-be/internal/websocket"
	pkgNats "agegate-admin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	AdminController        controller.IAdminController
	CompanyController      controller.ICompanyController
	ShopController         controller.IShopController
	VerificationController controller.IVerificationController
	TransactionController  controller.ITransactionController
	ErrorController        controller.IErrorController
	SettingsController     controller.ISettingsController
	DashboardController    controller.IDashboardController
	IngestController       controller.IIngestController
	WsController           controller.IWsController

	// Background services, started by main
	DispatcherService service.IDispatcherService
	SummaryService    service.ISummaryService

	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Change event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	changeBus := changefeed.NewBus(pubSub)

	// 3. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/changes.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	loginLimiter := ratelimit.NewRedisLimiter(
		rdb,
		"login_attempts",
		cfg.Auth.LoginMaxAttempts,
		time.Duration(cfg.Auth.LoginWindowSecs)*time.Second,
	)

	// 4. Services
	sessionResolver := service.NewSessionResolver(uowFactory)
	authService := service.NewAuthService(uowFactory, sessionResolver, loginLimiter, cfg, sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger)
	settingsService := service.NewSettingsService(uowFactory, changeBus, sysLogger)
	companyService := service.NewCompanyService(uowFactory, changeBus, sysLogger)
	shopService := service.NewShopService(uowFactory, changeBus, sysLogger)
	verificationService := service.NewVerificationService(uowFactory, changeBus, sysLogger)
	walletService := service.NewWalletService(uowFactory, settingsService, invoice.NewGenerator(), sysLogger)
	errorService := service.NewErrorService(uowFactory, settingsService, emailService, changeBus, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory, sysLogger)

	dispatcherService := service.NewDispatcherService(changeBus, wsHub, natsPub, sysLogger)
	summaryService := service.NewSummaryService(uowFactory, settingsService, emailService, sysLogger)

	// 5. Controllers
	var authMiddleware fiber.Handler = serverutils.AuthRequired(cfg.Auth.JwtSecret, sessionResolver)

	return &Container{
		AuthController:         controller.NewAuthController(authService, authMiddleware),
		AdminController:        controller.NewAdminController(adminService, authMiddleware),
		CompanyController:      controller.NewCompanyController(companyService, authMiddleware),
		ShopController:         controller.NewShopController(shopService, authMiddleware),
		VerificationController: controller.NewVerificationController(verificationService, authMiddleware),
		TransactionController:  controller.NewTransactionController(walletService, authMiddleware),
		ErrorController:        controller.NewErrorController(errorService, authMiddleware),
		SettingsController:     controller.NewSettingsController(settingsService, authMiddleware),
		DashboardController:    controller.NewDashboardController(dashboardService, authMiddleware),
		IngestController:       controller.NewIngestController(errorService),
		WsController:           controller.NewWsController(wsHub, authMiddleware),

		DispatcherService: dispatcherService,
		SummaryService:    summaryService,
		WebSocketHub:      wsHub,
	}
}
