package routes

import (
	"context"
	"log"

	_ "nagrik_seva/docs" // swag-generated docs
	"nagrik_seva/internal/adapter/http/handlers"
	"nagrik_seva/internal/adapter/http/middleware"
	"nagrik_seva/internal/adapter/persistence/repository"
	"nagrik_seva/internal/infrastructure/config"
	"nagrik_seva/internal/infrastructure/database"
	"nagrik_seva/internal/infrastructure/idempotency"
	"nagrik_seva/internal/infrastructure/notification"
	"nagrik_seva/internal/infrastructure/payments"
	"nagrik_seva/internal/usecase"
	"nagrik_seva/internal/usecase/interfaces"
	"nagrik_seva/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run wires the whole engine together and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.App.LogLevel, cfg.App.LogFormat)

	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository.NewRequestDynamoRepository(ddb)
	agentRepo := repository.NewAgentDynamoRepository(ddb)
	walletRepo := repository.NewWalletDynamoRepository(ddb)
	couponRepo := repository.NewCouponDynamoRepository(ddb)
	auditRepo := repository.NewAuditDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb)

	idempStore := idempotency.NewRedisStore(cfg.Redis)

	var notifier interfaces.INotifier = notification.NopNotifier{}
	if cfg.AWS.NotificationTopic != "" {
		snsNotifier, err := notification.NewSNSNotifier(context.Background(), cfg.AWS.NotificationTopic)
		if err != nil {
			logger.L().Warnw("sns notifier not configured", "err", err)
		} else {
			notifier = snsNotifier
		}
	}

	var gateway interfaces.ITopUpGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Gateway.MercadoPagoAccessToken)
	if err != nil {
		logger.L().Warnw("top-up gateway not configured", "err", err)
	} else {
		gateway = mpGateway
	}

	auditUC := usecase.NewAuditUseCase(auditRepo)
	assignmentUC := usecase.NewAssignmentUseCase(agentRepo, requestRepo, auditUC)
	couponUC := usecase.NewCouponUseCase(couponRepo, walletRepo, auditUC)
	requestUC := usecase.NewRequestUseCase(requestRepo, catalogRepo, assignmentUC, auditUC, notifier, idempStore)
	paymentUC := usecase.NewPaymentUseCase(requestRepo, walletRepo, couponUC, auditUC, notifier, gateway, idempStore)
	agentUC := usecase.NewAgentUseCase(agentRepo, auditUC)

	requestHandler := handlers.NewRequestHandler(requestUC, assignmentUC)
	paymentHandler := handlers.NewPaymentHandler(paymentUC)
	couponHandler := handlers.NewCouponHandler(couponUC)
	agentHandler := handlers.NewAgentHandler(agentUC)
	auditHandler := handlers.NewAuditHandler(auditUC)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLifecycleRoutes(v1, requestHandler, paymentHandler, couponHandler)
	addStaffRoutes(v1, requestHandler, paymentHandler, couponHandler, agentHandler, auditHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L().Errorw("recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))
}
