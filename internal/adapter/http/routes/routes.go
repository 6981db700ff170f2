package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "ordenes_campo/docs" // generated by swag init
	"ordenes_campo/internal/adapter/http/handlers"
	"ordenes_campo/internal/adapter/http/middleware"
	"ordenes_campo/internal/adapter/persistence/lock"
	repository2 "ordenes_campo/internal/adapter/persistence/repository"
	"ordenes_campo/internal/config"
	"ordenes_campo/internal/infrastructure/backend"
	"ordenes_campo/internal/infrastructure/cache"
	"ordenes_campo/internal/infrastructure/database"
	"ordenes_campo/internal/usecase"
	"ordenes_campo/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg)
	if cfg.DynamoDB.CreateTables {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.EnsureTables(ctx, ddb, cfg); err != nil {
			log.Fatalf("[dynamodb] ensure tables failed: %v", err)
		}
		cancel()
	}

	transitionRepo := repository2.NewOrderTransitionDynamoRepository(ddb, cfg.DynamoDB.TransitionsTable)
	reconciliationRepo := repository2.NewMaterialReconciliationDynamoRepository(ddb, cfg.DynamoDB.ReconciliationsTable)

	var locker interfaces.ISubmissionLocker
	if rdb := cache.ConnectRedis(cfg); rdb != nil {
		locker = lock.NewRedisLocker(rdb, cfg.Lock.TTL)
	} else {
		log.Printf("[lock] redis not available, using in-process locks")
		locker = lock.NewMemoryLocker(cfg.Lock.TTL)
	}

	orderBackend := backend.NewOrderBackendGateway(cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.CivilTimezone)

	statusUseCase := usecase.NewOrderStatusUseCase(orderBackend, transitionRepo, locker, cfg.CivilTimezone).
		WithRefreshDelay(cfg.RefreshDelay)
	materialUseCase := usecase.NewMaterialUseCase(orderBackend, reconciliationRepo, locker).
		WithRefreshDelay(cfg.RefreshDelay)

	statusHandler := handlers.NewOrderStatusHandler(statusUseCase)
	materialHandler := handlers.NewMaterialHandler(materialUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, statusHandler)
	addMaterialRoutes(v1, materialHandler)
}

func setMiddlewares(cfg *config.Config) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Session(middleware.SessionConfig{
		JWTSecret:  cfg.Session.JWTSecret,
		EmailClaim: cfg.Session.EmailClaim,
		CookieName: cfg.Session.CookieName,
	}))
}
