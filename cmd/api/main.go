package main

import (
	"os"

	_ "backend/api/swagger" // swagger docs
	"backend/internal/cache"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Customs Classification API
// @version         1.0
// @description     HS code matching, tariff computation and risk analytics for import batches.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		logrus.Info("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "postgres"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		logrus.WithError(err).Fatal("Database connection failed")
	}
	logrus.Info("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	tariffRepo := repository.NewTariffRateRepository(db, repository.DefaultBlocs())
	historyRepo := repository.NewMatchHistoryRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	riskRepo := repository.NewRiskRecordRepository(db)
	translationRepo := repository.NewTranslationRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)

	translationCache := cache.NewTTLCache(cache.DefaultTTL, cache.DefaultMaxEntries)
	translationService := service.NewTranslationService(translationRepo, translationCache)
	batchService := service.NewBatchService(batchRepo)
	matchingService := service.NewMatchingService(tariffRepo, historyRepo, batchRepo, auditRepo, txManager, translationService, wsHub)
	taxService := service.NewTaxService(batchRepo, tariffRepo, auditRepo, translationService)
	riskService := service.NewRiskService(riskRepo, batchRepo)
	recommendService := service.NewRecommendService(tariffRepo, translationService)
	tariffService := service.NewTariffService(tariffRepo, auditRepo, translationService)
	auditService := service.NewAuditService(auditRepo)

	// Initialize Handlers
	batchHandler := handler.NewBatchHandler(batchService, matchingService)
	taxHandler := handler.NewTaxHandler(taxService)
	riskHandler := handler.NewRiskHandler(riskService)
	recommendHandler := handler.NewRecommendHandler(recommendService)
	tariffHandler := handler.NewTariffHandler(tariffService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-User-ID"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	batchHandler.RegisterRoutes(router.Group(""))
	taxHandler.RegisterRoutes(router.Group(""))
	riskHandler.RegisterRoutes(router.Group(""))
	recommendHandler.RegisterRoutes(router.Group(""))
	tariffHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Server failed")
	}
}
