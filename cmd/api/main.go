package main

import (
	"context"
	"log"

	_ "taxengine/api/swagger" // swagger docs
	"taxengine/internal/config"
	"taxengine/internal/database"
	"taxengine/internal/handler"
	"taxengine/internal/middleware"
	"taxengine/internal/repository"
	"taxengine/internal/service"
	"taxengine/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Tax Engine API
// @version         1.0
// @description     Tax rules, tax groups and tax calculation.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	middleware.SetJWTSecret(cfg.JWTSecret)

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	ruleRepo := repository.NewTaxRuleRepository(db)
	groupRepo := repository.NewTaxGroupRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txManager := repository.NewTransactionManager(db)

	calculator := service.NewTaxCalculator(cfg.CurrencyPrecision)
	resolver := service.NewTaxGroupResolver(groupRepo, ruleRepo)

	ruleService := service.NewTaxRuleService(ruleRepo, auditRepo, wsHub)
	groupService := service.NewTaxGroupService(groupRepo, ruleRepo, auditRepo, txManager, wsHub)
	calculationService := service.NewTaxCalculationService(resolver, calculator)
	auditService := service.NewAuditService(auditRepo)

	// Initialize Handlers
	ruleHandler := handler.NewTaxRuleHandler(ruleService)
	groupHandler := handler.NewTaxGroupHandler(groupService)
	calculationHandler := handler.NewTaxCalculationHandler(calculationService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
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
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// API Routing, rate limited per client IP
	limiter := middleware.NewLimiterStore(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.StartJanitor(ctx)
	api := router.Group("", middleware.RateLimit(limiter))

	ruleHandler.RegisterRoutes(api)
	groupHandler.RegisterRoutes(api)
	calculationHandler.RegisterRoutes(api)
	auditHandler.RegisterRoutes(api)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
