// @title Atlas Back-Office API
// @version 1.0
// @description Atlas e-commerce back-office API documentation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/cache"
	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/analytics_controller"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/auth_controller"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/campaign_controller"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/cashflow_controller"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/content_controller"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/customer_controller"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/market_controller"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/order_controller"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/pages_controller"
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/product_controller"
	_ "github.com/Atlas-Ticaret/atlas-backoffice/docs"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/Atlas-Ticaret/atlas-backoffice/routes/backoffice_routes"
	"github.com/Atlas-Ticaret/atlas-backoffice/services"
	"github.com/Atlas-Ticaret/atlas-backoffice/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Connect to DB
	db, err := config.NewGorm(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	pool, err := config.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer pool.Close()

	// Redis connection
	rdb, err := config.NewRedis(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.CashFlowEntry{},
		&models.Order{},
		&models.OrderItem{},
		&models.Product{},
		&models.Customer{},
		&models.Campaign{},
		&models.Influencer{},
		&models.GeneratedContent{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migrations applied")

	// Services
	jwtService, err := services.NewJWTService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("❌ JWT_SECRET environment variable not set")
	}
	log.Println("✅ JWT Service initialized")

	googleOAuth, err := config.NewGoogleOAuth(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Google OAuth setup failed: %v", err)
	}
	if googleOAuth == nil {
		log.Println("⚠️ Google sign-in disabled (GOOGLE_CLIENT_ID not set)")
	}

	var mediaService *services.MediaService
	if cfg.CloudinaryCloudName != "" {
		mediaService, err = services.NewMediaService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️ Reference-image uploads disabled (CLOUDINARY_CLOUD_NAME not set)")
	}

	webhookClient := services.NewWebhookClient(cfg.WebhookURL)
	marketService := services.NewMarketDataService(cfg.ForexURL, cfg.CryptoURL, cache.NewSnapshotCache())
	loginTracker := utils.NewLoginTracker(pool)

	// Controllers
	authCtl := auth_controller.New(db, jwtService, googleOAuth, loginTracker, cfg)
	cashflowCtl := cashflow_controller.New(db, marketService)
	analyticsCtl := analytics_controller.New(db, pool, rdb)
	orderCtl := order_controller.New(db)
	productCtl := product_controller.New(db)
	customerCtl := customer_controller.New(db)
	campaignCtl := campaign_controller.New(db)
	contentCtl := content_controller.New(db, webhookClient, mediaService)
	marketCtl := market_controller.New(marketService)
	pagesCtl := pages_controller.New()

	authMW := middleware.AuthMiddleware(jwtService)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(rdb, 100, time.Minute))

	backoffice_routes.SetupAuthRoutes(api, authCtl, authMW)
	backoffice_routes.SetupCashFlowRoutes(api, cashflowCtl, authMW)
	backoffice_routes.SetupAnalyticsRoutes(api, analyticsCtl, authMW)
	backoffice_routes.SetupOrderRoutes(api, orderCtl, authMW)
	backoffice_routes.SetupProductRoutes(api, productCtl, authMW)
	backoffice_routes.SetupCustomerRoutes(api, customerCtl, authMW)
	backoffice_routes.SetupCampaignRoutes(api, campaignCtl, authMW)
	backoffice_routes.SetupContentRoutes(api, contentCtl, authMW)
	backoffice_routes.SetupMarketRoutes(api, marketCtl, authMW)
	backoffice_routes.SetupPagesRoutes(api, pagesCtl, authMW)
	log.Println("✅ Routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
