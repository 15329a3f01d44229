package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/inkwellgoods/storefront/internal/handler"
	mid "github.com/inkwellgoods/storefront/internal/middleware"
	"github.com/inkwellgoods/storefront/internal/repository"
	"github.com/inkwellgoods/storefront/internal/service"
	"github.com/inkwellgoods/storefront/internal/storage"
	"github.com/inkwellgoods/storefront/pkg/config"
	"github.com/inkwellgoods/storefront/pkg/database"
	"github.com/inkwellgoods/storefront/pkg/jwtutil"
	"github.com/inkwellgoods/storefront/pkg/logger"
	"github.com/inkwellgoods/storefront/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load("storefront")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront", appConfig.LogFields()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize blob store for uploaded images
	blobs, err := storage.NewLocal(appConfig.Upload.Dir)
	if err != nil {
		log.Fatal("Failed to initialize blob store", zap.Error(err))
	}

	// Repositories
	db := database.GetDB()
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	imageRepo := repository.NewImageRepo(db)
	variantRepo := repository.NewVariantRepo(db)
	cartRepo := repository.NewCartRepo(db)

	// Services
	catalogSvc := service.NewCatalog(productRepo, categoryRepo)
	cartSvc := service.NewCart(cartRepo, productRepo, variantRepo)
	manageSvc := service.NewManage(productRepo, categoryRepo, imageRepo, variantRepo, blobs)

	// Handlers
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	cartHandler := handler.NewCartHandler(cartSvc)
	productHandler := handler.NewManageProductHandler(manageSvc)
	categoryHandler := handler.NewManageCategoryHandler(manageSvc)
	imageHandler := handler.NewManageImageHandler(manageSvc)
	variantHandler := handler.NewManageVariantHandler(manageSvc)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Uploaded image binaries
	e.Static("/media", appConfig.Upload.Dir)

	// Public shop
	e.GET("/", catalogHandler.ListProducts)
	e.GET("/featured/", catalogHandler.FeaturedProducts)

	// Cart routes - signed-in shoppers
	cart := e.Group("/cart", mid.AuthMiddleware)
	cart.GET("/", cartHandler.ViewCart)
	cart.POST("/add/:productId/", cartHandler.AddItem)
	cart.POST("/item/:itemId/update/", cartHandler.UpdateItem)
	cart.POST("/item/:itemId/remove/", cartHandler.RemoveItem)
	cart.GET("/checkout/", cartHandler.Checkout)
	cart.POST("/checkout/", cartHandler.Checkout)

	// Management console - staff only
	manage := e.Group("/manage", mid.AuthMiddleware, mid.StaffRequired)
	manage.GET("/products/", productHandler.ListProducts)
	manage.POST("/products/add/", productHandler.CreateProduct)
	manage.GET("/products/:id/edit/", productHandler.GetProduct)
	manage.POST("/products/:id/edit/", productHandler.UpdateProduct)
	manage.POST("/products/:id/delete/", productHandler.DeleteProduct)
	manage.POST("/products/bulk-delete/", productHandler.BulkDelete)
	manage.POST("/products/:id/duplicate/", productHandler.Duplicate)

	manage.POST("/products/:id/images/upload/", imageHandler.Upload)
	manage.POST("/images/:id/delete/", imageHandler.Delete)
	manage.POST("/images/reorder/", imageHandler.Reorder)

	manage.GET("/categories/", categoryHandler.ListCategories)
	manage.POST("/categories/add/", categoryHandler.CreateCategory)
	manage.GET("/categories/:id/edit/", categoryHandler.GetCategory)
	manage.POST("/categories/:id/edit/", categoryHandler.UpdateCategory)
	manage.POST("/categories/:id/delete/", categoryHandler.DeleteCategory)

	manage.GET("/products/:id/variants/", variantHandler.ListVariants)
	manage.POST("/products/:id/variants/add/", variantHandler.AddVariant)
	manage.POST("/variants/:id/edit/", variantHandler.UpdateVariant)
	manage.POST("/variants/:id/delete/", variantHandler.DeleteVariant)

	// Product detail - catch-all, registered last
	e.GET("/:slug/", catalogHandler.ProductDetail)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
