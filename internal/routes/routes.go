package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BLEINATS/estetica-auto-api/internal/audit"
	"github.com/BLEINATS/estetica-auto-api/internal/config"
	"github.com/BLEINATS/estetica-auto-api/internal/handlers"
	"github.com/BLEINATS/estetica-auto-api/internal/infra/cache"
	"github.com/BLEINATS/estetica-auto-api/internal/infra/payments"
	infraRepo "github.com/BLEINATS/estetica-auto-api/internal/infra/repository"
	"github.com/BLEINATS/estetica-auto-api/internal/infra/storage"
	"github.com/BLEINATS/estetica-auto-api/internal/middleware"
	ucPricing "github.com/BLEINATS/estetica-auto-api/internal/usecase/pricing"
	ucWorkOrder "github.com/BLEINATS/estetica-auto-api/internal/usecase/workorder"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	pricingRepo := infraRepo.NewPricingGormRepository(db)
	workOrderRepo := infraRepo.NewWorkOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var reportCache ucPricing.ReportCache
	if cfg.RedisAddr != "" {
		reportCache = cache.NewRedisReportCache(cfg.RedisAddr, cfg.RedisPassword)
	}

	var gateway payments.Gateway
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPagoGateway(cfg.MPAccessToken)
		if err != nil {
			log.Printf("mercadopago disabled: %v", err)
		} else {
			gateway = mp
		}
	}

	var photoStorage *storage.PhotoStorage
	if cfg.S3Bucket != "" {
		photoStorage = storage.NewPhotoStorage(cfg)
	}

	// ======================================================
	// USE CASES — PRICING
	// ======================================================
	setPriceUC := ucPricing.NewSetPrice(
		pricingRepo,
		auditDispatcher,
		reportCache,
	)

	bulkAdjustUC := ucPricing.NewBulkAdjustPrices(
		pricingRepo,
		auditDispatcher,
		reportCache,
	)

	reportUC := ucPricing.NewComputeReport(
		pricingRepo,
		reportCache,
	)

	costUC := ucPricing.NewGetServiceCost(pricingRepo)

	replaceRecipeUC := ucPricing.NewReplaceRecipe(
		pricingRepo,
		auditDispatcher,
		reportCache,
	)

	// ======================================================
	// USE CASES — WORK ORDERS
	// ======================================================
	createWorkOrderUC := ucWorkOrder.NewCreateWorkOrder(
		workOrderRepo,
		auditDispatcher,
	)

	completeWorkOrderUC := ucWorkOrder.NewCompleteWorkOrder(
		workOrderRepo,
		auditDispatcher,
	)

	cancelWorkOrderUC := ucWorkOrder.NewCancelWorkOrder(
		workOrderRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	shopHandler := handlers.NewShopHandler(db, reportCache)

	clientHandler := handlers.NewClientHandler(db)
	vehicleHandler := handlers.NewVehicleHandler(db, photoStorage)
	serviceHandler := handlers.NewServiceHandler(db, reportCache)
	inventoryHandler := handlers.NewInventoryHandler(db, reportCache)
	consumptionHandler := handlers.NewConsumptionHandler(db, replaceRecipeUC)

	pricingHandler := handlers.NewPricingHandler(
		db,
		setPriceUC,
		bulkAdjustUC,
		reportUC,
		costUC,
	)

	workOrderHandler := handlers.NewWorkOrderHandler(
		db,
		gateway,
		createWorkOrderUC,
		completeWorkOrderUC,
		cancelWorkOrderUC,
	)

	transactionHandler := handlers.NewTransactionHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/shop", shopHandler.GetMeShop)
			secured.PATCH("/me/shop", shopHandler.UpdateMeShop)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			secured.GET("/me/vehicles", vehicleHandler.List)
			secured.POST("/me/vehicles", vehicleHandler.Create)
			secured.PATCH("/me/vehicles/:id", vehicleHandler.Update)
			secured.POST("/me/vehicles/:id/photo", vehicleHandler.UploadPhoto)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/services/:id/recipe", consumptionHandler.Get)
			secured.PUT("/me/services/:id/recipe", consumptionHandler.Put)
			secured.GET("/me/services/:id/cost", pricingHandler.ServiceCost)
			secured.PATCH("/me/services/:id/price", pricingHandler.SetPrice)

			secured.GET("/me/inventory", inventoryHandler.List)
			secured.POST("/me/inventory", inventoryHandler.Create)
			secured.PATCH("/me/inventory/:id", inventoryHandler.Update)
			secured.DELETE("/me/inventory/:id", inventoryHandler.Delete)

			// ------------------------------
			// PRICING ENGINE
			// ------------------------------
			secured.GET("/me/prices", pricingHandler.GetMatrix)
			secured.POST("/me/prices/bulk-adjust", pricingHandler.BulkAdjust)
			secured.GET("/me/profitability", pricingHandler.ProfitabilityReport)

			// ------------------------------
			// WORK ORDERS
			// ------------------------------
			secured.POST("/me/work-orders", workOrderHandler.Create)
			secured.GET("/me/work-orders", workOrderHandler.List)
			secured.PATCH("/me/work-orders/:id/complete", workOrderHandler.Complete)
			secured.PATCH("/me/work-orders/:id/cancel", workOrderHandler.Cancel)
			secured.POST("/me/work-orders/:id/checkout", workOrderHandler.CreateCheckout)

			secured.GET("/me/transactions", transactionHandler.List)
			secured.POST("/me/transactions", transactionHandler.Create)
			secured.GET("/me/transactions/summary", transactionHandler.Summary)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
