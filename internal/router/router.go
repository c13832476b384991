package router

import (
	"sync"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/PedroABernis/InventoryManager/internal/config"
	"github.com/PedroABernis/InventoryManager/internal/handler"
	"github.com/PedroABernis/InventoryManager/internal/middleware"
	"github.com/PedroABernis/InventoryManager/internal/repository"
	"github.com/PedroABernis/InventoryManager/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store/DB.
// db and rdb may be nil when the corresponding backend is not configured.
func New(cfg *config.Config, repos *repository.Set, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	// Stock entry and order completion are the only two writers of products
	// and ledger; they share one mutex so each full read-modify-write cycle
	// is a critical section.
	var workflowMu sync.Mutex

	authSvc := service.NewAuthService(repos.Users, cfg)
	productSvc := service.NewProductService(repos.Products, repos.Suppliers)
	supplierSvc := service.NewSupplierService(repos.Suppliers)
	customerSvc := service.NewCustomerService(repos.Customers)
	stockEntrySvc := service.NewStockEntryService(&workflowMu, repos.Products, repos.Suppliers, repos.Ledger)
	orderSvc := service.NewOrderService(&workflowMu, repos.Orders, repos.Products, repos.Customers, repos.Ledger)
	ledgerSvc := service.NewLedgerService(repos.Ledger, repos.Products)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	stockEntriesH := handler.NewStockEntriesHandler(stockEntrySvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	ledgerH := handler.NewLedgerHandler(ledgerSvc)
	priceH := handler.NewPriceHandler(repos.Products, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(cfg.StorageDriver, db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Price check — no auth required, read-only
	r.GET("/v1/products/:id/price", priceH.GetPrice)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		prods := v1.Group("/products")
		{
			prods.POST("", productsH.Create)
			prods.GET("", productsH.List)
			prods.GET("/:id", productsH.GetByID)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Delete)
			prods.PATCH("/:id/active", productsH.SetActive)
		}

		sups := v1.Group("/suppliers")
		{
			sups.POST("", suppliersH.Create)
			sups.GET("", suppliersH.List)
			sups.GET("/:id", suppliersH.GetByID)
			sups.PUT("/:id", suppliersH.Update)
			sups.DELETE("/:id", suppliersH.Delete)
		}

		custs := v1.Group("/customers")
		{
			custs.POST("", customersH.Create)
			custs.GET("", customersH.List)
			custs.GET("/:id", customersH.GetByID)
			custs.PUT("/:id", customersH.Update)
			custs.DELETE("/:id", customersH.Delete)
		}

		v1.POST("/stock-entries", stockEntriesH.Register)

		orders := v1.Group("/orders")
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.GetByID)
			orders.PUT("/:id", ordersH.Update)
			orders.DELETE("/:id", ordersH.Delete)
			orders.POST("/:id/complete", ordersH.Complete)
		}

		v1.GET("/ledger", ledgerH.Transactions)
		v1.GET("/ledger/history", ledgerH.History)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
