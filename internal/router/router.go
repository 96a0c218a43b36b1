package router

import (
	"time"

	"keso/internal/config"
	"keso/internal/handler"
	"keso/internal/middleware"
	"keso/internal/repository"
	"keso/internal/service"
	"keso/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	cobroRepo := repository.NewCobroRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	movimientoRepo := repository.NewMovimientoStockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, movimientoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, movimientoRepo, dispatcher)
	cobranzaSvc := service.NewCobranzaService(cobroRepo, dispatcher)
	gastoSvc := service.NewGastoService(gastoRepo)
	finanzasSvc := service.NewFinanzasService(ventaRepo, cobroRepo, gastoRepo, productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	inventarioH := handler.NewInventarioHandler(productoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	cobrosH := handler.NewCobrosHandler(cobranzaSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	finanzasH := handler.NewFinanzasHandler(finanzasSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/api/register", authH.Register)

	// Protected — the shell logs in first and sends the token on every call
	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		api.GET("/inventario", inventarioH.Listar)
		api.POST("/inventario", inventarioH.Crear)
		api.PUT("/inventario/:id", inventarioH.Actualizar)
		api.DELETE("/inventario/:id", inventarioH.Eliminar)
		api.GET("/inventario/:id/movimientos", inventarioH.ListarMovimientos)

		api.POST("/sales", ventasH.RegistrarVenta)
		api.GET("/sales", ventasH.ListarVentas)

		api.GET("/receivables", cobrosH.ListarPendientes)
		api.PUT("/receivables/:id", cobrosH.MarcarPagada)
		api.POST("/receivables/:id/recordatorio", cobrosH.EnviarRecordatorio)

		api.POST("/expenses", gastosH.Crear)
		api.GET("/expenses", gastosH.Listar)
		api.DELETE("/expenses/:id", gastosH.Eliminar)

		api.POST("/finance-range", finanzasH.ResumenRango)
		api.GET("/finance-summary", finanzasH.ResumenGlobal)
		api.GET("/dashboard-stats", finanzasH.DashboardStats)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
