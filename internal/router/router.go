package router

import (
	"time"

	"github.com/gabovieira/ali300-consultores/internal/config"
	"github.com/gabovieira/ali300-consultores/internal/handler"
	"github.com/gabovieira/ali300-consultores/internal/infra"
	"github.com/gabovieira/ali300-consultores/internal/middleware"
	"github.com/gabovieira/ali300-consultores/internal/repository"
	"github.com/gabovieira/ali300-consultores/internal/service"
	"github.com/gabovieira/ali300-consultores/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, smtpCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	actividadRepo := repository.NewActividadRepository(db)
	descuentoRepo := repository.NewDescuentoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg, dispatcher)
	perfilSvc := service.NewPerfilService(usuarioRepo)
	actividadSvc := service.NewActividadService(actividadRepo, usuarioRepo, rdb)
	descuentoSvc := service.NewDescuentoService(descuentoRepo, rdb)
	reporteSvc := service.NewReporteService(actividadRepo, descuentoRepo, usuarioRepo, dispatcher, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	perfilH := handler.NewPerfilHandler(perfilSvc)
	actividadesH := handler.NewActividadesHandler(actividadSvc)
	descuentosH := handler.NewDescuentosHandler(descuentoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc, actividadSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Registrar)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/", reportesH.Dashboard) // alias
		v1.GET("/dashboard", reportesH.Dashboard)

		v1.POST("/actividades", actividadesH.Registrar)
		v1.GET("/actividades", actividadesH.Listar)

		v1.POST("/descuentos", descuentosH.Registrar)
		v1.GET("/descuentos", descuentosH.Listar)

		v1.GET("/reportes", reportesH.Listar)
		v1.POST("/reportes/export", reportesH.Exportar)

		v1.GET("/perfil", perfilH.Obtener)
		v1.PUT("/perfil", perfilH.Actualizar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
