package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/activos-tic/itam-api/internal/api/handler"
	"github.com/activos-tic/itam-api/internal/api/middleware"
	"github.com/activos-tic/itam-api/internal/core/domain"
	"github.com/activos-tic/itam-api/internal/core/service"
	mongodb "github.com/activos-tic/itam-api/internal/infrastructure/db/mongo"
	redisdb "github.com/activos-tic/itam-api/internal/infrastructure/db/redis"
	"github.com/activos-tic/itam-api/internal/pkg/config"
	"github.com/activos-tic/itam-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("itam"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	_ = mongodb.NewRoleRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	hardwareRepo := mongodb.NewHardwareRepository(db)
	licenseRepo := mongodb.NewLicenseRepository(db)
	webAccessRepo := mongodb.NewWebAccessRepository(db)
	transactor := mongodb.NewTransactor(db.Client())
	throttle := redisdb.NewLoginThrottle(rdb)

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accountRepo, tokens, throttle, log)
	assetService := service.NewAssetService(employeeRepo, hardwareRepo, licenseRepo, webAccessRepo, transactor, log)
	exportService := service.NewExportService(employeeRepo, hardwareRepo, licenseRepo, webAccessRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(assetService)
	hardwareHandler := handler.NewHardwareHandler(assetService)
	licenseHandler := handler.NewLicenseHandler(assetService)
	webAccessHandler := handler.NewWebAccessHandler(assetService)
	exportHandler := handler.NewExportHandler(exportService)

	authn := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleUser)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register, authn, adminOnly)

	registerCRUD(api.Group("/employees", authn), employeeHandler.Create, employeeHandler.List,
		employeeHandler.Get, employeeHandler.Update, employeeHandler.Delete, adminOnly, anyRole)
	registerCRUD(api.Group("/hardware", authn), hardwareHandler.Create, hardwareHandler.List,
		hardwareHandler.Get, hardwareHandler.Update, hardwareHandler.Delete, adminOnly, anyRole)
	registerCRUD(api.Group("/licenses", authn), licenseHandler.Create, licenseHandler.List,
		licenseHandler.Get, licenseHandler.Update, licenseHandler.Delete, adminOnly, anyRole)
	registerCRUD(api.Group("/web-accesses", authn), webAccessHandler.Create, webAccessHandler.List,
		webAccessHandler.Get, webAccessHandler.Update, webAccessHandler.Delete, adminOnly, anyRole)

	api.GET("/export/excel", exportHandler.Excel, authn, adminOnly)

	return e
}

// registerCRUD wires the standard five routes of an asset group: writes are
// admin-only, reads accept any authenticated role.
func registerCRUD(g *echo.Group, create, list, get, update, del echo.HandlerFunc, write, read echo.MiddlewareFunc) {
	g.POST("", create, write)
	g.GET("", list, read)
	g.GET("/:id", get, read)
	g.PUT("/:id", update, write)
	g.DELETE("/:id", del, write)
}
