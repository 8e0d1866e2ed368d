package app

import (
	"database/sql"
	"path/filepath"

	"coaltools/internal/auth"
	"coaltools/internal/buyer"
	"coaltools/internal/dashboard"
	"coaltools/internal/employee"
	"coaltools/internal/kasbesar"
	"coaltools/internal/kaskecil"
	"coaltools/internal/messaging/kafka"
	"coaltools/internal/middleware"
	"coaltools/internal/paycomponent"
	"coaltools/internal/payroll"
	"coaltools/internal/production"
	"coaltools/internal/rbac"
	"coaltools/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	buyerRepo := buyer.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	kasBesarRepo := kasbesar.NewRepository(gormDB)
	kasKecilRepo := kaskecil.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payComponentRepo := paycomponent.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	productionRepo := production.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	sessionStore := auth.NewRedisSessionStore(rdb)
	authService := auth.NewService(authRepo, sessionStore)
	buyerService := buyer.NewService(buyerRepo)
	dashboardCache := dashboard.NewCache(rdb)
	dashboardService := dashboard.NewService(dashboardRepo, kasKecilRepo, kasBesarRepo, dashboardCache)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo)
	kasBesarService := kasbesar.NewService(kasBesarRepo)
	kasKecilService := kaskecil.NewService(kasKecilRepo)
	payComponentService := paycomponent.NewService(payComponentRepo)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, employeeRepo, payComponentRepo, outboxRepo)
	productionService := production.NewService(productionRepo, buyerRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	buyerHandler := buyer.NewHandler(buyerService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	employeeHandler := employee.NewHandler(employeeService)
	kasBesarHandler := kasbesar.NewHandlerWithRedis(kasBesarService, rdb)
	kasKecilHandler := kaskecil.NewHandlerWithRedis(kasKecilService, rdb)
	payComponentHandler := paycomponent.NewHandler(payComponentService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	productionHandler := production.NewHandler(productionService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimit(rdb, "100-M"))
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		buyer.RegisterRoutes(api, buyerHandler, rbacService)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		kasbesar.RegisterRoutes(api, kasBesarHandler, rbacService, rdb)
		kaskecil.RegisterRoutes(api, kasKecilHandler, rbacService, rdb)
		paycomponent.RegisterRoutes(api, payComponentHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		production.RegisterRoutes(api, productionHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
