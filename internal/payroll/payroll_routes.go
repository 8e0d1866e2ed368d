package payroll

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"coaltools/internal/middleware"
	"coaltools/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	runs := r.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		runs.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		runs.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetById)
		runs.GET("/:id/breakdown", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.Breakdown)
		runs.POST("",
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			middleware.Idempotency(rdb),
			handler.CreateRun,
		)
		runs.POST("/:id/transition", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.Transition)
		runs.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payroll", "delete"), handler.Delete)
	}
}
