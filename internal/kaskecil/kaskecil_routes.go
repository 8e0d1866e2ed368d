package kaskecil

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"coaltools/internal/middleware"
	"coaltools/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	kas := r.Group("/kas-kecil")
	kas.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		kas.GET("", middleware.RBACAuthorize(rbacService, "kas_kecil", "read"), handler.GetAll)
		kas.GET("/:id", middleware.RBACAuthorize(rbacService, "kas_kecil", "read"), handler.GetById)
		kas.POST("",
			middleware.RBACAuthorize(rbacService, "kas_kecil", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		kas.PUT("/:id", middleware.RBACAuthorize(rbacService, "kas_kecil", "update"), handler.Update)
		kas.POST("/:id/transition", middleware.RBACAuthorize(rbacService, "kas_kecil", "approve"), handler.Transition)
		kas.DELETE("/:id", middleware.RBACAuthorize(rbacService, "kas_kecil", "delete"), handler.Delete)
	}
}
