package kasbesar

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"coaltools/internal/middleware"
	"coaltools/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	kas := r.Group("/kas-besar")
	kas.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		kas.GET("", middleware.RBACAuthorize(rbacService, "kas_besar", "read"), handler.GetAll)
		kas.GET("/:id", middleware.RBACAuthorize(rbacService, "kas_besar", "read"), handler.GetById)
		kas.POST("",
			middleware.RBACAuthorize(rbacService, "kas_besar", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		kas.PUT("/:id", middleware.RBACAuthorize(rbacService, "kas_besar", "update"), handler.Update)
		kas.POST("/:id/transition", middleware.RBACAuthorize(rbacService, "kas_besar", "approve"), handler.Transition)
		kas.DELETE("/:id", middleware.RBACAuthorize(rbacService, "kas_besar", "delete"), handler.Delete)
	}
}
