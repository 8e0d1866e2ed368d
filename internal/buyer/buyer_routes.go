package buyer

import (
	"coaltools/internal/middleware"
	"coaltools/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	buyers := r.Group("/buyers")
	buyers.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		buyers.GET("", middleware.RBACAuthorize(rbacService, "buyer", "read"), handler.GetAll)
		buyers.GET("/:id", middleware.RBACAuthorize(rbacService, "buyer", "read"), handler.GetById)
		buyers.POST("", middleware.RBACAuthorize(rbacService, "buyer", "create"), handler.Create)
		buyers.PUT("/:id", middleware.RBACAuthorize(rbacService, "buyer", "update"), handler.Update)
		buyers.DELETE("/:id", middleware.RBACAuthorize(rbacService, "buyer", "delete"), handler.Deactivate)
	}
}
