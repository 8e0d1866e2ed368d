package paycomponent

import (
	"coaltools/internal/middleware"
	"coaltools/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	components := r.Group("/pay-components")
	components.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		components.GET("", middleware.RBACAuthorize(rbacService, "pay_component", "read"), handler.GetAll)
		components.GET("/:id", middleware.RBACAuthorize(rbacService, "pay_component", "read"), handler.GetById)
		components.POST("", middleware.RBACAuthorize(rbacService, "pay_component", "create"), handler.Create)
		components.PUT("/:id", middleware.RBACAuthorize(rbacService, "pay_component", "update"), handler.Update)
		components.DELETE("/:id", middleware.RBACAuthorize(rbacService, "pay_component", "delete"), handler.Deactivate)
	}
}
