package production

import (
	"coaltools/internal/middleware"
	"coaltools/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	reports := r.Group("/production-reports")
	reports.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		reports.GET("", middleware.RBACAuthorize(rbacService, "production", "read"), handler.GetAll)
		reports.GET("/:id", middleware.RBACAuthorize(rbacService, "production", "read"), handler.GetById)
		reports.POST("", middleware.RBACAuthorize(rbacService, "production", "create"), handler.Create)
		reports.PUT("/:id", middleware.RBACAuthorize(rbacService, "production", "update"), handler.Update)
		reports.POST("/:id/transition", middleware.RBACAuthorize(rbacService, "production", "approve"), handler.Transition)
		reports.DELETE("/:id", middleware.RBACAuthorize(rbacService, "production", "delete"), handler.Delete)
	}
}
