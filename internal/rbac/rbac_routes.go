package rbac

import (
	"coaltools/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	roles := r.Group("/rbac")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.POST("/assign", middleware.RBACAuthorize(service, "rbac", "manage"), handler.AssignRole)
		roles.POST("/reload", middleware.RBACAuthorize(service, "rbac", "manage"), handler.ReloadPolicy)
	}
}
