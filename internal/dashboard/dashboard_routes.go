package dashboard

import (
	"coaltools/internal/middleware"
	"coaltools/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		dash.GET("/summary", middleware.RBACAuthorize(rbacService, "dashboard", "read"), handler.Summary)
	}
}
