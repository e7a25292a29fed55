package admin

import (
	"github.com/gin-gonic/gin"

	"malaeb/internal/domain"
	"malaeb/internal/middleware"
)

// RegisterRoutes mounts the admin surface. Everything here requires the
// admin role.
func RegisterRoutes(protected *gin.RouterGroup, handler *Handler) {
	g := protected.Group("/admin")
	g.Use(middleware.RequireRole(string(domain.RoleAdmin)))
	{
		g.GET("/users", handler.ListUsers)
		g.PATCH("/users/:id/role", handler.UpdateRole)
		g.PATCH("/users/:id/active", handler.SetActive)
	}
}
