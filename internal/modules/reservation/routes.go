package reservation

import (
	"github.com/gin-gonic/gin"

	"malaeb/internal/domain"
	"malaeb/internal/middleware"
)

// RegisterRoutes mounts reservation endpoints on an authenticated group.
// Approval and payment recording are restricted to staff roles.
func RegisterRoutes(protected *gin.RouterGroup, handler *Handler) {
	g := protected.Group("/reservations")
	{
		g.POST("", handler.Create)
		g.GET("", handler.ListMine)
		g.GET("/:id", handler.Get)
		g.POST("/:id/cancel", handler.Cancel)

		staff := g.Group("")
		staff.Use(middleware.RequireRole(string(domain.RoleAdmin), string(domain.RoleClub)))
		{
			staff.POST("/:id/confirm", handler.Confirm)
			staff.POST("/:id/payments", handler.RecordPayment)
			staff.GET("/:id/payments", handler.ListPayments)
		}
	}
}
