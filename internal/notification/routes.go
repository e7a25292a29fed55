package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the notification endpoints on an authenticated group.
func RegisterRoutes(protected *gin.RouterGroup, handler *Handler) {
	g := protected.Group("/notifications")
	{
		g.GET("", handler.List)
		g.GET("/unread-count", handler.UnreadCount)
		g.POST("/:id/read", handler.MarkAsRead)
		g.POST("/read-all", handler.MarkAllAsRead)
	}
}
