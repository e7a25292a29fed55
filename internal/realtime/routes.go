package realtime

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the channel authorization endpoint on an
// authenticated group. The websocket endpoint is mounted at the engine root
// by the caller since it carries its own token handling.
func RegisterRoutes(protected *gin.RouterGroup, handler *Handler) {
	protected.POST("/realtime/auth", handler.AuthorizeChannel)
}
