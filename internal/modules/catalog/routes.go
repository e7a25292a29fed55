package catalog

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public catalog endpoints.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler) {
	g := rg.Group("/stadiums")
	{
		g.GET("", handler.ListStadiums)
		g.GET("/:id", handler.GetStadium)
	}
}
