package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public authentication endpoints.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler) {
	g := rg.Group("/auth")
	{
		g.POST("/register", handler.Register)
		g.POST("/login", handler.Login)
		g.POST("/verify-email", handler.VerifyEmail)
		g.POST("/forgot-password", handler.ForgotPassword)
		g.POST("/reset-password", handler.ResetPassword)
	}
}
