package routes

import (
	"experimenthub/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPasswordResetRoutes(router *gin.Engine, resetController *controllers.PasswordResetController) {
	resetRoutes := router.Group("/api")
	{
		resetRoutes.POST("/forgot-password", resetController.ForgotPassword)
		resetRoutes.POST("/verify-otp", resetController.VerifyOTP)
		resetRoutes.POST("/reset-password", resetController.ResetPassword)
	}
}
