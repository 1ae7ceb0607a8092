package routes

import (
	"experimenthub/internal/controllers"
	"experimenthub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterExperimentRoutes(router *gin.Engine, experimentController *controllers.ExperimentController) {
	experimentRoutesPublic := router.Group("/api")
	{
		experimentRoutesPublic.GET("/experiments", experimentController.List)
	}
	experimentRoutesPrivate := router.Group("/api")
	experimentRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		experimentRoutesPrivate.POST("/upload", experimentController.Upload)
		experimentRoutesPrivate.DELETE("/experiments/:id", experimentController.Delete)
	}
}
