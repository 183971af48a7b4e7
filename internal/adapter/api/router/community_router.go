package router

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/adapter/api/handler"
	"kuchikomi/internal/adapter/api/middleware"
)

func SetupCommunityRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	communityHandler := handler.GetCommunityHandler()

	e.GET("/v1/communities/:id/topics", communityHandler.ListTopics)

	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("/v1/communities", communityHandler.CreateCommunity)
	authenticated.POST("/v1/communities/:id/topics", communityHandler.CreateTopic)
	authenticated.DELETE("/v1/topics/:id", communityHandler.DeleteTopic)
}
