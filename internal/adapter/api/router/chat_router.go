package router

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/adapter/api/handler"
	"kuchikomi/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	// Room history is public; posting requires auth.
	e.GET("/v1/rooms/:roomId/messages", chatHandler.ListMessages)

	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.POST("/v1/rooms/:roomId/messages", chatHandler.SendMessage)
}
