package router

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/adapter/api/handler"
	"kuchikomi/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.GET("/v1/reviews/:reviewId/messages", messageHandler.ListThread)
	authenticated.POST("/v1/reviews/:reviewId/messages", messageHandler.SendMessage)
	authenticated.PUT("/v1/reviews/:reviewId/messages/read", messageHandler.MarkThreadRead)
	authenticated.GET("/v1/messages/unread-count", messageHandler.UnreadCount)
}
