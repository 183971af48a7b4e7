package router

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/adapter/api/handler"
	"kuchikomi/internal/adapter/api/middleware"
)

func SetupPointsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	pointsHandler := handler.GetPointsHandler()

	e.GET("/v1/points/table", pointsHandler.GetPointsTable)

	authenticated := e.Group("/v1/points")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.GET("/me", pointsHandler.GetMyPoints)
}
