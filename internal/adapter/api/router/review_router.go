package router

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/adapter/api/handler"
	"kuchikomi/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	// Public routes
	e.GET("/v1/reviews", reviewHandler.ListReviews)
	e.GET("/v1/products/:id/reviews", reviewHandler.ListProductReviews)

	// Protected routes
	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("/v1/products/:id/reviews", reviewHandler.CreateReview)
	authenticated.PUT("/v1/reviews/:reviewId", reviewHandler.UpdateReview)
	authenticated.DELETE("/v1/reviews/:reviewId", reviewHandler.DeleteReview)
}
