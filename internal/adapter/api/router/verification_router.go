package router

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/adapter/api/handler"
	"kuchikomi/internal/adapter/api/middleware"
)

func SetupVerificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	verificationHandler := handler.GetVerificationHandler()

	verifications := e.Group("/v1/verifications")
	verifications.Use(authMiddleware.Authenticate)

	verifications.POST("", verificationHandler.SubmitVerification)
	verifications.GET("/me", verificationHandler.ListMyVerifications)

	// Admin review queue
	admin := e.Group("/v1/verifications")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/pending", verificationHandler.ListPendingVerifications)
	admin.PATCH("/:id/status", verificationHandler.UpdateVerificationStatus)
}
