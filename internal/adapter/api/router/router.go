package router

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupVerificationRouter(e, authMiddleware, adminMiddleware)
	SetupPointsRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupCommunityRouter(e, authMiddleware)
}
