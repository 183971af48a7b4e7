package handler

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/usecase"
	"kuchikomi/pkg/response"
)

type PointsHandler struct {
	pointsUseCase *usecase.PointsUseCase
}

func NewPointsHandler(pointsUseCase *usecase.PointsUseCase) *PointsHandler {
	return &PointsHandler{
		pointsUseCase: pointsUseCase,
	}
}

func (h *PointsHandler) GetMyPoints(c echo.Context) error {
	userID := c.Get("uid").(string)

	points, err := h.pointsUseCase.GetUserPoints(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, points)
}

func (h *PointsHandler) GetPointsTable(c echo.Context) error {
	return response.Success(c, h.pointsUseCase.Table())
}
