package handler

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/usecase"
	"kuchikomi/pkg/errors"
	"kuchikomi/pkg/response"
	"kuchikomi/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	UserName           string `json:"user_name" validate:"required"`
	Rating             int    `json:"rating" validate:"required,min=1,max=5"`
	Title              string `json:"title" validate:"required"`
	Content            string `json:"content" validate:"required"`
	ProductUsagePeriod string `json:"product_usage_period"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.Create(c.Request().Context(), userID, usecase.CreateReviewInput{
		ProductID:          productID,
		UserName:           req.UserName,
		Rating:             req.Rating,
		Title:              req.Title,
		Content:            req.Content,
		ProductUsagePeriod: req.ProductUsagePeriod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListByProduct(c.Request().Context(), productID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListAll(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

type updateReviewRequest struct {
	Rating             int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Title              string `json:"title"`
	Content            string `json:"content"`
	ProductUsagePeriod string `json:"product_usage_period"`
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	reviewID := c.Param("reviewId")

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	review, err := h.reviewUseCase.Update(c.Request().Context(), reviewID, userID, usecase.UpdateReviewInput{
		Rating:             req.Rating,
		Title:              req.Title,
		Content:            req.Content,
		ProductUsagePeriod: req.ProductUsagePeriod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID := c.Param("reviewId")
	userID := c.Get("uid").(string)

	if err := h.reviewUseCase.Delete(c.Request().Context(), reviewID, userID, false); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
