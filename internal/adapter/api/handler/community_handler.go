package handler

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/usecase"
	"kuchikomi/pkg/errors"
	"kuchikomi/pkg/response"
)

type CommunityHandler struct {
	communityUseCase *usecase.CommunityUseCase
}

func NewCommunityHandler(communityUseCase *usecase.CommunityUseCase) *CommunityHandler {
	return &CommunityHandler{
		communityUseCase: communityUseCase,
	}
}

type createCommunityRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	CommunityName string `json:"community_name" validate:"required"`
	Description   string `json:"description"`
}

func (h *CommunityHandler) CreateCommunity(c echo.Context) error {
	var req createCommunityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	community, err := h.communityUseCase.CreateCommunity(c.Request().Context(), userID, usecase.CreateCommunityInput{
		ProductID:     req.ProductID,
		CommunityName: req.CommunityName,
		Description:   req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, community)
}

func (h *CommunityHandler) GetProductCommunity(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	community, err := h.communityUseCase.GetByProduct(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, community)
}

type createTopicRequest struct {
	TopicName   string `json:"topic_name" validate:"required"`
	Description string `json:"description"`
}

func (h *CommunityHandler) CreateTopic(c echo.Context) error {
	communityID := c.Param("id")
	if communityID == "" {
		return response.Error(c, errors.BadRequest("Community ID is required", nil))
	}

	var req createTopicRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	topic, err := h.communityUseCase.CreateTopic(c.Request().Context(), communityID, userID, usecase.CreateTopicInput{
		TopicName:   req.TopicName,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, topic)
}

func (h *CommunityHandler) ListTopics(c echo.Context) error {
	communityID := c.Param("id")
	if communityID == "" {
		return response.Error(c, errors.BadRequest("Community ID is required", nil))
	}

	topics, err := h.communityUseCase.ListTopics(c.Request().Context(), communityID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, topics)
}

func (h *CommunityHandler) DeleteTopic(c echo.Context) error {
	topicID := c.Param("id")
	if topicID == "" {
		return response.Error(c, errors.BadRequest("Topic ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.communityUseCase.DeactivateTopic(c.Request().Context(), topicID, userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
