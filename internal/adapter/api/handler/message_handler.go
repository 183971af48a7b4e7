package handler

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/usecase"
	"kuchikomi/pkg/errors"
	"kuchikomi/pkg/response"
)

// MessageHandler serves the reviewer Q&A direct message endpoints.
type MessageHandler struct {
	dmUseCase *usecase.DirectMessageUseCase
}

func NewMessageHandler(dmUseCase *usecase.DirectMessageUseCase) *MessageHandler {
	return &MessageHandler{
		dmUseCase: dmUseCase,
	}
}

type sendDirectMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Message    string `json:"message" validate:"required"`
	ImageURL   string `json:"image_url"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	reviewID := c.Param("reviewId")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	var req sendDirectMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)

	message, err := h.dmUseCase.Send(c.Request().Context(), senderID, usecase.SendDirectMessageInput{
		ReviewID:   reviewID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessageHandler) ListThread(c echo.Context) error {
	reviewID := c.Param("reviewId")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	userID := c.Get("uid").(string)

	messages, err := h.dmUseCase.ListThread(c.Request().Context(), reviewID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *MessageHandler) MarkThreadRead(c echo.Context) error {
	reviewID := c.Param("reviewId")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	userID := c.Get("uid").(string)

	marked, err := h.dmUseCase.MarkThreadRead(c.Request().Context(), reviewID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"marked_read": marked})
}

func (h *MessageHandler) UnreadCount(c echo.Context) error {
	userID := c.Get("uid").(string)

	count, err := h.dmUseCase.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"unread_count": count})
}
