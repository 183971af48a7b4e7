package handler

import (
	"github.com/labstack/echo/v4"

	"kuchikomi/internal/usecase"
	"kuchikomi/pkg/errors"
	"kuchikomi/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendChatMessageRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	roomID := c.Param("roomId")
	if roomID == "" {
		return response.Error(c, errors.BadRequest("Room ID is required", nil))
	}

	var req sendChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.chatUseCase.Send(c.Request().Context(), userID, usecase.SendChatMessageInput{
		RoomID:   roomID,
		UserName: req.UserName,
		Message:  req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	roomID := c.Param("roomId")
	if roomID == "" {
		return response.Error(c, errors.BadRequest("Room ID is required", nil))
	}

	messages, err := h.chatUseCase.List(c.Request().Context(), roomID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}
