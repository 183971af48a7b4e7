package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/domain/repository"
	"kuchikomi/internal/infrastructure/websocket"
	"kuchikomi/pkg/errors"
	"kuchikomi/pkg/logger"
)

type ChatUseCase struct {
	chatRepo         repository.ChatRepository
	verificationRepo repository.VerificationRepository
	pointsUseCase    *PointsUseCase
	wsManager        *websocket.Manager
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	verificationRepo repository.VerificationRepository,
	pointsUseCase *PointsUseCase,
	wsManager *websocket.Manager,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:         chatRepo,
		verificationRepo: verificationRepo,
		pointsUseCase:    pointsUseCase,
		wsManager:        wsManager,
	}
}

type SendChatMessageInput struct {
	RoomID   string `json:"room_id" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

type wsEvent struct {
	Type string      `json:"type"`
	Room string      `json:"room"`
	Data interface{} `json:"data"`
}

// Send appends a message to a room, stamps the sender's points snapshot,
// awards chat points and fans the row out to room subscribers. Rooms need no
// setup; the first message creates the room.
func (uc *ChatUseCase) Send(ctx context.Context, userID string, input SendChatMessageInput) (*entity.ChatMessage, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return nil, errors.Validation("Message must not be empty", nil)
	}
	if input.RoomID == "" {
		return nil, errors.Validation("Room ID is required", nil)
	}

	roomID := ResolveProductID(input.RoomID)

	message := &entity.ChatMessage{
		RoomID:   roomID,
		UserID:   userID,
		UserName: input.UserName,
		Message:  text,
	}

	// Rooms are keyed by product; the stored flag records whether the sender
	// held an approved verification for that product at send time.
	if productID := roomProductID(roomID); productID != "" {
		verified, err := uc.verificationRepo.HasApproved(ctx, userID, productID)
		if err != nil {
			logger.Warn("Failed to check verification for chat message by %s: %v", userID, err)
		} else {
			message.IsVerifiedPurchase = verified
		}
	}

	if points, err := uc.pointsUseCase.GetUserPoints(ctx, userID); err == nil {
		total := points.TotalPoints
		message.UserPoints = &total
	}
	award := entity.PointsForAction("chat_message")
	message.PointsEarned = &award

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if _, err := uc.pointsUseCase.Award(ctx, userID, entity.PointCategoryChat, award); err != nil {
		logger.Warn("Failed to award chat points for user %s: %v", userID, err)
	}

	uc.broadcast(roomID, message)

	return message, nil
}

// List returns a room's history ascending by creation time with the derived
// verified-author flag filled in one batched lookup.
func (uc *ChatUseCase) List(ctx context.Context, roomID string) ([]*entity.ChatMessage, error) {
	messages, err := uc.chatRepo.ListByRoom(ctx, ResolveProductID(roomID))
	if err != nil {
		return nil, err
	}

	uc.markVerifiedSenders(ctx, messages)
	return messages, nil
}

func (uc *ChatUseCase) broadcast(roomID string, message *entity.ChatMessage) {
	payload, err := json.Marshal(wsEvent{Type: "new_message", Room: roomID, Data: message})
	if err != nil {
		logger.Error("Failed to encode chat broadcast for room %s: %v", roomID, err)
		return
	}

	uc.wsManager.Publish("chat:"+roomID, websocket.Entry{
		ID:        message.ID,
		CreatedAt: message.CreatedAt,
		Payload:   payload,
	})
}

func (uc *ChatUseCase) markVerifiedSenders(ctx context.Context, messages []*entity.ChatMessage) {
	if len(messages) == 0 {
		return
	}

	seen := make(map[string]bool)
	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		if !seen[m.UserID] {
			seen[m.UserID] = true
			ids = append(ids, m.UserID)
		}
	}

	verified, err := uc.verificationRepo.ApprovedUserSet(ctx, ids)
	if err != nil {
		logger.Warn("Failed to resolve verified senders: %v", err)
		return
	}

	for _, m := range messages {
		m.IsUserVerified = verified[m.UserID]
	}
}

// roomProductID extracts the product behind a room id. Plain product rooms
// use the product id itself; topic rooms use "product:topic".
func roomProductID(roomID string) string {
	if i := strings.IndexByte(roomID, ':'); i > 0 {
		return roomID[:i]
	}
	return roomID
}
