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

type DirectMessageUseCase struct {
	dmRepo     repository.DirectMessageRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	wsManager  *websocket.Manager
}

func NewDirectMessageUseCase(
	dmRepo repository.DirectMessageRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	wsManager *websocket.Manager,
) *DirectMessageUseCase {
	return &DirectMessageUseCase{
		dmRepo:     dmRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		wsManager:  wsManager,
	}
}

type SendDirectMessageInput struct {
	ReviewID   string `json:"review_id" validate:"required"`
	ReceiverID string `json:"receiver_id" validate:"required"`
	Message    string `json:"message" validate:"required"`
	ImageURL   string `json:"image_url"`
}

// Send posts a question or answer in a review's Q&A thread. Direct messages
// never earn points.
func (uc *DirectMessageUseCase) Send(ctx context.Context, senderID string, input SendDirectMessageInput) (*entity.DirectMessage, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return nil, errors.Validation("Message must not be empty", nil)
	}
	if input.ReceiverID == senderID {
		return nil, errors.BadRequest("Cannot send a message to yourself", nil)
	}

	if _, err := uc.reviewRepo.GetByID(ctx, input.ReviewID); err != nil {
		return nil, err
	}

	message := &entity.DirectMessage{
		ReviewID:   input.ReviewID,
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Message:    text,
		ImageURL:   input.ImageURL,
	}

	if err := uc.dmRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	uc.resolveNames(ctx, []*entity.DirectMessage{message})
	uc.broadcast(message, "new_message")

	return message, nil
}

// ListThread returns the review's Q&A thread ascending by creation time.
// Only participants and the review author may read it.
func (uc *DirectMessageUseCase) ListThread(ctx context.Context, reviewID, userID string) ([]*entity.DirectMessage, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.dmRepo.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if userID != review.UserID && !isParticipant(messages, userID) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}

	uc.resolveNames(ctx, messages)
	return messages, nil
}

// MarkThreadRead marks every unread message addressed to the caller in the
// thread as read. Re-running it changes nothing and publishes nothing new.
func (uc *DirectMessageUseCase) MarkThreadRead(ctx context.Context, reviewID, userID string) (int, error) {
	messages, err := uc.dmRepo.ListByReview(ctx, reviewID)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, m := range messages {
		if m.ReceiverID != userID || m.IsRead {
			continue
		}
		updated, err := uc.dmRepo.MarkRead(ctx, m.ID)
		if err != nil {
			return marked, err
		}
		marked++
		uc.broadcast(updated, "message_updated")
	}

	return marked, nil
}

// UnreadCount returns how many messages addressed to the user are unread
// across all threads.
func (uc *DirectMessageUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	messages, err := uc.dmRepo.ListUnreadByReceiver(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(messages), nil
}

func (uc *DirectMessageUseCase) broadcast(message *entity.DirectMessage, eventType string) {
	room := "dm:" + message.ReviewID

	payload, err := json.Marshal(wsEvent{Type: eventType, Room: room, Data: message})
	if err != nil {
		logger.Error("Failed to encode direct message broadcast: %v", err)
		return
	}

	if eventType == "new_message" {
		uc.wsManager.Publish(room, websocket.Entry{
			ID:        message.ID,
			CreatedAt: message.CreatedAt,
			Payload:   payload,
		})
	} else {
		// Read receipts are updates to rows already in the feed.
		uc.wsManager.PublishUpdate(room, payload)
	}
	uc.wsManager.SendToUser(message.ReceiverID, payload)
}

func (uc *DirectMessageUseCase) resolveNames(ctx context.Context, messages []*entity.DirectMessage) {
	if len(messages) == 0 {
		return
	}

	seen := make(map[string]bool)
	ids := make([]string, 0, len(messages)*2)
	for _, m := range messages {
		for _, id := range []string{m.SenderID, m.ReceiverID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Warn("Failed to resolve direct message participants: %v", err)
		return
	}

	for _, m := range messages {
		if u, ok := users[m.SenderID]; ok {
			m.SenderName = u.Name
		}
		if u, ok := users[m.ReceiverID]; ok {
			m.ReceiverName = u.Name
		}
	}
}

func isParticipant(messages []*entity.DirectMessage, userID string) bool {
	for _, m := range messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			return true
		}
	}
	return false
}
