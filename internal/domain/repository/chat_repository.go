package repository

import (
	"context"

	"kuchikomi/internal/domain/entity"
)

type ChatRepository interface {
	CreateMessage(ctx context.Context, message *entity.ChatMessage) error
	// ListByRoom returns all messages of a room ordered ascending by
	// creation time.
	ListByRoom(ctx context.Context, roomID string) ([]*entity.ChatMessage, error)
}
