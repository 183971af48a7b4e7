package repository

import (
	"context"

	"kuchikomi/internal/domain/entity"
)

type DirectMessageRepository interface {
	Create(ctx context.Context, message *entity.DirectMessage) error
	GetByID(ctx context.Context, id string) (*entity.DirectMessage, error)
	// ListByReview returns the thread for one review ordered ascending by
	// creation time.
	ListByReview(ctx context.Context, reviewID string) ([]*entity.DirectMessage, error)
	// MarkRead sets is_read true. Repeated calls are no-ops.
	MarkRead(ctx context.Context, id string) (*entity.DirectMessage, error)
	ListUnreadByReceiver(ctx context.Context, receiverID string) ([]*entity.DirectMessage, error)
}
