package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/domain/repository"
	"kuchikomi/pkg/errors"
)

type firestoreDirectMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreDirectMessageRepository(client *firestore.Client) repository.DirectMessageRepository {
	return &firestoreDirectMessageRepository{
		client: client,
	}
}

func (r *firestoreDirectMessageRepository) Create(ctx context.Context, message *entity.DirectMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now

	_, err := r.client.Collection("dm_messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Store("Failed to create direct message", err)
	}

	return nil
}

func (r *firestoreDirectMessageRepository) GetByID(ctx context.Context, id string) (*entity.DirectMessage, error) {
	doc, err := r.client.Collection("dm_messages").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Direct message", err)
		}
		return nil, errors.Store("Failed to get direct message", err)
	}

	var message entity.DirectMessage
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Store("Failed to parse direct message data", err)
	}

	return &message, nil
}

func (r *firestoreDirectMessageRepository) ListByReview(ctx context.Context, reviewID string) ([]*entity.DirectMessage, error) {
	iter := r.client.Collection("dm_messages").
		Where("reviewId", "==", reviewID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)

	var messages []*entity.DirectMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Store("Failed to iterate direct messages", err)
		}

		var message entity.DirectMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Store("Failed to parse direct message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreDirectMessageRepository) MarkRead(ctx context.Context, id string) (*entity.DirectMessage, error) {
	message, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Already read; marking again is a no-op.
	if message.IsRead {
		return message, nil
	}

	message.IsRead = true
	message.UpdatedAt = time.Now()

	_, err = r.client.Collection("dm_messages").Doc(id).Set(ctx, message)
	if err != nil {
		return nil, errors.Store("Failed to mark direct message read", err)
	}

	return message, nil
}

func (r *firestoreDirectMessageRepository) ListUnreadByReceiver(ctx context.Context, receiverID string) ([]*entity.DirectMessage, error) {
	iter := r.client.Collection("dm_messages").
		Where("receiverId", "==", receiverID).
		Where("isRead", "==", false).
		Documents(ctx)

	var messages []*entity.DirectMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Store("Failed to iterate unread messages", err)
		}

		var message entity.DirectMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Store("Failed to parse direct message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
