package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/domain/repository"
	"kuchikomi/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	message.CreatedAt = time.Now()

	_, err := r.client.Collection("chat_messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Store("Failed to create chat message", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListByRoom(ctx context.Context, roomID string) ([]*entity.ChatMessage, error) {
	iter := r.client.Collection("chat_messages").
		Where("roomId", "==", roomID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)

	var messages []*entity.ChatMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Store("Failed to iterate chat messages", err)
		}

		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Store("Failed to parse chat message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
