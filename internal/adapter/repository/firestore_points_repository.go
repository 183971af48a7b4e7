package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/domain/repository"
	"kuchikomi/pkg/errors"
)

type firestorePointsRepository struct {
	client *firestore.Client
}

func NewFirestorePointsRepository(client *firestore.Client) repository.PointsRepository {
	return &firestorePointsRepository{
		client: client,
	}
}

func (r *firestorePointsRepository) Get(ctx context.Context, userID string) (*entity.UserPoints, error) {
	doc, err := r.client.Collection("user_points").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Points account", err)
		}
		return nil, errors.Store("Failed to get points account", err)
	}

	var points entity.UserPoints
	if err := doc.DataTo(&points); err != nil {
		return nil, errors.Store("Failed to parse points data", err)
	}

	return &points, nil
}

// Add runs inside a Firestore transaction so concurrent awards to the same
// account cannot lose updates.
func (r *firestorePointsRepository) Add(ctx context.Context, userID, category string, points int) (*entity.UserPoints, error) {
	docRef := r.client.Collection("user_points").Doc(userID)

	var result entity.UserPoints

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now()
		account := entity.UserPoints{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: now,
		}

		doc, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil {
			if err := doc.DataTo(&account); err != nil {
				return err
			}
		}

		account.TotalPoints += points
		switch category {
		case entity.PointCategoryReview:
			account.ReviewPoints += points
		case entity.PointCategoryChat:
			account.ChatPoints += points
		case entity.PointCategoryVerification:
			account.VerificationPoints += points
		}
		account.UpdatedAt = now

		result = account
		return tx.Set(docRef, account)
	})
	if err != nil {
		return nil, errors.Store("Failed to add points", err)
	}

	return &result, nil
}
