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

type firestoreVerificationRepository struct {
	client *firestore.Client
}

func NewFirestoreVerificationRepository(client *firestore.Client) repository.VerificationRepository {
	return &firestoreVerificationRepository{
		client: client,
	}
}

func (r *firestoreVerificationRepository) Create(ctx context.Context, verification *entity.PurchaseVerification) error {
	if verification.ID == "" {
		verification.ID = uuid.New().String()
	}

	now := time.Now()
	verification.CreatedAt = now
	verification.UpdatedAt = now

	_, err := r.client.Collection("purchase_verifications").Doc(verification.ID).Set(ctx, verification)
	if err != nil {
		return errors.Store("Failed to create verification", err)
	}

	return nil
}

func (r *firestoreVerificationRepository) GetByID(ctx context.Context, id string) (*entity.PurchaseVerification, error) {
	doc, err := r.client.Collection("purchase_verifications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Verification", err)
		}
		return nil, errors.Store("Failed to get verification", err)
	}

	var verification entity.PurchaseVerification
	if err := doc.DataTo(&verification); err != nil {
		return nil, errors.Store("Failed to parse verification data", err)
	}

	return &verification, nil
}

func (r *firestoreVerificationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PurchaseVerification, error) {
	iter := r.client.Collection("purchase_verifications").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var verifications []*entity.PurchaseVerification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Store("Failed to iterate verifications", err)
		}

		var verification entity.PurchaseVerification
		if err := doc.DataTo(&verification); err != nil {
			return nil, errors.Store("Failed to parse verification data", err)
		}
		verifications = append(verifications, &verification)
	}

	return verifications, nil
}

func (r *firestoreVerificationRepository) ListByStatus(ctx context.Context, verStatus string, limit, offset int) ([]*entity.PurchaseVerification, int64, error) {
	query := r.client.Collection("purchase_verifications").
		Where("status", "==", verStatus).
		OrderBy("createdAt", firestore.Asc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Store("Failed to count verifications", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var verifications []*entity.PurchaseVerification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Store("Failed to iterate verifications", err)
		}

		var verification entity.PurchaseVerification
		if err := doc.DataTo(&verification); err != nil {
			return nil, 0, errors.Store("Failed to parse verification data", err)
		}
		verifications = append(verifications, &verification)
	}

	return verifications, total, nil
}

func (r *firestoreVerificationRepository) UpdateStatus(ctx context.Context, id, verStatus string) error {
	_, err := r.client.Collection("purchase_verifications").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: verStatus},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Verification", err)
		}
		return errors.Store("Failed to update verification status", err)
	}

	return nil
}

func (r *firestoreVerificationRepository) HasApproved(ctx context.Context, userID, productID string) (bool, error) {
	iter := r.client.Collection("purchase_verifications").
		Where("userId", "==", userID).
		Where("productId", "==", productID).
		Where("status", "==", entity.VerificationStatusApproved).
		Limit(1).
		Documents(ctx)

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Store("Failed to query approved verification", err)
	}

	return true, nil
}

func (r *firestoreVerificationRepository) HasAnyApproved(ctx context.Context, userID string) (bool, error) {
	iter := r.client.Collection("purchase_verifications").
		Where("userId", "==", userID).
		Where("status", "==", entity.VerificationStatusApproved).
		Limit(1).
		Documents(ctx)

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Store("Failed to query approved verification", err)
	}

	return true, nil
}

func (r *firestoreVerificationRepository) ApprovedUserSet(ctx context.Context, userIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	// Firestore limits "in" filters to 30 values per query.
	const chunkSize = 30
	for start := 0; start < len(userIDs); start += chunkSize {
		end := start + chunkSize
		if end > len(userIDs) {
			end = len(userIDs)
		}

		iter := r.client.Collection("purchase_verifications").
			Where("userId", "in", userIDs[start:end]).
			Where("status", "==", entity.VerificationStatusApproved).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, errors.Store("Failed to query approved users", err)
			}

			var verification entity.PurchaseVerification
			if err := doc.DataTo(&verification); err != nil {
				return nil, errors.Store("Failed to parse verification data", err)
			}
			result[verification.UserID] = true
		}
	}

	return result, nil
}
