package repository

import (
	"context"

	"kuchikomi/internal/domain/entity"
)

type VerificationRepository interface {
	Create(ctx context.Context, verification *entity.PurchaseVerification) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseVerification, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.PurchaseVerification, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.PurchaseVerification, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error

	// HasApproved reports whether at least one approved verification exists
	// for the (user, product) pair.
	HasApproved(ctx context.Context, userID, productID string) (bool, error)
	// HasAnyApproved reports whether the user holds an approved verification
	// for any product.
	HasAnyApproved(ctx context.Context, userID string) (bool, error)
	// ApprovedUserSet returns the subset of userIDs holding at least one
	// approved verification. One batched query per call, not one per user.
	ApprovedUserSet(ctx context.Context, userIDs []string) (map[string]bool, error)
}
