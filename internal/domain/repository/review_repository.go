package repository

import (
	"context"

	"kuchikomi/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, int64, error)
	ListAll(ctx context.Context, limit, offset int) ([]*entity.Review, int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
}
