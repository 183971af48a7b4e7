package usecase

import (
	"context"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/domain/repository"
	"kuchikomi/pkg/errors"
)

type PointsUseCase struct {
	pointsRepo repository.PointsRepository
}

func NewPointsUseCase(pointsRepo repository.PointsRepository) *PointsUseCase {
	return &PointsUseCase{
		pointsRepo: pointsRepo,
	}
}

// Award adds points to the user's ledger under the given category. The
// account is created lazily on the first award; the add is atomic at the
// store so concurrent awards never lose updates.
func (uc *PointsUseCase) Award(ctx context.Context, userID, category string, points int) (*entity.UserPoints, error) {
	if points < 0 {
		return nil, errors.BadRequest("Points must not be negative", nil)
	}

	switch category {
	case entity.PointCategoryReview, entity.PointCategoryChat, entity.PointCategoryVerification:
	default:
		return nil, errors.BadRequest("Unknown point category", nil)
	}

	return uc.pointsRepo.Add(ctx, userID, category, points)
}

// AwardForAction awards the configured amount for a named action.
func (uc *PointsUseCase) AwardForAction(ctx context.Context, userID, category, action string) (*entity.UserPoints, error) {
	return uc.Award(ctx, userID, category, entity.PointsForAction(action))
}

// GetUserPoints returns the user's ledger. A user who has never earned
// points gets a zeroed view; the account itself is only created by the
// first award.
func (uc *PointsUseCase) GetUserPoints(ctx context.Context, userID string) (*entity.UserPoints, error) {
	points, err := uc.pointsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &entity.UserPoints{UserID: userID}, nil
		}
		return nil, err
	}

	return points, nil
}

// Table exposes the authoritative action-to-points lookup.
func (uc *PointsUseCase) Table() map[string]int {
	return entity.PointsTable()
}
