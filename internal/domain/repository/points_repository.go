package repository

import (
	"context"

	"kuchikomi/internal/domain/entity"
)

type PointsRepository interface {
	// Get returns the user's ledger, or NotFound when no account exists yet.
	Get(ctx context.Context, userID string) (*entity.UserPoints, error)
	// Add atomically increments the total and the given category counter,
	// creating the account with zeroed counters when absent. Concurrent adds
	// to the same account must not lose updates.
	Add(ctx context.Context, userID, category string, points int) (*entity.UserPoints, error)
}
