package repository

import (
	"context"

	"kuchikomi/internal/domain/entity"
)

type CommunityRepository interface {
	CreateCommunity(ctx context.Context, community *entity.ProductCommunity) error
	GetCommunityByProduct(ctx context.Context, productID string) (*entity.ProductCommunity, error)
	CreateTopic(ctx context.Context, topic *entity.CommunityTopic) error
	GetTopicByID(ctx context.Context, id string) (*entity.CommunityTopic, error)
	// ListActiveTopics returns the community's non-deleted topics, newest first.
	ListActiveTopics(ctx context.Context, communityID string) ([]*entity.CommunityTopic, error)
	UpdateTopic(ctx context.Context, topic *entity.CommunityTopic) error
}
