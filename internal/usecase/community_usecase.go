package usecase

import (
	"context"
	"strings"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/domain/repository"
	"kuchikomi/pkg/errors"
)

type CommunityUseCase struct {
	communityRepo repository.CommunityRepository
}

func NewCommunityUseCase(communityRepo repository.CommunityRepository) *CommunityUseCase {
	return &CommunityUseCase{
		communityRepo: communityRepo,
	}
}

type CreateCommunityInput struct {
	ProductID     string `json:"product_id" validate:"required"`
	CommunityName string `json:"community_name" validate:"required"`
	Description   string `json:"description"`
}

// CreateCommunity creates the community for a product. Each product has at
// most one.
func (uc *CommunityUseCase) CreateCommunity(ctx context.Context, userID string, input CreateCommunityInput) (*entity.ProductCommunity, error) {
	if strings.TrimSpace(input.CommunityName) == "" {
		return nil, errors.Validation("Community name must not be empty", nil)
	}

	productID := ResolveProductID(input.ProductID)

	existing, err := uc.communityRepo.GetCommunityByProduct(ctx, productID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("This product already has a community", nil)
	}

	community := &entity.ProductCommunity{
		ProductID:     productID,
		CommunityName: strings.TrimSpace(input.CommunityName),
		Description:   input.Description,
		CreatedBy:     userID,
	}

	if err := uc.communityRepo.CreateCommunity(ctx, community); err != nil {
		return nil, err
	}

	return community, nil
}

func (uc *CommunityUseCase) GetByProduct(ctx context.Context, productID string) (*entity.ProductCommunity, error) {
	return uc.communityRepo.GetCommunityByProduct(ctx, ResolveProductID(productID))
}

type CreateTopicInput struct {
	TopicName   string `json:"topic_name" validate:"required"`
	Description string `json:"description"`
}

// CreateTopic adds a discussion topic to an existing community.
func (uc *CommunityUseCase) CreateTopic(ctx context.Context, communityID, userID string, input CreateTopicInput) (*entity.CommunityTopic, error) {
	if strings.TrimSpace(input.TopicName) == "" {
		return nil, errors.Validation("Topic name must not be empty", nil)
	}

	topic := &entity.CommunityTopic{
		CommunityID: communityID,
		TopicName:   strings.TrimSpace(input.TopicName),
		Description: input.Description,
		CreatedBy:   userID,
		IsActive:    true,
	}

	if err := uc.communityRepo.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}

	return topic, nil
}

// ListTopics returns the community's active topics, newest first. Soft
// deleted topics never appear.
func (uc *CommunityUseCase) ListTopics(ctx context.Context, communityID string) ([]*entity.CommunityTopic, error) {
	return uc.communityRepo.ListActiveTopics(ctx, communityID)
}

// DeactivateTopic soft-deletes a topic. Only its creator may do so; the
// topic's messages stay in place.
func (uc *CommunityUseCase) DeactivateTopic(ctx context.Context, topicID, userID string) error {
	topic, err := uc.communityRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return err
	}
	if topic.CreatedBy != userID {
		return errors.Forbidden("Only the topic creator can remove it", nil)
	}
	if !topic.IsActive {
		return nil
	}

	topic.IsActive = false
	return uc.communityRepo.UpdateTopic(ctx, topic)
}
