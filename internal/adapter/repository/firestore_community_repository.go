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

type firestoreCommunityRepository struct {
	client *firestore.Client
}

func NewFirestoreCommunityRepository(client *firestore.Client) repository.CommunityRepository {
	return &firestoreCommunityRepository{
		client: client,
	}
}

func (r *firestoreCommunityRepository) CreateCommunity(ctx context.Context, community *entity.ProductCommunity) error {
	if community.ID == "" {
		community.ID = uuid.New().String()
	}

	now := time.Now()
	community.CreatedAt = now
	community.UpdatedAt = now

	_, err := r.client.Collection("product_communities").Doc(community.ID).Set(ctx, community)
	if err != nil {
		return errors.Store("Failed to create community", err)
	}

	return nil
}

func (r *firestoreCommunityRepository) GetCommunityByProduct(ctx context.Context, productID string) (*entity.ProductCommunity, error) {
	iter := r.client.Collection("product_communities").
		Where("productId", "==", productID).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Community", nil)
	}
	if err != nil {
		return nil, errors.Store("Failed to query community", err)
	}

	var community entity.ProductCommunity
	if err := doc.DataTo(&community); err != nil {
		return nil, errors.Store("Failed to parse community data", err)
	}

	return &community, nil
}

func (r *firestoreCommunityRepository) CreateTopic(ctx context.Context, topic *entity.CommunityTopic) error {
	if topic.ID == "" {
		topic.ID = uuid.New().String()
	}

	now := time.Now()
	topic.CreatedAt = now
	topic.UpdatedAt = now

	_, err := r.client.Collection("community_topics").Doc(topic.ID).Set(ctx, topic)
	if err != nil {
		return errors.Store("Failed to create topic", err)
	}

	return nil
}

func (r *firestoreCommunityRepository) GetTopicByID(ctx context.Context, id string) (*entity.CommunityTopic, error) {
	doc, err := r.client.Collection("community_topics").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Topic", err)
		}
		return nil, errors.Store("Failed to get topic", err)
	}

	var topic entity.CommunityTopic
	if err := doc.DataTo(&topic); err != nil {
		return nil, errors.Store("Failed to parse topic data", err)
	}

	return &topic, nil
}

func (r *firestoreCommunityRepository) ListActiveTopics(ctx context.Context, communityID string) ([]*entity.CommunityTopic, error) {
	iter := r.client.Collection("community_topics").
		Where("communityId", "==", communityID).
		Where("isActive", "==", true).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var topics []*entity.CommunityTopic
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Store("Failed to iterate topics", err)
		}

		var topic entity.CommunityTopic
		if err := doc.DataTo(&topic); err != nil {
			return nil, errors.Store("Failed to parse topic data", err)
		}
		topics = append(topics, &topic)
	}

	return topics, nil
}

func (r *firestoreCommunityRepository) UpdateTopic(ctx context.Context, topic *entity.CommunityTopic) error {
	topic.UpdatedAt = time.Now()

	_, err := r.client.Collection("community_topics").Doc(topic.ID).Set(ctx, topic)
	if err != nil {
		return errors.Store("Failed to update topic", err)
	}

	return nil
}
