package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuchikomi/pkg/errors"
)

func TestCreateCommunityOncePerProduct(t *testing.T) {
	uc := NewCommunityUseCase(newMemCommunityRepo())
	ctx := context.Background()

	community, err := uc.CreateCommunity(ctx, "user-1", CreateCommunityInput{
		ProductID:     "prod-1",
		CommunityName: "Widget Owners",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", community.CreatedBy)

	_, err = uc.CreateCommunity(ctx, "user-2", CreateCommunityInput{
		ProductID:     "prod-1",
		CommunityName: "Widget Fans",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))

	found, err := uc.GetByProduct(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "Widget Owners", found.CommunityName)
}

func TestCommunityLegacyProductID(t *testing.T) {
	uc := NewCommunityUseCase(newMemCommunityRepo())
	ctx := context.Background()

	_, err := uc.CreateCommunity(ctx, "user-1", CreateCommunityInput{
		ProductID:     "2",
		CommunityName: "Legacy Crew",
	})
	require.NoError(t, err)

	found, err := uc.GetByProduct(ctx, "00000000-0000-0000-0000-000000000002")
	require.NoError(t, err)
	assert.Equal(t, "Legacy Crew", found.CommunityName)
}

func TestTopicLifecycle(t *testing.T) {
	uc := NewCommunityUseCase(newMemCommunityRepo())
	ctx := context.Background()

	community, err := uc.CreateCommunity(ctx, "user-1", CreateCommunityInput{
		ProductID:     "prod-1",
		CommunityName: "Widget Owners",
	})
	require.NoError(t, err)

	topic, err := uc.CreateTopic(ctx, community.ID, "user-1", CreateTopicInput{
		TopicName: "Firmware updates",
	})
	require.NoError(t, err)
	assert.True(t, topic.IsActive)

	topics, err := uc.ListTopics(ctx, community.ID)
	require.NoError(t, err)
	assert.Len(t, topics, 1)

	// Only the creator can remove a topic.
	err = uc.DeactivateTopic(ctx, topic.ID, "user-2")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.DeactivateTopic(ctx, topic.ID, "user-1"))
	// Deactivating twice is a no-op.
	require.NoError(t, uc.DeactivateTopic(ctx, topic.ID, "user-1"))

	topics, err = uc.ListTopics(ctx, community.ID)
	require.NoError(t, err)
	assert.Empty(t, topics)
}

func TestCreateTopicValidation(t *testing.T) {
	uc := NewCommunityUseCase(newMemCommunityRepo())

	_, err := uc.CreateTopic(context.Background(), "comm-1", "user-1", CreateTopicInput{TopicName: "  "})
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}
