package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/infrastructure/websocket"
	"kuchikomi/pkg/errors"
)

type dmFixture struct {
	uc         *DirectMessageUseCase
	dmRepo     *memDMRepo
	reviewRepo *memReviewRepo
	userRepo   *memUserRepo
	reviewID   string
}

// newDMFixture seeds a review by "author" so asker/author threads can hang
// off it.
func newDMFixture(t *testing.T) *dmFixture {
	t.Helper()
	dmRepo := newMemDMRepo()
	reviewRepo := newMemReviewRepo()
	userRepo := newMemUserRepo()

	review := &entity.Review{
		ProductID: "prod-1", UserID: "author", UserName: "Author",
		Rating: 5, Title: "Great", Content: "Loved it", IsVerifiedPurchase: true,
	}
	require.NoError(t, reviewRepo.Create(context.Background(), review))

	userRepo.Create(context.Background(), &entity.User{ID: "author", Email: "a@example.com", Name: "Author"})
	userRepo.Create(context.Background(), &entity.User{ID: "asker", Email: "q@example.com", Name: "Asker"})

	return &dmFixture{
		uc:         NewDirectMessageUseCase(dmRepo, reviewRepo, userRepo, websocket.NewManager()),
		dmRepo:     dmRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		reviewID:   review.ID,
	}
}

func TestSendDirectMessageResolvesNamesAndEarnsNoPoints(t *testing.T) {
	f := newDMFixture(t)

	msg, err := f.uc.Send(context.Background(), "asker", SendDirectMessageInput{
		ReviewID:   f.reviewID,
		ReceiverID: "author",
		Message:    "How is the battery after a month?",
	})
	require.NoError(t, err)

	assert.False(t, msg.IsRead)
	assert.Equal(t, "Asker", msg.SenderName)
	assert.Equal(t, "Author", msg.ReceiverName)
}

func TestSendDirectMessageValidation(t *testing.T) {
	f := newDMFixture(t)

	_, err := f.uc.Send(context.Background(), "asker", SendDirectMessageInput{
		ReviewID: f.reviewID, ReceiverID: "author", Message: "   ",
	})
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	_, err = f.uc.Send(context.Background(), "asker", SendDirectMessageInput{
		ReviewID: f.reviewID, ReceiverID: "asker", Message: "hi me",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = f.uc.Send(context.Background(), "asker", SendDirectMessageInput{
		ReviewID: "missing-review", ReceiverID: "author", Message: "hello",
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListThreadParticipantsOnly(t *testing.T) {
	f := newDMFixture(t)

	_, err := f.uc.Send(context.Background(), "asker", SendDirectMessageInput{
		ReviewID: f.reviewID, ReceiverID: "author", Message: "question",
	})
	require.NoError(t, err)

	for _, uid := range []string{"asker", "author"} {
		messages, err := f.uc.ListThread(context.Background(), f.reviewID, uid)
		require.NoError(t, err)
		assert.Len(t, messages, 1)
	}

	_, err = f.uc.ListThread(context.Background(), f.reviewID, "lurker")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestMarkThreadReadIsIdempotent(t *testing.T) {
	f := newDMFixture(t)
	ctx := context.Background()

	for _, text := range []string{"q1", "q2"} {
		_, err := f.uc.Send(ctx, "asker", SendDirectMessageInput{
			ReviewID: f.reviewID, ReceiverID: "author", Message: text,
		})
		require.NoError(t, err)
	}
	_, err := f.uc.Send(ctx, "author", SendDirectMessageInput{
		ReviewID: f.reviewID, ReceiverID: "asker", Message: "a1",
	})
	require.NoError(t, err)

	unread, err := f.uc.UnreadCount(ctx, "author")
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	marked, err := f.uc.MarkThreadRead(ctx, f.reviewID, "author")
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	// Only the author's incoming messages flipped; the asker's stayed unread.
	unread, _ = f.uc.UnreadCount(ctx, "author")
	assert.Equal(t, 0, unread)
	unread, _ = f.uc.UnreadCount(ctx, "asker")
	assert.Equal(t, 1, unread)

	// Second run observes the same state and changes nothing.
	marked, err = f.uc.MarkThreadRead(ctx, f.reviewID, "author")
	require.NoError(t, err)
	assert.Equal(t, 0, marked)

	messages, err := f.uc.ListThread(ctx, f.reviewID, "author")
	require.NoError(t, err)
	for _, m := range messages {
		if m.ReceiverID == "author" {
			assert.True(t, m.IsRead)
		}
	}
}

func TestThreadOrderedByCreation(t *testing.T) {
	f := newDMFixture(t)
	ctx := context.Background()

	texts := []string{"first", "second", "third"}
	for i, text := range texts {
		sender, receiver := "asker", "author"
		if i%2 == 1 {
			sender, receiver = "author", "asker"
		}
		_, err := f.uc.Send(ctx, sender, SendDirectMessageInput{
			ReviewID: f.reviewID, ReceiverID: receiver, Message: text,
		})
		require.NoError(t, err)
	}

	messages, err := f.uc.ListThread(ctx, f.reviewID, "author")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i, text := range texts {
		assert.Equal(t, text, messages[i].Message)
	}
}
