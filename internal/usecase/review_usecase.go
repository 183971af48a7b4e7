package usecase

import (
	"context"
	"strings"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/domain/repository"
	"kuchikomi/pkg/errors"
	"kuchikomi/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo       repository.ReviewRepository
	verificationRepo repository.VerificationRepository
	pointsUseCase    *PointsUseCase
	productUseCase   *ProductUseCase
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	verificationRepo repository.VerificationRepository,
	pointsUseCase *PointsUseCase,
	productUseCase *ProductUseCase,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:       reviewRepo,
		verificationRepo: verificationRepo,
		pointsUseCase:    pointsUseCase,
		productUseCase:   productUseCase,
	}
}

type CreateReviewInput struct {
	ProductID          string `json:"product_id" validate:"required"`
	UserName           string `json:"user_name" validate:"required"`
	Rating             int    `json:"rating" validate:"required,min=1,max=5"`
	Title              string `json:"title" validate:"required"`
	Content            string `json:"content" validate:"required"`
	ProductUsagePeriod string `json:"product_usage_period"`
}

// Create posts a review. The caller must hold an approved purchase
// verification for the product; pending or rejected is not enough.
func (uc *ReviewUseCase) Create(ctx context.Context, userID string, input CreateReviewInput) (*entity.Review, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, errors.Validation("Title and content must not be empty", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("Rating must be between 1 and 5", nil)
	}

	productID := ResolveProductID(input.ProductID)

	approved, err := uc.verificationRepo.HasApproved(ctx, userID, productID)
	if err != nil {
		return nil, errors.Store("Failed to check purchase verification", err)
	}
	if !approved {
		return nil, errors.PermissionDenied("Purchase verification required: submit a photo or receipt for this product and wait for approval before reviewing", nil)
	}

	priorReviews, err := uc.reviewRepo.CountByUser(ctx, userID)
	if err != nil {
		logger.Warn("Failed to count prior reviews for user %s: %v", userID, err)
		priorReviews = -1 // unknown; skip the first-review bonus rather than double-pay
	}

	review := &entity.Review{
		ProductID:          productID,
		UserID:             userID,
		UserName:           input.UserName,
		Rating:             input.Rating,
		Title:              strings.TrimSpace(input.Title),
		Content:            strings.TrimSpace(input.Content),
		IsVerifiedPurchase: true,
		ProductUsagePeriod: input.ProductUsagePeriod,
		IsUserVerified:     true,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Awards and the product rating roll-up are best effort; the review
	// itself is already committed.
	if _, err := uc.pointsUseCase.AwardForAction(ctx, userID, entity.PointCategoryReview, "review_post"); err != nil {
		logger.Warn("Failed to award review points for user %s: %v", userID, err)
	}
	if priorReviews == 0 {
		if _, err := uc.pointsUseCase.AwardForAction(ctx, userID, entity.PointCategoryReview, "first_review"); err != nil {
			logger.Warn("Failed to award first review bonus for user %s: %v", userID, err)
		}
	}
	if err := uc.productUseCase.applyReviewRollup(ctx, productID, review.Rating); err != nil {
		logger.Warn("Failed to update product rating for %s: %v", productID, err)
	}

	return review, nil
}

func (uc *ReviewUseCase) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.markVerifiedAuthors(ctx, []*entity.Review{review})
	return review, nil
}

func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, int64, error) {
	reviews, total, err := uc.reviewRepo.ListByProduct(ctx, ResolveProductID(productID), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	uc.markVerifiedAuthors(ctx, reviews)
	return reviews, total, nil
}

func (uc *ReviewUseCase) ListAll(ctx context.Context, limit, offset int) ([]*entity.Review, int64, error) {
	reviews, total, err := uc.reviewRepo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	uc.markVerifiedAuthors(ctx, reviews)
	return reviews, total, nil
}

type UpdateReviewInput struct {
	Rating             int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Title              string `json:"title"`
	Content            string `json:"content"`
	ProductUsagePeriod string `json:"product_usage_period"`
}

// Update edits the caller's own review. Non-zero fields overwrite.
func (uc *ReviewUseCase) Update(ctx context.Context, id, userID string, input UpdateReviewInput) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, errors.Forbidden("You can only edit your own reviews", nil)
	}

	if input.Rating != 0 {
		if input.Rating < 1 || input.Rating > 5 {
			return nil, errors.Validation("Rating must be between 1 and 5", nil)
		}
		review.Rating = input.Rating
	}
	if strings.TrimSpace(input.Title) != "" {
		review.Title = strings.TrimSpace(input.Title)
	}
	if strings.TrimSpace(input.Content) != "" {
		review.Content = strings.TrimSpace(input.Content)
	}
	if input.ProductUsagePeriod != "" {
		review.ProductUsagePeriod = input.ProductUsagePeriod
	}

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) Delete(ctx context.Context, id, userID string, isAdmin bool) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.UserID != userID && !isAdmin {
		return errors.Forbidden("You can only delete your own reviews", nil)
	}

	return uc.reviewRepo.Delete(ctx, id)
}

// markVerifiedAuthors fills the derived IsUserVerified flag with one batched
// lookup over the distinct author ids.
func (uc *ReviewUseCase) markVerifiedAuthors(ctx context.Context, reviews []*entity.Review) {
	if len(reviews) == 0 {
		return
	}

	seen := make(map[string]bool)
	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ids = append(ids, r.UserID)
		}
	}

	verified, err := uc.verificationRepo.ApprovedUserSet(ctx, ids)
	if err != nil {
		logger.Warn("Failed to resolve verified authors: %v", err)
		return
	}

	for _, r := range reviews {
		r.IsUserVerified = verified[r.UserID]
	}
}
