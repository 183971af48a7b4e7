package usecase

import (
	"context"
	"fmt"
	"io"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/domain/repository"
	"kuchikomi/internal/domain/service"
	"kuchikomi/pkg/errors"
	"kuchikomi/pkg/logger"
	"kuchikomi/pkg/utils"
)

type VerificationUseCase struct {
	verificationRepo repository.VerificationRepository
	userRepo         repository.UserRepository
	fileService      service.FileUploadService
	pointsUseCase    *PointsUseCase
	maxUploadSizeMB  int64
}

func NewVerificationUseCase(
	verificationRepo repository.VerificationRepository,
	userRepo repository.UserRepository,
	fileService service.FileUploadService,
	pointsUseCase *PointsUseCase,
	maxUploadSizeMB int64,
) *VerificationUseCase {
	return &VerificationUseCase{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		fileService:      fileService,
		pointsUseCase:    pointsUseCase,
		maxUploadSizeMB:  maxUploadSizeMB,
	}
}

type SubmitVerificationInput struct {
	ProductID        string
	VerificationType string
	FileName         string
	ContentType      string
	FileSize         int64
	File             io.Reader
}

// Submit validates and stores a purchase-verification image and records a
// pending verification for admin review. Validation happens before any byte
// reaches storage: a rejected file must leave no trace.
func (uc *VerificationUseCase) Submit(ctx context.Context, userID string, input SubmitVerificationInput) (*entity.PurchaseVerification, error) {
	if input.ProductID == "" {
		return nil, errors.Validation("Product ID is required", nil)
	}

	switch input.VerificationType {
	case entity.VerificationTypePhoto, entity.VerificationTypeReceipt:
	default:
		return nil, errors.Validation("Verification type must be 'photo' or 'receipt'", nil)
	}

	if err := utils.ValidateFileType(input.ContentType); err != nil {
		return nil, err
	}
	if err := utils.ValidateFileSize(input.FileSize, uc.maxUploadSizeMB); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("verifications/%s", utils.GenerateSafeFileName(input.FileName, userID))
	fileURL, err := uc.fileService.UploadFile(ctx, input.File, input.ContentType, key)
	if err != nil {
		return nil, errors.Store("Failed to upload verification file", err)
	}

	verification := &entity.PurchaseVerification{
		UserID:           userID,
		ProductID:        input.ProductID,
		VerificationType: input.VerificationType,
		FileURL:          fileURL,
		Status:           entity.VerificationStatusPending,
	}

	if err := uc.verificationRepo.Create(ctx, verification); err != nil {
		return nil, err
	}

	// Upload bonus is best effort: a failed award never fails the submission.
	if _, err := uc.pointsUseCase.AwardForAction(ctx, userID, entity.PointCategoryVerification, "verification_upload"); err != nil {
		logger.Warn("Failed to award verification upload points for user %s: %v", userID, err)
	}

	return verification, nil
}

// IsApproved reports whether the user holds an approved verification for the
// product. This is the gate consulted before accepting a review.
func (uc *VerificationUseCase) IsApproved(ctx context.Context, userID, productID string) (bool, error) {
	return uc.verificationRepo.HasApproved(ctx, userID, productID)
}

// SetStatus decides a pending verification. Only pending records can be
// decided; re-deciding is a conflict so a double-submitted admin form cannot
// flip an approval, and the approval bonus is paid at most once.
func (uc *VerificationUseCase) SetStatus(ctx context.Context, id, status string) (*entity.PurchaseVerification, error) {
	switch status {
	case entity.VerificationStatusApproved, entity.VerificationStatusRejected:
	default:
		return nil, errors.BadRequest("Status must be 'approved' or 'rejected'", nil)
	}

	verification, err := uc.verificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if verification.Status != entity.VerificationStatusPending {
		return nil, errors.Conflict(fmt.Sprintf("Verification has already been %s", verification.Status), nil)
	}

	if err := uc.verificationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	verification.Status = status

	if status == entity.VerificationStatusApproved {
		if _, err := uc.pointsUseCase.AwardForAction(ctx, verification.UserID, entity.PointCategoryVerification, "verification_approved"); err != nil {
			logger.Warn("Failed to award verification approval points for user %s: %v", verification.UserID, err)
		}
		uc.bumpVerifiedPurchases(ctx, verification.UserID)
	}

	return verification, nil
}

func (uc *VerificationUseCase) bumpVerifiedPurchases(ctx context.Context, userID string) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Failed to load user %s for verified purchase count: %v", userID, err)
		return
	}
	user.VerifiedPurchases++
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to update verified purchase count for user %s: %v", userID, err)
	}
}

// ListMine returns the caller's verifications, newest first.
func (uc *VerificationUseCase) ListMine(ctx context.Context, userID string) ([]*entity.PurchaseVerification, error) {
	return uc.verificationRepo.ListByUser(ctx, userID)
}

// ListPending returns verifications awaiting an admin decision.
func (uc *VerificationUseCase) ListPending(ctx context.Context, limit, offset int) ([]*entity.PurchaseVerification, int64, error) {
	return uc.verificationRepo.ListByStatus(ctx, entity.VerificationStatusPending, limit, offset)
}
