package usecase

import (
	"context"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/internal/domain/repository"
	"kuchikomi/pkg/errors"
)

// Legacy clients address the seed catalog by short numeric ids. The mapping
// is a data-migration concern kept in one place until those clients are gone.
var legacyProductIDs = map[string]string{
	"1": "00000000-0000-0000-0000-000000000001",
	"2": "00000000-0000-0000-0000-000000000002",
	"3": "00000000-0000-0000-0000-000000000003",
	"4": "00000000-0000-0000-0000-000000000004",
}

// ResolveProductID translates a legacy numeric product id to its canonical
// UUID. Unrecognized ids pass through unchanged.
func ResolveProductID(id string) string {
	if canonical, ok := legacyProductIDs[id]; ok {
		return canonical
	}
	return id
}

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
}

func (uc *ProductUseCase) Create(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, ResolveProductID(id))
}

func (uc *ProductUseCase) List(ctx context.Context, category string, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.List(ctx, category, limit, offset)
}

// applyReviewRollup folds a new rating into the product's aggregate. Roll-up
// failures are reported to the caller for logging but never fail the review.
func (uc *ProductUseCase) applyReviewRollup(ctx context.Context, productID string, rating int) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			// Reviews may reference products seeded outside the catalog.
			return nil
		}
		return err
	}

	total := product.Rating*float64(product.ReviewCount) + float64(rating)
	product.ReviewCount++
	product.Rating = total / float64(product.ReviewCount)
	product.HasVerifiedReviews = true

	return uc.productRepo.Update(ctx, product)
}
