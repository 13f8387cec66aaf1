package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/event"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/repository"
	apperrors "github.com/hritvik715/LanguageKeyboardCentral/pkg/errors"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/slug"
)

// CreateProductInput holds the parameters for adding a product to the catalog.
type CreateProductInput struct {
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description"`
	Price              int64    `json:"price" validate:"required,gt=0"`
	Category           string   `json:"category" validate:"required"`
	ImageURL           string   `json:"imageUrl"`
	Rating             float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount        int      `json:"reviewCount" validate:"gte=0"`
	InStock            bool     `json:"inStock"`
	IsFeatured         bool     `json:"isFeatured"`
	IsNewArrival       bool     `json:"isNewArrival"`
	LanguagesSupported []string `json:"languagesSupported"`
}

// CatalogService implements the business logic for product and language reads.
type CatalogService struct {
	repo     repository.CatalogRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository, producer *event.Producer, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// ListProducts returns the full catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListFeatured returns products flagged as featured.
func (s *CatalogService) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	return products, nil
}

// ListByCategory returns products in the given category. An unknown category
// yields an empty list rather than an error.
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "" {
		return nil, apperrors.InvalidInput("category is required")
	}

	products, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return products, nil
}

// GetProductBySlug retrieves a single product by its URL slug.
func (s *CatalogService) GetProductBySlug(ctx context.Context, productSlug string) (*domain.Product, error) {
	if productSlug == "" {
		return nil, apperrors.InvalidInput("slug is required")
	}

	product, err := s.repo.GetProductBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetProductByID retrieves a single product by its numeric ID.
func (s *CatalogService) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// CreateProduct adds a product to the catalog. The slug is derived from the
// name when not supplied by storage.
func (s *CatalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if !domain.IsValidCategory(input.Category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("category must be one of %v", domain.ValidCategories()))
	}
	if input.Price <= 0 {
		return nil, apperrors.InvalidInput("price must be greater than 0")
	}

	product := &domain.Product{
		Name:               input.Name,
		Slug:               slug.Generate(input.Name),
		Description:        input.Description,
		Price:              input.Price,
		Category:           input.Category,
		ImageURL:           input.ImageURL,
		Rating:             input.Rating,
		ReviewCount:        input.ReviewCount,
		InStock:            input.InStock,
		IsFeatured:         input.IsFeatured,
		IsNewArrival:       input.IsNewArrival,
		LanguagesSupported: input.LanguagesSupported,
	}
	if product.LanguagesSupported == nil {
		product.LanguagesSupported = []string{}
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.String("slug", product.Slug),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.Int64("product_id", product.ID),
		slog.String("slug", product.Slug),
		slog.String("category", product.Category),
	)

	return product, nil
}

// ListLanguages returns all supported typing languages.
func (s *CatalogService) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	languages, err := s.repo.ListLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return languages, nil
}

// GetLanguageByCode retrieves a language by its short code.
func (s *CatalogService) GetLanguageByCode(ctx context.Context, code string) (*domain.Language, error) {
	if code == "" {
		return nil, apperrors.InvalidInput("language code is required")
	}

	language, err := s.repo.GetLanguageByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return language, nil
}
