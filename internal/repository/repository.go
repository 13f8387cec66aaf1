package repository

import (
	"context"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
)

// CatalogRepository defines persistence operations for products and languages.
// The catalog is read-mostly: writes happen only during seeding and through
// the admin product-creation path.
type CatalogRepository interface {
	// ListProducts returns all products in insertion order.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListFeatured returns products with the featured flag set, in insertion order.
	ListFeatured(ctx context.Context) ([]domain.Product, error)

	// ListByCategory returns products matching the category exactly.
	// An unknown category yields an empty slice, not an error.
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)

	// GetProductByID retrieves a product by its unique identifier.
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)

	// GetProductBySlug retrieves a product by its URL-friendly slug.
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// CreateProduct inserts a new product and assigns its ID.
	CreateProduct(ctx context.Context, p *domain.Product) error

	// ListLanguages returns all languages in insertion order.
	ListLanguages(ctx context.Context) ([]domain.Language, error)

	// GetLanguageByCode retrieves a language by its short code (e.g. "hi").
	GetLanguageByCode(ctx context.Context, code string) (*domain.Language, error)

	// CreateLanguage inserts a new language and assigns its ID.
	CreateLanguage(ctx context.Context, l *domain.Language) error
}

// CartRepository defines persistence operations for cart lines.
type CartRepository interface {
	// ListLines returns all lines for a session in insertion order.
	ListLines(ctx context.Context, sessionID string) ([]domain.CartLine, error)

	// AddOrMergeLine upserts a line for (sessionID, productID). If a line
	// already exists its quantity is incremented by qty; otherwise a new line
	// is created with a fresh ID. The operation is atomic so concurrent adds
	// for the same pair cannot lose an increment.
	AddOrMergeLine(ctx context.Context, sessionID string, productID int64, qty int) (*domain.CartLine, error)

	// UpdateQuantity overwrites the quantity of the line with the given ID.
	// Returns ErrNotFound when no such line exists.
	UpdateQuantity(ctx context.Context, lineID int64, qty int) (*domain.CartLine, error)

	// RemoveLine deletes the line with the given ID. Returns whether a line
	// was actually removed; a miss is not an error.
	RemoveLine(ctx context.Context, lineID int64) (bool, error)

	// Clear deletes every line for the session. Clearing an empty cart succeeds.
	Clear(ctx context.Context, sessionID string) error
}
