package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/database"
	apperrors "github.com/hritvik715/LanguageKeyboardCentral/pkg/errors"
)

const productColumns = `id, name, slug, description, price, category, image_url,
		rating, review_count, in_stock, is_featured, is_new_arrival, languages_supported`

// CatalogRepository implements repository.CatalogRepository using PostgreSQL.
// Unlike the in-memory variant it enforces slug uniqueness through the unique
// index on products.slug.
type CatalogRepository struct {
	pool database.DBTX
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool database.DBTX) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListProducts returns all products in insertion order.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY id`, productColumns)
	return r.queryProducts(ctx, query)
}

// ListFeatured returns products with the featured flag set.
func (r *CatalogRepository) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE is_featured ORDER BY id`, productColumns)
	return r.queryProducts(ctx, query)
}

// ListByCategory returns products matching the category exactly.
func (r *CatalogRepository) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE category = $1 ORDER BY id`, productColumns)
	return r.queryProducts(ctx, query, category)
}

// GetProductByID retrieves a product by ID.
func (r *CatalogRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	return r.scanProduct(ctx, query, strconv.FormatInt(id, 10), id)
}

// GetProductBySlug retrieves a product by slug.
func (r *CatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE slug = $1`, productColumns)
	return r.scanProduct(ctx, query, slug, slug)
}

// CreateProduct inserts a new product and fills in the generated ID.
func (r *CatalogRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (name, slug, description, price, category, image_url,
			rating, review_count, in_stock, is_featured, is_new_arrival, languages_supported)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		p.Category,
		p.ImageURL,
		p.Rating,
		p.ReviewCount,
		p.InStock,
		p.IsFeatured,
		p.IsNewArrival,
		p.LanguagesSupported,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "slug", p.Slug)
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// ListLanguages returns all languages in insertion order.
func (r *CatalogRepository) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	query := `SELECT id, code, name, native_name, description FROM languages ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	languages := []domain.Language{}
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.Description); err != nil {
			return nil, fmt.Errorf("scan language row: %w", err)
		}
		languages = append(languages, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate language rows: %w", err)
	}

	return languages, nil
}

// GetLanguageByCode retrieves a language by its short code.
func (r *CatalogRepository) GetLanguageByCode(ctx context.Context, code string) (*domain.Language, error) {
	query := `SELECT id, code, name, native_name, description FROM languages WHERE code = $1`

	var l domain.Language
	err := r.pool.QueryRow(ctx, query, code).Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("language", code)
		}
		return nil, fmt.Errorf("scan language: %w", err)
	}

	return &l, nil
}

// CreateLanguage inserts a new language and fills in the generated ID.
func (r *CatalogRepository) CreateLanguage(ctx context.Context, l *domain.Language) error {
	query := `
		INSERT INTO languages (code, name, native_name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query, l.Code, l.Name, l.NativeName, l.Description).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("language", "code", l.Code)
		}
		return fmt.Errorf("insert language: %w", err)
	}

	return nil
}

// queryProducts executes a query expected to return zero or more product rows.
func (r *CatalogRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Description,
			&p.Price,
			&p.Category,
			&p.ImageURL,
			&p.Rating,
			&p.ReviewCount,
			&p.InStock,
			&p.IsFeatured,
			&p.IsNewArrival,
			&p.LanguagesSupported,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// scanProduct executes a query expected to return a single product row.
func (r *CatalogRepository) scanProduct(ctx context.Context, query, lookup string, arg any) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.ImageURL,
		&p.Rating,
		&p.ReviewCount,
		&p.InStock,
		&p.IsFeatured,
		&p.IsNewArrival,
		&p.LanguagesSupported,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", lookup)
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
