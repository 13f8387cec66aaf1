package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	apperrors "github.com/hritvik715/LanguageKeyboardCentral/pkg/errors"
)

// CatalogRepository implements repository.CatalogRepository with in-memory
// maps. It is safe for concurrent use; all reads return copies so callers
// cannot mutate stored records.
//
// Slug uniqueness is NOT enforced here: lookups resolve to the first product
// inserted with a matching slug. The postgres implementation enforces a
// unique index instead.
type CatalogRepository struct {
	mu sync.RWMutex

	products     map[int64]domain.Product
	productOrder []int64
	nextProduct  int64

	languages     map[int64]domain.Language
	languageOrder []int64
	nextLanguage  int64
}

// NewCatalogRepository creates an empty in-memory catalog repository.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products:     make(map[int64]domain.Product),
		nextProduct:  1,
		languages:    make(map[int64]domain.Language),
		nextLanguage: 1,
	}
}

// ListProducts returns all products in insertion order.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.productOrder))
	for _, id := range r.productOrder {
		out = append(out, r.products[id])
	}
	return out, nil
}

// ListFeatured returns products flagged as featured, in insertion order.
func (r *CatalogRepository) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Product{}
	for _, id := range r.productOrder {
		if p := r.products[id]; p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListByCategory returns products matching the category exactly. An unknown
// category yields an empty slice.
func (r *CatalogRepository) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Product{}
	for _, id := range r.productOrder {
		if p := r.products[id]; p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetProductByID retrieves a product by ID.
func (r *CatalogRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFound("product", strconv.FormatInt(id, 10))
	}
	return &p, nil
}

// GetProductBySlug retrieves a product by slug. With duplicate slugs the
// first inserted product wins.
func (r *CatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.productOrder {
		if p := r.products[id]; p.Slug == slug {
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("product", slug)
}

// CreateProduct stores the product and assigns the next sequential ID.
func (r *CatalogRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextProduct
	r.nextProduct++
	r.products[p.ID] = *p
	r.productOrder = append(r.productOrder, p.ID)
	return nil
}

// DeleteProduct removes a product by ID. Used by tests to exercise the
// orphaned-cart-line join policy; the HTTP API does not expose deletion.
func (r *CatalogRepository) DeleteProduct(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperrors.NotFound("product", strconv.FormatInt(id, 10))
	}
	delete(r.products, id)
	for i, pid := range r.productOrder {
		if pid == id {
			r.productOrder = append(r.productOrder[:i], r.productOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ListLanguages returns all languages in insertion order.
func (r *CatalogRepository) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Language, 0, len(r.languageOrder))
	for _, id := range r.languageOrder {
		out = append(out, r.languages[id])
	}
	return out, nil
}

// GetLanguageByCode retrieves a language by its short code.
func (r *CatalogRepository) GetLanguageByCode(ctx context.Context, code string) (*domain.Language, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.languageOrder {
		if l := r.languages[id]; l.Code == code {
			return &l, nil
		}
	}
	return nil, apperrors.NotFound("language", code)
}

// CreateLanguage stores the language and assigns the next sequential ID.
func (r *CatalogRepository) CreateLanguage(ctx context.Context, l *domain.Language) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = r.nextLanguage
	r.nextLanguage++
	r.languages[l.ID] = *l
	r.languageOrder = append(r.languageOrder, l.ID)
	return nil
}
