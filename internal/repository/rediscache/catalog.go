package rediscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/repository"
)

const (
	keyProducts     = "catalog:products"
	keyFeatured     = "catalog:products:featured"
	keyCategory     = "catalog:products:category:"
	keySlug         = "catalog:product:slug:"
	keyProductID    = "catalog:product:id:"
	keyLanguages    = "catalog:languages"
	keyLanguageCode = "catalog:language:code:"
)

// CatalogCache is a read-through cache in front of another CatalogRepository.
// The catalog is read-mostly, so list and lookup results are cached as JSON
// with a TTL and invalidated wholesale on writes. Cache failures are logged
// and the call falls through to the inner repository.
type CatalogCache struct {
	inner  repository.CatalogRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCatalogCache wraps a catalog repository with a Redis read-through cache.
func NewCatalogCache(inner repository.CatalogRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CatalogCache {
	return &CatalogCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// ListProducts returns all products, served from cache when possible.
func (c *CatalogCache) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return readThroughList(ctx, c, keyProducts, c.inner.ListProducts)
}

// ListFeatured returns featured products, served from cache when possible.
func (c *CatalogCache) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return readThroughList(ctx, c, keyFeatured, c.inner.ListFeatured)
}

// ListByCategory returns products in a category, served from cache when possible.
func (c *CatalogCache) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return readThroughList(ctx, c, keyCategory+category, func(ctx context.Context) ([]domain.Product, error) {
		return c.inner.ListByCategory(ctx, category)
	})
}

// GetProductByID retrieves a product by ID, served from cache when possible.
func (c *CatalogCache) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	return readThrough(ctx, c, keyProductID+strconv.FormatInt(id, 10), func(ctx context.Context) (*domain.Product, error) {
		return c.inner.GetProductByID(ctx, id)
	})
}

// GetProductBySlug retrieves a product by slug, served from cache when possible.
func (c *CatalogCache) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return readThrough(ctx, c, keySlug+slug, func(ctx context.Context) (*domain.Product, error) {
		return c.inner.GetProductBySlug(ctx, slug)
	})
}

// CreateProduct writes through to the inner repository and invalidates the
// product cache keys.
func (c *CatalogCache) CreateProduct(ctx context.Context, p *domain.Product) error {
	if err := c.inner.CreateProduct(ctx, p); err != nil {
		return err
	}
	c.invalidateProducts(ctx, p)
	return nil
}

// ListLanguages returns all languages, served from cache when possible.
func (c *CatalogCache) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	return readThroughList(ctx, c, keyLanguages, c.inner.ListLanguages)
}

// GetLanguageByCode retrieves a language by code, served from cache when possible.
func (c *CatalogCache) GetLanguageByCode(ctx context.Context, code string) (*domain.Language, error) {
	return readThrough(ctx, c, keyLanguageCode+code, func(ctx context.Context) (*domain.Language, error) {
		return c.inner.GetLanguageByCode(ctx, code)
	})
}

// CreateLanguage writes through to the inner repository and invalidates the
// language cache keys.
func (c *CatalogCache) CreateLanguage(ctx context.Context, l *domain.Language) error {
	if err := c.inner.CreateLanguage(ctx, l); err != nil {
		return err
	}
	if err := c.client.Del(ctx, keyLanguages, keyLanguageCode+l.Code).Err(); err != nil {
		c.logger.Warn("catalog cache invalidation failed", "error", err)
	}
	return nil
}

func (c *CatalogCache) invalidateProducts(ctx context.Context, p *domain.Product) {
	keys := []string{
		keyProducts,
		keyFeatured,
		keyCategory + p.Category,
		keySlug + p.Slug,
		keyProductID + strconv.FormatInt(p.ID, 10),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("catalog cache invalidation failed", "error", err)
	}
}

// readThrough fetches a single cached value, falling back to the loader on a
// miss and populating the cache on the way back.
func readThrough[T any](ctx context.Context, c *CatalogCache, key string, load func(context.Context) (*T, error)) (*T, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return &v, nil
		}
		c.logger.Warn("catalog cache entry corrupt", "key", key)
	} else if err != redis.Nil {
		c.logger.Warn("catalog cache read failed", "key", key, "error", err)
	}

	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, v)
	return v, nil
}

// readThroughList is readThrough for slice-valued lookups.
func readThroughList[T any](ctx context.Context, c *CatalogCache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var vs []T
		if err := json.Unmarshal(data, &vs); err == nil {
			return vs, nil
		}
		c.logger.Warn("catalog cache entry corrupt", "key", key)
	} else if err != redis.Nil {
		c.logger.Warn("catalog cache read failed", "key", key, "error", err)
	}

	vs, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, vs)
	return vs, nil
}

func (c *CatalogCache) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("catalog cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", "key", key, "error", err)
	}
}
