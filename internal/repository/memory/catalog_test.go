package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	apperrors "github.com/hritvik715/LanguageKeyboardCentral/pkg/errors"
)

func newProduct(name, slug, category string, featured bool) *domain.Product {
	return &domain.Product{
		Name:               name,
		Slug:               slug,
		Description:        "test product",
		Price:              649900,
		Category:           category,
		Rating:             4.5,
		ReviewCount:        10,
		InStock:            true,
		IsFeatured:         featured,
		LanguagesSupported: []string{"hi", "en"},
	}
}

func TestCatalogRepository_CreateProduct_AssignsSequentialIDs(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	first := newProduct("Hindi Keyboard Pro", "hindi-keyboard-pro", domain.CategoryKeyboard, true)
	second := newProduct("Tamil-English Combo", "tamil-english-combo", domain.CategoryDisplayCombo, false)

	require.NoError(t, repo.CreateProduct(ctx, first))
	require.NoError(t, repo.CreateProduct(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestCatalogRepository_ListProducts_InsertionOrder(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	names := []string{"A Keyboard", "B Keyboard", "C Keyboard"}
	for i, name := range names {
		p := newProduct(name, "kb-"+string(rune('a'+i)), domain.CategoryKeyboard, false)
		require.NoError(t, repo.CreateProduct(ctx, p))
	}

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i, name := range names {
		assert.Equal(t, name, products[i].Name)
	}
}

func TestCatalogRepository_ListFeatured(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateProduct(ctx, newProduct("Featured", "featured", domain.CategoryKeyboard, true)))
	require.NoError(t, repo.CreateProduct(ctx, newProduct("Plain", "plain", domain.CategoryKeyboard, false)))

	featured, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "featured", featured[0].Slug)
}

func TestCatalogRepository_ListByCategory(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateProduct(ctx, newProduct("Keyboard", "kb", domain.CategoryKeyboard, false)))
	require.NoError(t, repo.CreateProduct(ctx, newProduct("Combo", "combo", domain.CategoryDisplayCombo, false)))

	combos, err := repo.ListByCategory(ctx, domain.CategoryDisplayCombo)
	require.NoError(t, err)
	require.Len(t, combos, 1)
	assert.Equal(t, "combo", combos[0].Slug)

	none, err := repo.ListByCategory(ctx, "accessory")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRepository_GetProductBySlug(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateProduct(ctx, newProduct("Hindi Keyboard Pro", "hindi-keyboard-pro", domain.CategoryKeyboard, true)))

	p, err := repo.GetProductBySlug(ctx, "hindi-keyboard-pro")
	require.NoError(t, err)
	assert.Equal(t, "Hindi Keyboard Pro", p.Name)

	_, err = repo.GetProductBySlug(ctx, "nonexistent-slug")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogRepository_GetProductBySlug_DuplicateSlugFirstWins(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	first := newProduct("First", "shared-slug", domain.CategoryKeyboard, false)
	second := newProduct("Second", "shared-slug", domain.CategoryKeyboard, false)
	require.NoError(t, repo.CreateProduct(ctx, first))
	require.NoError(t, repo.CreateProduct(ctx, second))

	p, err := repo.GetProductBySlug(ctx, "shared-slug")
	require.NoError(t, err)
	assert.Equal(t, first.ID, p.ID)
}

func TestCatalogRepository_GetProductByID_NotFound(t *testing.T) {
	repo := NewCatalogRepository()

	_, err := repo.GetProductByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogRepository_DeleteProduct(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	p := newProduct("Doomed", "doomed", domain.CategoryKeyboard, false)
	require.NoError(t, repo.CreateProduct(ctx, p))

	require.NoError(t, repo.DeleteProduct(ctx, p.ID))

	_, err := repo.GetProductByID(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.DeleteProduct(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogRepository_Languages(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	hindi := &domain.Language{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Description: "Most popular language"}
	tamil := &domain.Language{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", Description: "Classical language"}
	require.NoError(t, repo.CreateLanguage(ctx, hindi))
	require.NoError(t, repo.CreateLanguage(ctx, tamil))

	languages, err := repo.ListLanguages(ctx)
	require.NoError(t, err)
	require.Len(t, languages, 2)
	assert.Equal(t, "hi", languages[0].Code)
	assert.Equal(t, "ta", languages[1].Code)

	l, err := repo.GetLanguageByCode(ctx, "ta")
	require.NoError(t, err)
	assert.Equal(t, "Tamil", l.Name)

	_, err = repo.GetLanguageByCode(ctx, "xx")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogRepository_ReadsReturnCopies(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	p := newProduct("Original", "original", domain.CategoryKeyboard, false)
	require.NoError(t, repo.CreateProduct(ctx, p))

	got, err := repo.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := repo.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
}
