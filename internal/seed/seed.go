// Package seed loads the initial catalog of languages and products into an
// empty store. Seeding is idempotent: a store that already holds products is
// left untouched.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/repository"
)

// Languages is the built-in set of supported typing languages.
func Languages() []domain.Language {
	return []domain.Language{
		{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Description: "Most popular language"},
		{Code: "bn", Name: "Bengali", NativeName: "বাংলা", Description: "Full character support"},
		{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", Description: "Classical language"},
		{Code: "te", Name: "Telugu", NativeName: "తెలుగు", Description: "Complete layout"},
		{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ", Description: "Special edition available"},
		{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം", Description: "Premium layout"},
		{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ", Description: "Gurumukhi script"},
		{Code: "mr", Name: "Marathi", NativeName: "मराठी", Description: "Devanagari script"},
		{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી", Description: "Full support"},
		{Code: "ur", Name: "Urdu", NativeName: "اردو", Description: "Right-to-left support"},
		{Code: "or", Name: "Odia", NativeName: "ଓଡ଼ିଆ", Description: "Eastern Indian language"},
	}
}

// Products is the built-in starting catalog. Prices are in paise.
func Products() []domain.Product {
	return []domain.Product{
		{
			Name:               "Hindi Keyboard Pro",
			Slug:               "hindi-keyboard-pro",
			Description:        "Mechanical keyboard with Hindi language layout and RGB lighting. Perfect for daily typing and programming.",
			Price:              649900,
			Category:           domain.CategoryKeyboard,
			ImageURL:           "https://images.unsplash.com/photo-1595225476474-87563907a212?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.8,
			ReviewCount:        124,
			InStock:            true,
			IsFeatured:         true,
			IsNewArrival:       false,
			LanguagesSupported: []string{"hi", "en"},
		},
		{
			Name:               "Bengali Mech Keyboard",
			Slug:               "bengali-mech-keyboard",
			Description:        "Premium mechanical keyboard with Bengali character support. Features Cherry MX switches for the ultimate typing experience.",
			Price:              719900,
			Category:           domain.CategoryKeyboard,
			ImageURL:           "https://images.unsplash.com/photo-1618384887929-16ec33fab9ef?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.0,
			ReviewCount:        78,
			InStock:            true,
			IsFeatured:         true,
			IsNewArrival:       true,
			LanguagesSupported: []string{"bn", "en"},
		},
		{
			Name:               "Tamil-English Combo",
			Slug:               "tamil-english-combo",
			Description:        "Keyboard and 24\" display combo with Tamil language support. Perfect for professionals who work in dual languages.",
			Price:              1199900,
			Category:           domain.CategoryDisplayCombo,
			ImageURL:           "https://images.unsplash.com/photo-1542728928-1413d1894ed1?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             5.0,
			ReviewCount:        42,
			InStock:            true,
			IsFeatured:         true,
			IsNewArrival:       false,
			LanguagesSupported: []string{"ta", "en"},
		},
		{
			Name:               "Kerala Special Edition",
			Slug:               "kerala-special-edition",
			Description:        "Special edition keyboard designed specifically for Malayalam typing. Features authentic Malayalam script layout.",
			Price:              899900,
			Category:           domain.CategoryKeyboard,
			ImageURL:           "https://images.unsplash.com/photo-1595044426077-d36d9236d54a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.7,
			ReviewCount:        56,
			InStock:            true,
			IsFeatured:         false,
			IsNewArrival:       false,
			LanguagesSupported: []string{"ml", "en"},
		},
		{
			Name:               "Telugu Premium Keyboard",
			Slug:               "telugu-premium-keyboard",
			Description:        "Premium mechanical keyboard with Telugu character support. Designed for professional writers and content creators.",
			Price:              779900,
			Category:           domain.CategoryKeyboard,
			ImageURL:           "https://images.unsplash.com/photo-1587829741301-dc798b83add3?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.6,
			ReviewCount:        37,
			InStock:            true,
			IsFeatured:         false,
			IsNewArrival:       false,
			LanguagesSupported: []string{"te", "en"},
		},
		{
			Name:               "Punjabi Wireless Keyboard",
			Slug:               "punjabi-wireless-keyboard",
			Description:        "Wireless mechanical keyboard with Punjabi language support. Perfect for those who need mobility without compromising on typing experience.",
			Price:              599900,
			Category:           domain.CategoryKeyboard,
			ImageURL:           "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.2,
			ReviewCount:        23,
			InStock:            true,
			IsFeatured:         false,
			IsNewArrival:       false,
			LanguagesSupported: []string{"pa", "en"},
		},
		{
			Name:               "Gujarati Display Combo",
			Slug:               "gujarati-display-combo",
			Description:        "Keyboard and display combo with Gujarati language support. Features a 27\" 4K monitor for the ultimate viewing experience.",
			Price:              1249900,
			Category:           domain.CategoryDisplayCombo,
			ImageURL:           "https://images.unsplash.com/photo-1616763355548-1b606f439f86?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.4,
			ReviewCount:        19,
			InStock:            true,
			IsFeatured:         false,
			IsNewArrival:       false,
			LanguagesSupported: []string{"gu", "en"},
		},
		{
			Name:               "Kannada Gaming Keyboard",
			Slug:               "kannada-gaming-keyboard",
			Description:        "Mechanical gaming keyboard with Kannada language support. Features RGB lighting and programmable macros for the ultimate gaming experience.",
			Price:              829900,
			Category:           domain.CategoryKeyboard,
			ImageURL:           "https://images.unsplash.com/photo-1623126908029-58cb08a2b272?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.9,
			ReviewCount:        31,
			InStock:            true,
			IsFeatured:         false,
			IsNewArrival:       true,
			LanguagesSupported: []string{"kn", "en"},
		},
		{
			Name:               "Marathi Pro Keyboard",
			Slug:               "marathi-pro-keyboard",
			Description:        "Professional grade keyboard with Marathi language support. Perfect for content creators and writers.",
			Price:              749900,
			Category:           domain.CategoryKeyboard,
			ImageURL:           "https://images.unsplash.com/photo-1561112078-7d24e04c3407?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.5,
			ReviewCount:        28,
			InStock:            true,
			IsFeatured:         false,
			IsNewArrival:       false,
			LanguagesSupported: []string{"mr", "en"},
		},
		{
			Name:               "Odia Classic Keyboard",
			Slug:               "odia-classic-keyboard",
			Description:        "Classic mechanical keyboard with Odia language support. Features Cherry MX Brown switches for a tactile typing experience.",
			Price:              699900,
			Category:           domain.CategoryKeyboard,
			ImageURL:           "https://images.unsplash.com/photo-1587829741301-dc798b83add3?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.3,
			ReviewCount:        17,
			InStock:            true,
			IsFeatured:         false,
			IsNewArrival:       false,
			LanguagesSupported: []string{"or", "en"},
		},
		{
			Name:               "Multi-Language Premium Combo",
			Slug:               "multi-language-premium-combo",
			Description:        "Premium keyboard and 32\" 4K display combo with support for all major Indian languages. The ultimate setup for multilingual professionals.",
			Price:              1899900,
			Category:           domain.CategoryDisplayCombo,
			ImageURL:           "https://images.unsplash.com/photo-1547394765-185e1e68f34e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.9,
			ReviewCount:        14,
			InStock:            true,
			IsFeatured:         false,
			IsNewArrival:       true,
			LanguagesSupported: []string{"hi", "bn", "ta", "te", "kn", "ml", "pa", "mr", "gu", "ur", "or", "en"},
		},
		{
			Name:               "Urdu Wireless Keyboard",
			Slug:               "urdu-wireless-keyboard",
			Description:        "Wireless mechanical keyboard with Urdu language support and right-to-left text input capabilities.",
			Price:              749900,
			Category:           domain.CategoryKeyboard,
			ImageURL:           "https://images.unsplash.com/photo-1595225476474-87563907a212?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Rating:             4.4,
			ReviewCount:        22,
			InStock:            true,
			IsFeatured:         false,
			IsNewArrival:       false,
			LanguagesSupported: []string{"ur", "en"},
		},
	}
}

// Run populates the catalog with the built-in languages and products. If any
// products already exist the store is considered seeded and nothing happens.
func Run(ctx context.Context, repo repository.CatalogRepository, logger *slog.Logger) error {
	existing, err := repo.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("check existing products: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "catalog already seeded",
			slog.Int("product_count", len(existing)),
		)
		return nil
	}

	for _, language := range Languages() {
		l := language
		if err := repo.CreateLanguage(ctx, &l); err != nil {
			return fmt.Errorf("seed language %s: %w", language.Code, err)
		}
	}

	for _, product := range Products() {
		p := product
		if err := repo.CreateProduct(ctx, &p); err != nil {
			return fmt.Errorf("seed product %s: %w", product.Slug, err)
		}
	}

	logger.InfoContext(ctx, "catalog seeded",
		slog.Int("language_count", len(Languages())),
		slog.Int("product_count", len(Products())),
	)

	return nil
}
