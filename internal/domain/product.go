package domain

// Product category constants.
const (
	CategoryKeyboard     = "keyboard"
	CategoryDisplayCombo = "display_combo"
	CategoryAccessory    = "accessory"
)

// Product represents a product in the catalog. Products are created at
// catalog load time and are read-only thereafter; prices are stored in the
// minor currency unit (paise).
type Product struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description"`
	Price              int64    `json:"price"`
	Category           string   `json:"category"`
	ImageURL           string   `json:"imageUrl"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
	InStock            bool     `json:"inStock"`
	IsFeatured         bool     `json:"isFeatured"`
	IsNewArrival       bool     `json:"isNewArrival"`
	LanguagesSupported []string `json:"languagesSupported"`
}

// ValidCategories returns the set of valid product categories.
func ValidCategories() []string {
	return []string{CategoryKeyboard, CategoryDisplayCombo, CategoryAccessory}
}

// IsValidCategory checks whether the given string is a valid product category.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}
