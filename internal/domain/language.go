package domain

// Language is a static reference record for a supported keyboard language.
type Language struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	NativeName  string `json:"nativeName"`
	Description string `json:"description"`
}
