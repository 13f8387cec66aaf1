package domain

// MaxLineQuantity caps the quantity a single cart line may hold. The cap
// applies to the merged total, so repeated adds for the same product cannot
// grow a line past it.
const MaxLineQuantity = 100

// CartLine associates a session with a product and a quantity. At most one
// line exists per (sessionId, productId) pair; adding the same product again
// merges by incrementing the quantity.
type CartLine struct {
	ID        int64  `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartEntry is a cart line joined with its product at read time. Lines whose
// product no longer resolves in the catalog are dropped from joined reads.
type CartEntry struct {
	Item    CartLine `json:"item"`
	Product Product  `json:"product"`
}

// Subtotal returns the line price in the minor currency unit.
func (e CartEntry) Subtotal() int64 {
	return e.Product.Price * int64(e.Item.Quantity)
}
