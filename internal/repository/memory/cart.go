package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	apperrors "github.com/hritvik715/LanguageKeyboardCentral/pkg/errors"
)

// CartRepository implements repository.CartRepository with an in-memory map.
// The merge in AddOrMergeLine runs under the write lock, so concurrent adds
// for the same (session, product) pair cannot lose an increment.
type CartRepository struct {
	mu     sync.RWMutex
	lines  map[int64]domain.CartLine
	order  []int64
	nextID int64
}

// NewCartRepository creates an empty in-memory cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		lines:  make(map[int64]domain.CartLine),
		nextID: 1,
	}
}

// ListLines returns all lines for the session in insertion order.
func (r *CartRepository) ListLines(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.CartLine{}
	for _, id := range r.order {
		if line := r.lines[id]; line.SessionID == sessionID {
			out = append(out, line)
		}
	}
	return out, nil
}

// AddOrMergeLine increments the quantity of an existing (session, product)
// line or creates a new one with a fresh ID. The merged total must stay
// within domain.MaxLineQuantity.
func (r *CartRepository) AddOrMergeLine(ctx context.Context, sessionID string, productID int64, qty int) (*domain.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		line := r.lines[id]
		if line.SessionID == sessionID && line.ProductID == productID {
			if line.Quantity+qty > domain.MaxLineQuantity {
				return nil, apperrors.InvalidInput(fmt.Sprintf("combined quantity must not exceed %d", domain.MaxLineQuantity))
			}
			line.Quantity += qty
			r.lines[id] = line
			return &line, nil
		}
	}

	line := domain.CartLine{
		ID:        r.nextID,
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  qty,
	}
	r.nextID++
	r.lines[line.ID] = line
	r.order = append(r.order, line.ID)
	return &line, nil
}

// UpdateQuantity overwrites the quantity of the line with the given ID.
func (r *CartRepository) UpdateQuantity(ctx context.Context, lineID int64, qty int) (*domain.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[lineID]
	if !ok {
		return nil, apperrors.NotFound("cart line", strconv.FormatInt(lineID, 10))
	}
	line.Quantity = qty
	r.lines[lineID] = line
	return &line, nil
}

// RemoveLine deletes the line with the given ID, reporting whether it existed.
func (r *CartRepository) RemoveLine(ctx context.Context, lineID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lines[lineID]; !ok {
		return false, nil
	}
	delete(r.lines, lineID)
	for i, id := range r.order {
		if id == lineID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Clear deletes every line belonging to the session.
func (r *CartRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.order[:0]
	for _, id := range r.order {
		if r.lines[id].SessionID == sessionID {
			delete(r.lines, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return nil
}
