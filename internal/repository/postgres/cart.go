package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/database"
	apperrors "github.com/hritvik715/LanguageKeyboardCentral/pkg/errors"
)

// CartRepository implements repository.CartRepository using PostgreSQL. The
// merge-on-add behavior is pushed into a single upsert statement so concurrent
// adds for the same (session, product) pair never produce duplicate lines.
type CartRepository struct {
	pool database.DBTX
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool database.DBTX) *CartRepository {
	return &CartRepository{pool: pool}
}

// ListLines returns all cart lines for a session in insertion order.
func (r *CartRepository) ListLines(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	query := `SELECT id, session_id, product_id, quantity FROM cart_lines WHERE session_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.CartLine{}
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.ID, &l.SessionID, &l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart line row: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart line rows: %w", err)
	}

	return lines, nil
}

// AddOrMergeLine inserts a cart line, or increments the quantity of the
// existing line for the same (session, product) pair. Merge and insert happen
// in one statement so the read-modify-write cannot interleave. The WHERE
// clause on the conflict update refuses merges that would push the line past
// domain.MaxLineQuantity; no row comes back in that case.
func (r *CartRepository) AddOrMergeLine(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.CartLine, error) {
	query := `
		INSERT INTO cart_lines (session_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, product_id)
		DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
		WHERE cart_lines.quantity + EXCLUDED.quantity <= $4
		RETURNING id, session_id, product_id, quantity`

	var l domain.CartLine
	err := r.pool.QueryRow(ctx, query, sessionID, productID, quantity, domain.MaxLineQuantity).
		Scan(&l.ID, &l.SessionID, &l.ProductID, &l.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.InvalidInput(fmt.Sprintf("combined quantity must not exceed %d", domain.MaxLineQuantity))
		}
		return nil, fmt.Errorf("upsert cart line: %w", err)
	}

	return &l, nil
}

// UpdateQuantity overwrites the quantity of an existing cart line.
func (r *CartRepository) UpdateQuantity(ctx context.Context, lineID int64, quantity int) (*domain.CartLine, error) {
	query := `
		UPDATE cart_lines
		SET quantity = $2
		WHERE id = $1
		RETURNING id, session_id, product_id, quantity`

	var l domain.CartLine
	err := r.pool.QueryRow(ctx, query, lineID, quantity).
		Scan(&l.ID, &l.SessionID, &l.ProductID, &l.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("cart line", strconv.FormatInt(lineID, 10))
		}
		return nil, fmt.Errorf("update cart line: %w", err)
	}

	return &l, nil
}

// RemoveLine deletes a cart line by ID, reporting whether a row existed.
func (r *CartRepository) RemoveLine(ctx context.Context, lineID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_lines WHERE id = $1`, lineID)
	if err != nil {
		return false, fmt.Errorf("delete cart line: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Clear removes all cart lines for a session. Clearing an empty cart succeeds.
func (r *CartRepository) Clear(ctx context.Context, sessionID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_lines WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}
