package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/event"
	"github.com/hritvik715/LanguageKeyboardCentral/internal/repository"
	apperrors "github.com/hritvik715/LanguageKeyboardCentral/pkg/errors"
)

// MaxQuantityPerLine is the maximum quantity allowed for a single cart line.
// The repositories enforce the same cap on the merged total in AddOrMergeLine.
const MaxQuantityPerLine = domain.MaxLineQuantity

// AddLineInput holds the parameters for adding a product to the cart.
type AddLineInput struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

// UpdateQuantityInput holds the parameters for overwriting a line quantity.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// CartService implements the business logic for cart operations. The product
// catalog is consulted on every read to attach product detail, and on adds to
// reject references to products that do not exist.
type CartService struct {
	repo     repository.CartRepository
	catalog  repository.CatalogRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, catalog repository.CatalogRepository, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		catalog:  catalog,
		producer: producer,
		logger:   logger,
	}
}

// GetEntries returns the cart for a session with each line joined to its
// product. Lines whose product no longer exists are omitted silently so a
// catalog removal never breaks cart reads.
func (s *CartService) GetEntries(ctx context.Context, sessionID string) ([]domain.CartEntry, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	lines, err := s.repo.ListLines(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}

	entries := []domain.CartEntry{}
	for _, line := range lines {
		product, err := s.catalog.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.logger.WarnContext(ctx, "cart line references missing product",
					slog.Int64("line_id", line.ID),
					slog.Int64("product_id", line.ProductID),
				)
				continue
			}
			return nil, fmt.Errorf("join cart line %d: %w", line.ID, err)
		}
		entries = append(entries, domain.CartEntry{Item: line, Product: *product})
	}

	return entries, nil
}

// AddLine adds a product to the session's cart. Adding a product already in
// the cart merges by increasing the existing line's quantity.
func (s *CartService) AddLine(ctx context.Context, sessionID string, input AddLineInput) (*domain.CartLine, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if input.ProductID <= 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if input.Quantity < 1 {
		return nil, apperrors.InvalidInput("quantity must be at least 1")
	}
	if input.Quantity > MaxQuantityPerLine {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerLine))
	}

	// Reject lines for products the catalog does not know.
	if _, err := s.catalog.GetProductByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("product", fmt.Sprintf("%d", input.ProductID))
		}
		return nil, fmt.Errorf("check product: %w", err)
	}

	line, err := s.repo.AddOrMergeLine(ctx, sessionID, input.ProductID, input.Quantity)
	if err != nil {
		return nil, fmt.Errorf("add cart line: %w", err)
	}

	s.publishCartUpdated(ctx, sessionID)

	s.logger.InfoContext(ctx, "cart line added",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", input.ProductID),
		slog.Int("quantity", line.Quantity),
	)

	return line, nil
}

// UpdateQuantity overwrites the quantity of a cart line. Quantities below 1
// are rejected without mutating the line.
func (s *CartService) UpdateQuantity(ctx context.Context, lineID int64, quantity int) (*domain.CartLine, error) {
	if quantity < 1 {
		return nil, apperrors.InvalidInput("quantity must be at least 1")
	}
	if quantity > MaxQuantityPerLine {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerLine))
	}

	line, err := s.repo.UpdateQuantity(ctx, lineID, quantity)
	if err != nil {
		return nil, err
	}

	s.publishCartUpdated(ctx, line.SessionID)

	s.logger.InfoContext(ctx, "cart line quantity updated",
		slog.Int64("line_id", lineID),
		slog.Int("quantity", quantity),
	)

	return line, nil
}

// RemoveLine deletes a cart line. An unknown line yields a not-found error.
func (s *CartService) RemoveLine(ctx context.Context, sessionID string, lineID int64) error {
	removed, err := s.repo.RemoveLine(ctx, lineID)
	if err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	if !removed {
		return apperrors.NotFound("cart line", fmt.Sprintf("%d", lineID))
	}

	s.publishCartUpdated(ctx, sessionID)

	s.logger.InfoContext(ctx, "cart line removed",
		slog.String("session_id", sessionID),
		slog.Int64("line_id", lineID),
	)

	return nil
}

// Clear removes every line in the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	if err := s.repo.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("session_id", sessionID),
	)

	return nil
}

// publishCartUpdated snapshots the session's lines and emits a cart.updated
// event. Publish failures are logged, never surfaced to the caller.
func (s *CartService) publishCartUpdated(ctx context.Context, sessionID string) {
	lines, err := s.repo.ListLines(ctx, sessionID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to snapshot cart for event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.producer.PublishCartUpdated(ctx, sessionID, lines); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}
}
