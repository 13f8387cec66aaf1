package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hritvik715/LanguageKeyboardCentral/internal/domain"
	pkgkafka "github.com/hritvik715/LanguageKeyboardCentral/pkg/kafka"
)

// Kafka topic constants for storefront domain events.
const (
	TopicCartUpdated    = "storefront.cart.updated"
	TopicCartCleared    = "storefront.cart.cleared"
	TopicProductCreated = "storefront.catalog.product.created"
)

// Aggregate type constants.
const (
	AggregateTypeCart    = "cart"
	AggregateTypeProduct = "product"
)

// Source identifier for events originating from the storefront service.
const SourceStorefront = "storefront"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	SessionID string         `json:"session_id"`
	Items     []CartLineData `json:"items"`
	ItemCount int            `json:"item_count"`
}

// CartLineData is the line payload within cart events.
type CartLineData struct {
	LineID    int64 `json:"line_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	SessionID string `json:"session_id"`
}

// ProductCreatedData is the payload for a catalog.product.created event.
type ProductCreatedData struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Category  string `json:"category"`
	Price     int64  `json:"price"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event describing the full cart
// after a mutation.
func (p *Producer) PublishCartUpdated(ctx context.Context, sessionID string, lines []domain.CartLine) error {
	items := make([]CartLineData, len(lines))
	count := 0
	for i, line := range lines {
		items[i] = CartLineData{
			LineID:    line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		count += line.Quantity
	}

	data := CartUpdatedData{
		SessionID: sessionID,
		Items:     items,
		ItemCount: count,
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, sessionID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("session_id", sessionID),
		slog.Int("item_count", count),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, sessionID string) error {
	data := CartClearedData{SessionID: sessionID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, sessionID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("session_id", sessionID),
	)

	return nil
}

// PublishProductCreated publishes a catalog.product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	data := ProductCreatedData{
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		Category:  product.Category,
		Price:     product.Price,
	}

	event, err := pkgkafka.NewEvent(TopicProductCreated, product.Slug, AggregateTypeProduct, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create product.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductCreated, event); err != nil {
		return fmt.Errorf("publish product.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.created event",
		slog.String("slug", product.Slug),
		slog.Int64("product_id", product.ID),
	)

	return nil
}
