package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"

	"github.com/avazquez/tienda-api/internal/logger"
	"github.com/avazquez/tienda-api/internal/models"
	"github.com/avazquez/tienda-api/internal/validation"
)

// Error variables
var (
	ErrNameRequired    = errors.New("name field is required")
	ErrInvalidPrice    = errors.New("price must have at most 3 integer digits and 2 fraction digits")
	ErrIDRequired      = errors.New("id field required to update")
	ErrProductExists   = errors.New("product with this id already exists")
	ErrProductNotFound = errors.New("product does not exist")
	ErrNoImage         = errors.New("product has no image")
)

const pgUniqueViolation = "23505"

// ProductReader defines read-only operations for products.
type ProductReader interface {
	GetByID(ctx context.Context, id int64) (*models.ProductDB, error)
}

// ProductWriter defines write operations for products.
type ProductWriter interface {
	Save(ctx context.Context, id *int64, name string, description *string, price float64, stock int, image *string) (int64, error)
	Update(ctx context.Context, p *models.ProductDB) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ImageReader reads image blobs by key.
type ImageReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProductService handles product lifecycle operations and event publishing.
type ProductService struct {
	reader      ProductReader
	writer      ProductWriter
	images      ImageReader
	eventWriter EventWriter
}

// NewProductService creates a new ProductService.
func NewProductService(reader ProductReader, writer ProductWriter, images ImageReader, eventWriter EventWriter) *ProductService {
	return &ProductService{
		reader:      reader,
		writer:      writer,
		images:      images,
		eventWriter: eventWriter,
	}
}

// publishEvent publishes a product mutation event to Kafka.
func (s *ProductService) publishEvent(ctx context.Context, productID int64, operation string) {
	if s.eventWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "product_id", productID, "operation", operation)
		return
	}

	event := models.ProductEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		ProductID: productID,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal product event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.eventWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish product event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("product event published", "event_id", event.EventID, "operation", operation)
	}
}

// Create validates the input and persists a new product, returning its id.
// A client-supplied id is honored when present.
func (s *ProductService) Create(ctx context.Context, in models.ProductCreate) (int64, error) {
	if in.Name == "" {
		logger.Log.Errorw("product name missing")
		return 0, ErrNameRequired
	}

	price, err := validation.ParsePrice(in.Price)
	if err != nil {
		logger.Log.Errorw("invalid product price", "price", in.Price)
		return 0, ErrInvalidPrice
	}

	id, err := s.writer.Save(ctx, in.ID, in.Name, in.Description, price, in.Stock, in.Image)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			logger.Log.Errorw("duplicate product id", "id", in.ID)
			return 0, ErrProductExists
		}
		logger.Log.Errorw("failed to save product", "err", err)
		return 0, err
	}

	s.publishEvent(ctx, id, "create")

	return id, nil
}

// Update applies a partial update: only non-nil patch fields change, the
// rest keep their stored values. Returns the product's name after the
// update for use in the response message.
func (s *ProductService) Update(ctx context.Context, patch models.ProductPatch) (string, error) {
	if patch.ID == nil {
		logger.Log.Errorw("product id missing in update payload")
		return "", ErrIDRequired
	}

	product, err := s.reader.GetByID(ctx, *patch.ID)
	if err != nil {
		logger.Log.Errorw("failed to look up product", "id", *patch.ID, "err", err)
		return "", err
	}
	if product == nil {
		logger.Log.Errorw("product does not exist", "id", *patch.ID)
		return "", ErrProductNotFound
	}

	if patch.Price != nil {
		price, err := validation.ParsePrice(*patch.Price)
		if err != nil {
			logger.Log.Errorw("invalid product price", "price", *patch.Price)
			return "", ErrInvalidPrice
		}
		product.Price = price
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = patch.Description
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Image != nil {
		product.Image = patch.Image
	}

	if _, err := s.writer.Update(ctx, product); err != nil {
		logger.Log.Errorw("failed to update product", "id", product.ID, "err", err)
		return "", err
	}

	s.publishEvent(ctx, product.ID, "update")

	return product.Name, nil
}

// Get returns the product with the given id.
func (s *ProductService) Get(ctx context.Context, id int64) (*models.ProductDB, error) {
	product, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to look up product", "id", id, "err", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Delete removes the product permanently.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	rowsAffected, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete product", "id", id, "err", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	s.publishEvent(ctx, id, "delete")

	return nil
}

// GetImage reads the product's image from the blob store. The blob is
// fetched fresh on every call.
func (s *ProductService) GetImage(ctx context.Context, id int64) ([]byte, error) {
	product, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to look up product", "id", id, "err", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.Image == nil || *product.Image == "" {
		return nil, ErrNoImage
	}

	data, err := s.images.Get(ctx, *product.Image)
	if err != nil {
		return nil, err
	}
	return data, nil
}
