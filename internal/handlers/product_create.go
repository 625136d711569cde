package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avazquez/tienda-api/internal/logger"
	"github.com/avazquez/tienda-api/internal/models"
	"github.com/avazquez/tienda-api/internal/services"
)

// ProductCreator defines the interface that the service must implement.
type ProductCreator interface {
	Create(ctx context.Context, in models.ProductCreate) (int64, error)
}

// CreateProductRequest represents the JSON body for product creation
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	// Optional client-chosen id
	ID *int64 `json:"id,omitempty"`

	// Product name
	// required: true
	// default: Keyboard
	Name string `json:"name"`

	// Description
	Description *string `json:"description,omitempty"`

	// Price, number or string, at most 3 integer and 2 fraction digits
	// default: 10.30
	Price models.Price `json:"price"`

	// Units in stock
	// default: 5
	Stock int `json:"stock"`

	// Optional blob store key for the product image
	Image *string `json:"image,omitempty"`
}

// CreateProductResponse represents a successful creation response
// swagger:model CreateProductResponse
type CreateProductResponse struct {
	// Success message
	// default: Product Keyboard saved successfully
	Message string `json:"message"`

	// Assigned product id
	ID int64 `json:"id"`
}

// ProductErrorResponse represents an error response for product endpoints
// swagger:model ProductErrorResponse
type ProductErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreateProductHandler returns an HTTP handler for product creation.
// @Summary Create a product
// @Description Persists a new product. The price must fit 3 integer digits and 2 fraction digits; violations are rejected, not truncated.
// @Tags products
// @Accept json
// @Produce json
// @Param createProductRequest body handlers.CreateProductRequest true "Product creation request"
// @Success 201 {object} handlers.CreateProductResponse "Product saved"
// @Failure 400 {object} handlers.ProductErrorResponse "Schema violation"
// @Router /product/create/ [post]
func NewCreateProductHandler(svc ProductCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProductRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		id, err := svc.Create(r.Context(), models.ProductCreate{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
			Price:       string(req.Price),
			Stock:       req.Stock,
			Image:       req.Image,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNameRequired),
				errors.Is(err, services.ErrInvalidPrice),
				errors.Is(err, services.ErrProductExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateProductResponse{
			Message: fmt.Sprintf("Product %s saved successfully", req.Name),
			ID:      id,
		})
	}
}
