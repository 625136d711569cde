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

// ProductUpdater defines the interface that the service must implement.
type ProductUpdater interface {
	Update(ctx context.Context, patch models.ProductPatch) (string, error)
}

// UpdateProductRequest represents the JSON body for a partial product
// update. Absent fields keep their stored values.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	// Product id
	// required: true
	ID *int64 `json:"id,omitempty"`

	// Product name
	Name *string `json:"name,omitempty"`

	// Description
	Description *string `json:"description,omitempty"`

	// Price, number or string, at most 3 integer and 2 fraction digits
	Price *models.Price `json:"price,omitempty"`

	// Units in stock
	Stock *int `json:"stock,omitempty"`

	// Blob store key for the product image
	Image *string `json:"image,omitempty"`
}

// UpdateProductResponse represents a successful update response
// swagger:model UpdateProductResponse
type UpdateProductResponse struct {
	// Success message
	// default: Product Keyboard updated successfully
	Message string `json:"message"`
}

// ProductNotFoundResponse represents a 404 response for product endpoints
// swagger:model ProductNotFoundResponse
type ProductNotFoundResponse struct {
	// Error message
	// default: Product with id 1 does not exist
	Message string `json:"message"`
}

// NewUpdateProductHandler returns an HTTP handler for partial product updates.
// @Summary Update a product
// @Description Applies only the fields present in the payload. A missing id is a 400; an unknown id is a 404; an invalid price is a 400.
// @Tags products
// @Accept json
// @Produce json
// @Param updateProductRequest body handlers.UpdateProductRequest true "Partial product update"
// @Success 200 {object} handlers.UpdateProductResponse "Product updated"
// @Failure 400 {object} handlers.ProductErrorResponse "Missing id or schema violation"
// @Failure 404 {object} handlers.ProductNotFoundResponse "No product with that id"
// @Router /product/update/ [put]
func NewUpdateProductHandler(svc ProductUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProductRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProductErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		patch := models.ProductPatch{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
			Stock:       req.Stock,
			Image:       req.Image,
		}
		if req.Price != nil {
			price := string(*req.Price)
			patch.Price = &price
		}

		name, err := svc.Update(r.Context(), patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrIDRequired),
				errors.Is(err, services.ErrInvalidPrice):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ProductErrorResponse{
					Error: err.Error(),
				})
			case errors.Is(err, services.ErrProductNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProductNotFoundResponse{
					Message: fmt.Sprintf("Product with id %d does not exist", *req.ID),
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateProductResponse{
			Message: fmt.Sprintf("Product %s updated successfully", name),
		})
	}
}
