package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avazquez/tienda-api/internal/logger"
	"github.com/avazquez/tienda-api/internal/models"
	"github.com/avazquez/tienda-api/internal/services"
)

// ProductGetter defines the interface that the service must implement.
type ProductGetter interface {
	Get(ctx context.Context, id int64) (*models.ProductDB, error)
}

// NewGetProductHandler returns an HTTP handler that fetches one product.
// @Summary Fetch a product
// @Description Returns the full serialized product.
// @Tags products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} models.ProductDB "Product"
// @Failure 404 {object} handlers.ProductNotFoundResponse "No product with that id"
// @Router /product/get/{id}/ [get]
func NewGetProductHandler(svc ProductGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ProductNotFoundResponse{
				Message: fmt.Sprintf("Product with id %s does not exist", rawID),
			})
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProductNotFoundResponse{
					Message: fmt.Sprintf("Product with id %d does not exist", id),
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
		json.NewEncoder(w).Encode(product)
	}
}
