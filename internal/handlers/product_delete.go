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
	"github.com/avazquez/tienda-api/internal/services"
)

// ProductDeleter defines the interface that the service must implement.
type ProductDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteProductHandler returns an HTTP handler that deletes one product.
// Deletion is immediate and permanent.
// @Summary Delete a product
// @Description Removes the product. There is no soft delete.
// @Tags products
// @Produce json
// @Param id path int true "Product id"
// @Success 204 "Product deleted"
// @Failure 404 {object} handlers.ProductNotFoundResponse "No product with that id"
// @Router /product/delete/{id}/ [delete]
func NewDeleteProductHandler(svc ProductDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), id); err != nil {
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

		w.WriteHeader(http.StatusNoContent)
	}
}
