package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avazquez/tienda-api/internal/logger"
	"github.com/avazquez/tienda-api/internal/services"
)

// ProductImageGetter defines the interface that the service must implement.
type ProductImageGetter interface {
	GetImage(ctx context.Context, id int64) ([]byte, error)
}

// NewGetProductImageHandler returns an HTTP handler that serves a product's
// image bytes. The blob is read fresh on every request and always served
// as image/jpeg. Unlike the other product endpoints, an unknown id is a
// 400 here, and both error bodies are plain text.
// @Summary Fetch a product image
// @Description Returns the raw image bytes with Content-Type image/jpeg.
// @Tags products
// @Produce jpeg
// @Param id path int true "Product id"
// @Success 200 {file} binary "Image bytes"
// @Failure 400 {string} string "The product does not exist."
// @Failure 404 {string} string "Image is not available for this product."
// @Router /product/getimg/{id}/ [get]
func NewGetProductImageHandler(svc ProductImageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			http.Error(w, "The product does not exist.", http.StatusBadRequest)
			return
		}

		data, err := svc.GetImage(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNotFound):
				http.Error(w, "The product does not exist.", http.StatusBadRequest)
			case errors.Is(err, services.ErrNoImage):
				http.Error(w, "Image is not available for this product.", http.StatusNotFound)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "image/jpeg")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
