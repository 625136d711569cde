package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avazquez/tienda-api/internal/services"
)

func TestGetProductImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRouter := func(svc ProductImageGetter) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/product/getimg/{id}/", NewGetProductImageHandler(svc))
		return r
	}

	t.Run("image bytes with jpeg content type", func(t *testing.T) {
		mockSvc := NewMockProductImageGetter(ctrl)
		mockSvc.EXPECT().
			GetImage(gomock.Any(), int64(3)).
			Return([]byte{0xFF, 0xD8, 0xFF}, nil)

		req := httptest.NewRequest(http.MethodGet, "/product/getimg/3/", nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
		assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, rr.Body.Bytes())
	})

	t.Run("unknown id is a 400, unlike the other product endpoints", func(t *testing.T) {
		mockSvc := NewMockProductImageGetter(ctrl)
		mockSvc.EXPECT().
			GetImage(gomock.Any(), int64(99)).
			Return(nil, services.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/product/getimg/99/", nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, 400, rr.Code)
		assert.Equal(t, "The product does not exist.\n", rr.Body.String())
	})

	t.Run("product without image", func(t *testing.T) {
		mockSvc := NewMockProductImageGetter(ctrl)
		mockSvc.EXPECT().
			GetImage(gomock.Any(), int64(3)).
			Return(nil, services.ErrNoImage)

		req := httptest.NewRequest(http.MethodGet, "/product/getimg/3/", nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, 404, rr.Code)
		assert.Equal(t, "Image is not available for this product.\n", rr.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		mockSvc := NewMockProductImageGetter(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/product/getimg/abc/", nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, 400, rr.Code)
	})
}
