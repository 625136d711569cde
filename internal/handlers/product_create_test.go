package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avazquez/tienda-api/internal/models"
	"github.com/avazquez/tienda-api/internal/services"
)

func TestCreateProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	description := "mechanical"

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockProductCreator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success with numeric price",
			body: `{"name":"Keyboard","description":"mechanical","price":10.30,"stock":5}`,
			mockSetup: func(m *MockProductCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.ProductCreate{
						Name:        "Keyboard",
						Description: &description,
						Price:       "10.30",
						Stock:       5,
					}).
					Return(int64(7), nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{"message": "Product Keyboard saved successfully", "id": float64(7)},
		},
		{
			name: "success with string price",
			body: `{"name":"Keyboard","price":"10.30","stock":5}`,
			mockSetup: func(m *MockProductCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.ProductCreate{
						Name:  "Keyboard",
						Price: "10.30",
						Stock: 5,
					}).
					Return(int64(8), nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{"message": "Product Keyboard saved successfully", "id": float64(8)},
		},
		{
			name: "price out of range",
			body: `{"name":"TV","price":1111.34,"stock":1}`,
			mockSetup: func(m *MockProductCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), services.ErrInvalidPrice)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": services.ErrInvalidPrice.Error()},
		},
		{
			name: "missing name",
			body: `{"price":10.30,"stock":1}`,
			mockSetup: func(m *MockProductCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), services.ErrNameRequired)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": services.ErrNameRequired.Error()},
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProductCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateProductHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/product/create/", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
