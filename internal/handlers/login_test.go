package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avazquez/tienda-api/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("token123", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"token": "token123"},
		},
		{
			name: "invalid credentials",
			body: `{"username":"john","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid credentials"},
		},
		{
			name: "internal server error",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("", errors.New("redis down"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid credentials"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/login/", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
