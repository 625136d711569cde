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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"username": "john", "description": "User created"},
		},
		{
			name: "invalid email format",
			body: `{"username":"john","email":"not-an-email","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "not-an-email", "secret").
					Return(services.ErrInvalidEmail)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"message": "Email address format"},
		},
		{
			name: "username or email already taken",
			body: `{"username":"alice","email":"alice@example.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pass").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"message": "Username or email already taken"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","email":"bob@example.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "pass").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"message": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: 400,
			expectedBody: map[string]string{"message": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/register/", bytes.NewBufferString(tt.body))
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
