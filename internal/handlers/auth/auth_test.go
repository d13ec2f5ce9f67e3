package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/dto"
	"github.com/GlebRadaev/zasker/internal/service/authservice"
	"github.com/GlebRadaev/zasker/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestSignupHandler(t *testing.T) {
	handler, service := NewMock(t)
	alice := &domain.Identity{ID: "u1", Name: "Alice Dev", Email: "alice@example.com", Role: domain.RoleSolver}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedToken string
	}{
		{
			name: "Successful signup",
			body: `{"name":"Alice Dev","email":"alice@example.com","role":"Solver","skills":["React"]}`,
			prepareMock: func() {
				service.EXPECT().Signup(context.Background(), authservice.SignupRequest{
					Name:   "Alice Dev",
					Email:  "alice@example.com",
					Role:   domain.RoleSolver,
					Skills: []string{"React"},
				}).Return(alice, nil)
				service.EXPECT().GenerateToken(alice).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "Email already in use",
			body: `{"email":"alice@example.com","role":"company"}`,
			prepareMock: func() {
				service.EXPECT().Signup(context.Background(), gomock.Any()).Return(nil, domain.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "email already in use",
		},
		{
			name: "Unknown role",
			body: `{"email":"alice@example.com","role":"admin"}`,
			prepareMock: func() {
				service.EXPECT().Signup(context.Background(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: role must be one of: solver company", domain.ErrValidation))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "validation failed: role must be one of: solver company",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"name":"Alice Dev","email":"alice@example.com","role":"solver"}`,
			prepareMock: func() {
				service.EXPECT().Signup(context.Background(), gomock.Any()).Return(alice, nil)
				service.EXPECT().GenerateToken(alice).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Signup(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedToken, rr.Header().Get("Authorization"))

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.IdentityResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, dto.IdentityResponseDTO{ID: "u1", Name: "Alice Dev", Email: "alice@example.com", Role: "solver"}, resp)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	company := &domain.Identity{ID: "c1", Name: "TechCorp", Email: "tech@example.com", Role: domain.RoleCompany}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"tech@example.com","role":"company"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), "tech@example.com", domain.RoleCompany).Return(company, nil)
				service.EXPECT().GenerateToken(company).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown email",
			body: `{"email":"ghost@example.com","role":"company"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), "ghost@example.com", domain.RoleCompany).Return(nil, domain.ErrInvalidEmail)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "no account with this email",
		},
		{
			name: "Wrong role",
			body: `{"email":"tech@example.com","role":"solver"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), "tech@example.com", domain.RoleSolver).
					Return(nil, fmt.Errorf("account exists but not as a solver: %w", domain.ErrRoleMismatch))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "account exists but not as a solver: account role mismatch",
		},
		{
			name: "Storage failure",
			body: `{"email":"tech@example.com","role":"company"}`,
			prepareMock: func() {
				service.EXPECT().Login(context.Background(), "tech@example.com", domain.RoleCompany).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
		})
	}
}
