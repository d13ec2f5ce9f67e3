package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func echoIdentity(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	role, _ := r.Context().Value(RoleKey).(string)
	_, _ = w.Write([]byte(id + ":" + role))
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		prepareMock  func(m *MockJWTServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Missing header",
			prepareMock:  func(m *MockJWTServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			header:       "Basic dXNlcjpwYXNz",
			prepareMock:  func(m *MockJWTServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer broken",
			prepareMock: func(m *MockJWTServiceInterface) {
				m.EXPECT().ValidateToken("broken").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Valid token",
			header: "Bearer good",
			prepareMock: func(m *MockJWTServiceInterface) {
				m.EXPECT().ValidateToken("good").Return(&Claims{IdentityID: "u1", Role: "solver"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "u1:solver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := NewMockJWTServiceInterface(ctrl)
			tt.prepareMock(jwtService)

			handler := Middleware(jwtService)(http.HandlerFunc(echoIdentity))
			req := httptest.NewRequest(http.MethodGet, "/api/user/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := NewMockJWTServiceInterface(ctrl)
	jwtService.EXPECT().ValidateToken("solver-token").Return(&Claims{IdentityID: "u1", Role: "solver"}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("company-token").Return(&Claims{IdentityID: "c1", Role: "company"}, nil).AnyTimes()

	handler := Middleware(jwtService)(RequireRole("company")(http.HandlerFunc(echoIdentity)))

	req := httptest.NewRequest(http.MethodPost, "/api/problems", nil)
	req.Header.Set("Authorization", "Bearer solver-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/problems", nil)
	req.Header.Set("Authorization", "Bearer company-token")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "c1:company", rr.Body.String())
}
