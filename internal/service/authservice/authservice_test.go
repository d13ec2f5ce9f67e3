package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/service/identityservice"
	"github.com/GlebRadaev/zasker/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockIdentityService, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	identities := NewMockIdentityService(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(identities, jwtService, time.Hour)
	return service, identities, jwtService
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		req              SignupRequest
		prepareMock      func(identities *MockIdentityService)
		expectedIdentity *domain.Identity
		expectedError    error
	}{
		{
			name: "Solver with default name",
			req:  SignupRequest{Email: "new@example.com", Role: domain.RoleSolver, Skills: []string{"Go"}},
			prepareMock: func(identities *MockIdentityService) {
				identities.EXPECT().FindIdentityByEmail(ctx, "new@example.com").Return(nil, nil)
				identities.EXPECT().CreateUser(ctx, identityservice.UserProfile{
					Name:   "New User",
					Email:  "new@example.com",
					Skills: []string{"Go"},
				}).Return(&domain.User{ID: "u9", Name: "New User", Email: "new@example.com", Role: domain.RoleSolver}, nil)
			},
			expectedIdentity: &domain.Identity{ID: "u9", Name: "New User", Email: "new@example.com", Role: domain.RoleSolver},
		},
		{
			name: "Company with default name",
			req:  SignupRequest{Name: "  ", Email: "corp@example.com", Role: domain.RoleCompany},
			prepareMock: func(identities *MockIdentityService) {
				identities.EXPECT().FindIdentityByEmail(ctx, "corp@example.com").Return(nil, nil)
				identities.EXPECT().CreateCompany(ctx, identityservice.CompanyProfile{
					Name:  "New Company",
					Email: "corp@example.com",
				}).Return(&domain.Company{ID: "c9", Name: "New Company", Email: "corp@example.com", Role: domain.RoleCompany}, nil)
			},
			expectedIdentity: &domain.Identity{ID: "c9", Name: "New Company", Email: "corp@example.com", Role: domain.RoleCompany},
		},
		{
			name: "Email taken by the other role",
			req:  SignupRequest{Name: "Alice", Email: "tech@example.com", Role: domain.RoleSolver},
			prepareMock: func(identities *MockIdentityService) {
				identities.EXPECT().FindIdentityByEmail(ctx, "tech@example.com").
					Return(&domain.Identity{ID: "c1", Role: domain.RoleCompany}, nil)
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name:          "Unknown role",
			req:           SignupRequest{Email: "x@example.com", Role: domain.Role("admin")},
			prepareMock:   func(identities *MockIdentityService) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Malformed email",
			req:           SignupRequest{Email: "not-an-email", Role: domain.RoleSolver},
			prepareMock:   func(identities *MockIdentityService) {},
			expectedError: domain.ErrValidation,
		},
		{
			name: "Lookup fails",
			req:  SignupRequest{Email: "new@example.com", Role: domain.RoleSolver},
			prepareMock: func(identities *MockIdentityService) {
				identities.EXPECT().FindIdentityByEmail(ctx, "new@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Lost email race",
			req:  SignupRequest{Email: "new@example.com", Role: domain.RoleSolver},
			prepareMock: func(identities *MockIdentityService) {
				identities.EXPECT().FindIdentityByEmail(ctx, "new@example.com").Return(nil, nil)
				identities.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil, domain.ErrEmailTaken)
			},
			expectedError: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, identities, _ := NewMock(t)
			tt.prepareMock(identities)

			identity, err := service.Signup(ctx, tt.req)
			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(err, tt.expectedError) {
					return
				}
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIdentity, identity)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	company := &domain.Identity{ID: "c1", Name: "TechCorp", Email: "tech@example.com", Role: domain.RoleCompany}

	tests := []struct {
		name          string
		role          domain.Role
		found         *domain.Identity
		lookupErr     error
		expectedError error
		expectedMsg   string
	}{
		{name: "Matching role", role: domain.RoleCompany, found: company},
		{name: "Unknown email", role: domain.RoleCompany, expectedError: domain.ErrInvalidEmail},
		{
			name:          "Wrong role",
			role:          domain.RoleSolver,
			found:         company,
			expectedError: domain.ErrRoleMismatch,
			expectedMsg:   "account exists but not as a solver: account role mismatch",
		},
		{name: "Lookup fails", role: domain.RoleSolver, lookupErr: errors.New("database error"), expectedMsg: "database error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, identities, _ := NewMock(t)
			identities.EXPECT().FindIdentityByEmail(ctx, "tech@example.com").Return(tt.found, tt.lookupErr)

			identity, err := service.Login(ctx, "tech@example.com", tt.role)
			if tt.expectedError != nil || tt.expectedMsg != "" {
				require.Error(t, err)
				assert.Nil(t, identity)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				if tt.expectedMsg != "" {
					assert.EqualError(t, err, tt.expectedMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, company, identity)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, jwtService := NewMock(t)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }
	identity := &domain.Identity{ID: "u1", Role: domain.RoleSolver}

	jwtService.EXPECT().GenerateJWT("u1", "solver", fixed.Add(time.Hour)).Return("token", nil)
	token, err := service.GenerateToken(identity)
	require.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT("u1", "solver", fixed.Add(time.Hour)).Return("", errors.New("signing error"))
	token, err = service.GenerateToken(identity)
	assert.EqualError(t, err, "signing error")
	assert.Empty(t, token)
}
