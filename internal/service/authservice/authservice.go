package authservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/service/identityservice"
	"github.com/GlebRadaev/zasker/pkg/auth"
	"github.com/GlebRadaev/zasker/pkg/validate"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

const (
	defaultUserName    = "New User"
	defaultCompanyName = "New Company"
)

type IdentityService interface {
	FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)
	CreateUser(ctx context.Context, profile identityservice.UserProfile) (*domain.User, error)
	CreateCompany(ctx context.Context, profile identityservice.CompanyProfile) (*domain.Company, error)
}

type SignupRequest struct {
	Name   string      `validate:"max=100"`
	Email  string      `validate:"required,email"`
	Role   domain.Role `validate:"required,oneof=solver company"`
	Skills []string
	Bio    string `validate:"max=2000"`
}

type Service struct {
	identities IdentityService
	jwtService auth.JWTServiceInterface
	tokenTTL   time.Duration
	now        func() time.Time
}

func New(identities IdentityService, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		identities: identities,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

// Signup creates a solver or a company. Emails are unique across both roles.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.Identity, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	existing, err := s.identities.FindIdentityByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("email already in use", zap.String("email", req.Email))
		return nil, domain.ErrEmailTaken
	}

	name := strings.TrimSpace(req.Name)
	if req.Role == domain.RoleCompany {
		if name == "" {
			name = defaultCompanyName
		}
		company, err := s.identities.CreateCompany(ctx, identityservice.CompanyProfile{Name: name, Email: req.Email})
		if err != nil {
			return nil, err
		}
		zap.L().Info("company signed up", zap.String("id", company.ID))
		return company.Identity(), nil
	}

	if name == "" {
		name = defaultUserName
	}
	user, err := s.identities.CreateUser(ctx, identityservice.UserProfile{
		Name:   name,
		Email:  req.Email,
		Skills: req.Skills,
		Bio:    req.Bio,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("user signed up", zap.String("id", user.ID))
	return user.Identity(), nil
}

// Login resolves the identity owning email, which must have the requested role.
func (s *Service) Login(ctx context.Context, email string, role domain.Role) (*domain.Identity, error) {
	identity, err := s.identities.FindIdentityByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		zap.L().Info("login with unknown email")
		return nil, domain.ErrInvalidEmail
	}
	if identity.Role != role {
		return nil, fmt.Errorf("account exists but not as a %s: %w", role, domain.ErrRoleMismatch)
	}
	zap.L().Info("identity logged in", zap.String("id", identity.ID), zap.String("role", string(role)))
	return identity, nil
}

func (s *Service) GenerateToken(identity *domain.Identity) (string, error) {
	expirationTime := s.now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(identity.ID, string(identity.Role), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
