package identityservice

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zasker/internal/domain"
)

//go:generate mockgen -source=identityservice.go -destination=mock_identityservice.go -package=identityservice

type Repo interface {
	FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)
	FindIdentityByID(ctx context.Context, id string) (*domain.Identity, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error)
}

type UserProfile struct {
	Name     string
	Email    string
	Skills   []string
	Bio      string
	Earnings float64
}

type CompanyProfile struct {
	Name  string
	Email string
}

type Service struct {
	repo  Repo
	newID func() string
}

func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindIdentityByEmail returns nil without an error when nobody owns the email.
func (s *Service) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	identity, err := s.repo.FindIdentityByEmail(ctx, normalizeEmail(email))
	if err != nil {
		zap.L().Error("can't find identity by email", zap.Error(err))
		return nil, err
	}
	return identity, nil
}

func (s *Service) FindIdentityByID(ctx context.Context, id string) (*domain.Identity, error) {
	identity, err := s.repo.FindIdentityByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find identity by id", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return identity, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		zap.L().Error("can't get user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, profile UserProfile) (*domain.User, error) {
	user := &domain.User{
		ID:       s.newID(),
		Name:     strings.TrimSpace(profile.Name),
		Email:    normalizeEmail(profile.Email),
		Role:     domain.RoleSolver,
		Skills:   profile.Skills,
		Bio:      profile.Bio,
		Earnings: profile.Earnings,
	}
	if user.Skills == nil {
		user.Skills = []string{}
	}
	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		zap.L().Warn("can't create user", zap.String("email", user.Email), zap.Error(err))
		return nil, err
	}
	zap.L().Info("user created", zap.String("id", created.ID))
	return created, nil
}

func (s *Service) CreateCompany(ctx context.Context, profile CompanyProfile) (*domain.Company, error) {
	company := &domain.Company{
		ID:    s.newID(),
		Name:  strings.TrimSpace(profile.Name),
		Email: normalizeEmail(profile.Email),
		Role:  domain.RoleCompany,
	}
	created, err := s.repo.CreateCompany(ctx, company)
	if err != nil {
		zap.L().Warn("can't create company", zap.String("email", company.Email), zap.Error(err))
		return nil, err
	}
	zap.L().Info("company created", zap.String("id", created.ID))
	return created, nil
}
