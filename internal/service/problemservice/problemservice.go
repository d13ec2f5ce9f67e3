package problemservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/pkg/validate"
)

//go:generate mockgen -source=problemservice.go -destination=mock_problemservice.go -package=problemservice

type Repo interface {
	ListProblems(ctx context.Context) ([]domain.Problem, error)
	FindProblemByID(ctx context.Context, id string) (*domain.Problem, error)
	CreateProblem(ctx context.Context, problem *domain.Problem) (*domain.Problem, error)
	UpdateProblemStatus(ctx context.Context, id string, from, to domain.ProblemStatus) (*domain.Problem, error)
}

type SolutionRepo interface {
	FindSolutionsByProblemID(ctx context.Context, problemID string) ([]domain.Solution, error)
}

type IdentityService interface {
	FindIdentityByID(ctx context.Context, id string) (*domain.Identity, error)
}

type Notifier interface {
	Publish(event domain.SolutionEvent)
}

type Service struct {
	repo       Repo
	solutions  SolutionRepo
	identities IdentityService
	notifier   Notifier
	newID      func() string
	now        func() time.Time
}

func New(repo Repo, solutions SolutionRepo, identities IdentityService, notifier Notifier) *Service {
	return &Service{
		repo:       repo,
		solutions:  solutions,
		identities: identities,
		notifier:   notifier,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// ListProblems returns every problem in creation order, without solutions.
func (s *Service) ListProblems(ctx context.Context) ([]domain.Problem, error) {
	problems, err := s.repo.ListProblems(ctx)
	if err != nil {
		zap.L().Error("failed to list problems", zap.Error(err))
		return nil, err
	}
	return problems, nil
}

func (s *Service) ListOpenProblems(ctx context.Context) ([]domain.Problem, error) {
	return s.filter(ctx, func(p domain.Problem) bool {
		return p.Status == domain.ProblemOpen
	})
}

func (s *Service) ListProblemsByOwner(ctx context.Context, companyID string) ([]domain.Problem, error) {
	return s.filter(ctx, func(p domain.Problem) bool {
		return p.CompanyID == companyID
	})
}

// SearchOpenProblems matches query case-insensitively against title or category.
// An empty difficulty matches every level.
func (s *Service) SearchOpenProblems(ctx context.Context, query string, difficulty domain.Difficulty) ([]domain.Problem, error) {
	if difficulty != "" && !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", domain.ErrValidation, difficulty)
	}
	query = strings.ToLower(strings.TrimSpace(query))

	return s.filter(ctx, func(p domain.Problem) bool {
		if p.Status != domain.ProblemOpen {
			return false
		}
		if difficulty != "" && p.Difficulty != difficulty {
			return false
		}
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Category), query)
	})
}

func (s *Service) filter(ctx context.Context, keep func(domain.Problem) bool) ([]domain.Problem, error) {
	problems, err := s.ListProblems(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Problem, 0, len(problems))
	for _, p := range problems {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetProblem returns the problem with its solutions in submission order.
func (s *Service) GetProblem(ctx context.Context, id string) (*domain.Problem, error) {
	problem, err := s.repo.FindProblemByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to find problem", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if problem == nil {
		return nil, fmt.Errorf("problem %s: %w", id, domain.ErrNotFound)
	}

	solutions, err := s.solutions.FindSolutionsByProblemID(ctx, id)
	if err != nil {
		zap.L().Error("failed to load solutions", zap.String("problemID", id), zap.Error(err))
		return nil, err
	}
	problem.Solutions = solutions
	if problem.Solutions == nil {
		problem.Solutions = []domain.Solution{}
	}
	problem.SolutionCount = len(problem.Solutions)
	return problem, nil
}

func (s *Service) CreateProblem(ctx context.Context, companyID string, draft domain.ProblemDraft) (*domain.Problem, error) {
	company, err := s.requireCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(draft); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	title := strings.TrimSpace(draft.Title)
	problem := &domain.Problem{
		ID:          s.newID(),
		Slug:        slug.Make(title),
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		Category:    strings.TrimSpace(draft.Category),
		Difficulty:  draft.Difficulty,
		Reward:      draft.Reward,
		CreatedAt:   s.now().UTC(),
		Status:      domain.ProblemOpen,
	}
	created, err := s.repo.CreateProblem(ctx, problem)
	if err != nil {
		zap.L().Error("failed to create problem", zap.Error(err))
		return nil, err
	}
	created.Solutions = []domain.Solution{}

	zap.L().Info("problem posted",
		zap.String("id", created.ID),
		zap.String("companyID", company.ID),
		zap.Float64("reward", created.Reward),
	)
	return created, nil
}

// CloseProblem stops a problem from taking new solutions. Pending reviews can still be completed.
func (s *Service) CloseProblem(ctx context.Context, problemID, companyID string) (*domain.Problem, error) {
	problem, err := s.repo.FindProblemByID(ctx, problemID)
	if err != nil {
		zap.L().Error("failed to find problem", zap.String("id", problemID), zap.Error(err))
		return nil, err
	}
	if problem == nil {
		return nil, fmt.Errorf("problem %s: %w", problemID, domain.ErrNotFound)
	}
	if problem.CompanyID != companyID {
		return nil, fmt.Errorf("problem %s is owned by another company: %w", problemID, domain.ErrPermission)
	}

	closed, err := s.repo.UpdateProblemStatus(ctx, problemID, domain.ProblemOpen, domain.ProblemClosed)
	if err != nil {
		zap.L().Warn("failed to close problem", zap.String("id", problemID), zap.Error(err))
		return nil, err
	}

	s.notifier.Publish(domain.SolutionEvent{
		Type:       domain.EventProblemClosed,
		ProblemID:  closed.ID,
		CompanyID:  closed.CompanyID,
		OccurredAt: s.now().UTC(),
	})
	zap.L().Info("problem closed", zap.String("id", problemID))
	return closed, nil
}

func (s *Service) requireCompany(ctx context.Context, id string) (*domain.Identity, error) {
	identity, err := s.identities.FindIdentityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if identity == nil || identity.Role != domain.RoleCompany {
		return nil, fmt.Errorf("only companies can post problems: %w", domain.ErrPermission)
	}
	return identity, nil
}
