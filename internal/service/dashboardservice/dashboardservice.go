package dashboardservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/zasker/internal/domain"
)

//go:generate mockgen -source=dashboardservice.go -destination=mock_dashboardservice.go -package=dashboardservice

type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

type SolutionRepo interface {
	FindSolutionsByUserID(ctx context.Context, userID string) ([]domain.Solution, error)
}

type ProblemRepo interface {
	ListProblems(ctx context.Context) ([]domain.Problem, error)
}

type Service struct {
	users     UserService
	solutions SolutionRepo
	problems  ProblemRepo
}

func New(users UserService, solutions SolutionRepo, problems ProblemRepo) *Service {
	return &Service{
		users:     users,
		solutions: solutions,
		problems:  problems,
	}
}

// GetSolverDashboard splits the solver's solutions into active work and history.
func (s *Service) GetSolverDashboard(ctx context.Context, userID string) (*domain.SolverDashboard, error) {
	var (
		user      *domain.User
		solutions []domain.Solution
		problems  []domain.Problem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		solutions, err = s.solutions.FindSolutionsByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		problems, err = s.problems.ListProblems(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build dashboard", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("solver %s: %w", userID, domain.ErrNotFound)
	}

	byID := make(map[string]domain.Problem, len(problems))
	for _, p := range problems {
		byID[p.ID] = p
	}

	dashboard := &domain.SolverDashboard{
		User:     *user,
		Earnings: user.Earnings,
		Active:   []domain.DashboardEntry{},
		History:  []domain.DashboardEntry{},
	}
	for _, solution := range solutions {
		problem := byID[solution.ProblemID]
		entry := domain.DashboardEntry{
			Solution:     solution,
			ProblemTitle: problem.Title,
			CompanyName:  problem.CompanyName,
			Reward:       problem.Reward,
		}
		if solution.Status.IsActive() {
			dashboard.Active = append(dashboard.Active, entry)
		} else {
			dashboard.History = append(dashboard.History, entry)
		}
	}
	return dashboard, nil
}
