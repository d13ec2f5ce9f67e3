package solutionservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zasker/internal/domain"
)

//go:generate mockgen -source=solutionservice.go -destination=mock_solutionservice.go -package=solutionservice

type Repo interface {
	CreateSolution(ctx context.Context, solution *domain.Solution) (*domain.Solution, error)
	FindSolutionByID(ctx context.Context, id string) (*domain.Solution, error)
	FindSolutionsByProblemID(ctx context.Context, problemID string) ([]domain.Solution, error)
	FindSolutionsByUserID(ctx context.Context, userID string) ([]domain.Solution, error)
	UpdateSolution(ctx context.Context, update domain.SolutionUpdate) (*domain.Solution, error)
}

type ProblemRepo interface {
	FindProblemByID(ctx context.Context, id string) (*domain.Problem, error)
}

type IdentityService interface {
	FindIdentityByID(ctx context.Context, id string) (*domain.Identity, error)
}

type Notifier interface {
	Publish(event domain.SolutionEvent)
}

type Service struct {
	repo       Repo
	problems   ProblemRepo
	identities IdentityService
	notifier   Notifier
	newID      func() string
	now        func() time.Time
}

func New(repo Repo, problems ProblemRepo, identities IdentityService, notifier Notifier) *Service {
	return &Service{
		repo:       repo,
		problems:   problems,
		identities: identities,
		notifier:   notifier,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// StartSolution opens an in-progress solution for a solver on an open problem.
// A solver gets at most one solution per problem.
func (s *Service) StartSolution(ctx context.Context, problemID, userID string) (*domain.Solution, error) {
	solver, err := s.identities.FindIdentityByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if solver == nil {
		return nil, fmt.Errorf("identity %s: %w", userID, domain.ErrNotFound)
	}
	if solver.Role != domain.RoleSolver {
		return nil, fmt.Errorf("only solvers can start solutions: %w", domain.ErrPermission)
	}

	problem, err := s.problem(ctx, problemID)
	if err != nil {
		return nil, err
	}
	if problem.Status != domain.ProblemOpen {
		rejectedTransitionsTotal.WithLabelValues("start").Inc()
		return nil, fmt.Errorf("problem %s is %s: %w", problemID, problem.Status, domain.ErrInvalidState)
	}

	solution, err := s.repo.CreateSolution(ctx, &domain.Solution{
		ID:          s.newID(),
		ProblemID:   problem.ID,
		UserID:      solver.ID,
		UserName:    solver.Name,
		Status:      domain.SolutionInProgress,
		SubmittedAt: s.now().UTC(),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyStarted) {
			zap.L().Error("failed to start solution", zap.String("problemID", problemID), zap.Error(err))
		}
		return nil, err
	}

	s.record(solution, problem, 0)
	zap.L().Info("solution started", zap.String("id", solution.ID), zap.String("problemID", problemID), zap.String("userID", userID))
	return solution, nil
}

// SaveDraft replaces the content of an in-progress solution without submitting it.
func (s *Service) SaveDraft(ctx context.Context, solutionID, userID, content string) (*domain.Solution, error) {
	solution, err := s.inProgress(ctx, solutionID, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	updated, err := s.repo.UpdateSolution(ctx, domain.SolutionUpdate{
		ID:          solution.ID,
		From:        domain.SolutionInProgress,
		To:          domain.SolutionInProgress,
		Content:     &content,
		SubmittedAt: &now,
	})
	if err != nil {
		return nil, s.translate("draft", err)
	}
	return updated, nil
}

// SubmitSolution moves the author's in-progress solution to pending review.
// Anything other than an in-progress solution counts as not found.
func (s *Service) SubmitSolution(ctx context.Context, solutionID, userID, content string) (*domain.Solution, error) {
	solution, err := s.inProgress(ctx, solutionID, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	updated, err := s.repo.UpdateSolution(ctx, domain.SolutionUpdate{
		ID:          solution.ID,
		From:        domain.SolutionInProgress,
		To:          domain.SolutionPending,
		Content:     &content,
		SubmittedAt: &now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			// Someone else submitted first: the solution is no longer in progress.
			return nil, fmt.Errorf("no in-progress solution %s: %w", solutionID, domain.ErrNotFound)
		}
		return nil, s.translate("submit", err)
	}

	problem, err := s.problems.FindProblemByID(ctx, updated.ProblemID)
	if err != nil {
		zap.L().Warn("submitted solution without problem lookup", zap.String("id", updated.ID), zap.Error(err))
	}
	s.record(updated, problem, 0)
	zap.L().Info("solution submitted", zap.String("id", updated.ID))
	return updated, nil
}

// ReviewSolution applies the owning company's decision to a pending solution.
// Accepting credits the problem's reward to the author in the same storage step.
func (s *Service) ReviewSolution(ctx context.Context, solutionID string, decision domain.Decision, companyID string) (*domain.Solution, error) {
	target, ok := decision.Status()
	if !ok {
		return nil, fmt.Errorf("%w: unknown decision %q", domain.ErrValidation, decision)
	}

	solution, err := s.solution(ctx, solutionID)
	if err != nil {
		return nil, err
	}
	problem, err := s.problem(ctx, solution.ProblemID)
	if err != nil {
		return nil, err
	}
	if problem.CompanyID != companyID {
		return nil, fmt.Errorf("problem %s is owned by another company: %w", problem.ID, domain.ErrPermission)
	}
	if !solution.Status.CanTransition(target) {
		rejectedTransitionsTotal.WithLabelValues("review").Inc()
		return nil, fmt.Errorf("solution %s is %s: %w", solutionID, solution.Status, domain.ErrInvalidState)
	}

	update := domain.SolutionUpdate{
		ID:   solution.ID,
		From: domain.SolutionPending,
		To:   target,
	}
	var reward float64
	if target == domain.SolutionAccepted {
		reward = problem.Reward
		update.Settlement = &domain.Settlement{UserID: solution.UserID, Amount: reward}
	}

	updated, err := s.repo.UpdateSolution(ctx, update)
	if err != nil {
		return nil, s.translate("review", err)
	}

	s.record(updated, problem, reward)
	zap.L().Info("solution reviewed",
		zap.String("id", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.Float64("reward", reward),
	)
	return updated, nil
}

// ListSolutionsForProblem is the owning company's review queue, in submission order.
func (s *Service) ListSolutionsForProblem(ctx context.Context, problemID, companyID string) ([]domain.Solution, error) {
	problem, err := s.problem(ctx, problemID)
	if err != nil {
		return nil, err
	}
	if problem.CompanyID != companyID {
		return nil, fmt.Errorf("problem %s is owned by another company: %w", problemID, domain.ErrPermission)
	}

	solutions, err := s.repo.FindSolutionsByProblemID(ctx, problemID)
	if err != nil {
		zap.L().Error("failed to list solutions", zap.String("problemID", problemID), zap.Error(err))
		return nil, err
	}
	if solutions == nil {
		solutions = []domain.Solution{}
	}
	return solutions, nil
}

func (s *Service) inProgress(ctx context.Context, solutionID, userID string) (*domain.Solution, error) {
	solution, err := s.repo.FindSolutionByID(ctx, solutionID)
	if err != nil {
		zap.L().Error("failed to find solution", zap.String("id", solutionID), zap.Error(err))
		return nil, err
	}
	if solution == nil {
		rejectedTransitionsTotal.WithLabelValues("submit").Inc()
		return nil, fmt.Errorf("solution %s: %w", solutionID, domain.ErrNotFound)
	}
	if solution.UserID != userID {
		return nil, fmt.Errorf("solution %s belongs to another solver: %w", solutionID, domain.ErrPermission)
	}
	if solution.Status != domain.SolutionInProgress {
		rejectedTransitionsTotal.WithLabelValues("submit").Inc()
		return nil, fmt.Errorf("no in-progress solution %s: %w", solutionID, domain.ErrNotFound)
	}
	return solution, nil
}

func (s *Service) solution(ctx context.Context, id string) (*domain.Solution, error) {
	solution, err := s.repo.FindSolutionByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to find solution", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if solution == nil {
		return nil, fmt.Errorf("solution %s: %w", id, domain.ErrNotFound)
	}
	return solution, nil
}

func (s *Service) problem(ctx context.Context, id string) (*domain.Problem, error) {
	problem, err := s.problems.FindProblemByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to find problem", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if problem == nil {
		return nil, fmt.Errorf("problem %s: %w", id, domain.ErrNotFound)
	}
	return problem, nil
}

func (s *Service) translate(operation string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidState):
		rejectedTransitionsTotal.WithLabelValues(operation).Inc()
	case errors.Is(err, domain.ErrNotFound):
	default:
		zap.L().Error("failed to update solution", zap.String("operation", operation), zap.Error(err))
	}
	return err
}

// record updates metrics and publishes the event for a completed transition.
func (s *Service) record(solution *domain.Solution, problem *domain.Problem, reward float64) {
	transitionsTotal.WithLabelValues(string(solution.Status)).Inc()
	if reward > 0 {
		rewardsPaidTotal.Add(reward)
	}

	event := domain.SolutionEvent{
		ProblemID:  solution.ProblemID,
		SolutionID: solution.ID,
		UserID:     solution.UserID,
		Status:     solution.Status,
		Reward:     reward,
		OccurredAt: s.now().UTC(),
	}
	if problem != nil {
		event.CompanyID = problem.CompanyID
	}
	switch solution.Status {
	case domain.SolutionInProgress:
		event.Type = domain.EventSolutionStarted
	case domain.SolutionPending:
		event.Type = domain.EventSolutionSubmitted
	case domain.SolutionAccepted:
		event.Type = domain.EventSolutionAccepted
	case domain.SolutionRejected:
		event.Type = domain.EventSolutionRejected
	}
	s.notifier.Publish(event)
}
