package memoryrepo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/GlebRadaev/zasker/internal/domain"
)

type identityRecord struct {
	user    *domain.User
	company *domain.Company
}

func (r identityRecord) identity() *domain.Identity {
	if r.user != nil {
		return r.user.Identity()
	}
	return r.company.Identity()
}

type problemRecord struct {
	problem   domain.Problem
	solutions []*domain.Solution
}

func (rec *problemRecord) snapshot() domain.Problem {
	problem := rec.problem
	problem.SolutionCount = len(rec.solutions)
	return problem
}

// Repository keeps every entity in process memory behind one lock.
// Lookups return copies so callers cannot mutate stored state.
type Repository struct {
	mu sync.RWMutex

	identities map[string]identityRecord
	emails     map[string]string

	problems     []*problemRecord
	problemIndex map[string]*problemRecord

	solutions       map[string]*domain.Solution
	solutionProblem map[string]*problemRecord
	userSolutions   map[string][]*domain.Solution
}

func New() *Repository {
	return &Repository{
		identities:      make(map[string]identityRecord),
		emails:          make(map[string]string),
		problemIndex:    make(map[string]*problemRecord),
		solutions:       make(map[string]*domain.Solution),
		solutionProblem: make(map[string]*problemRecord),
		userSolutions:   make(map[string][]*domain.Solution),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *Repository) FindIdentityByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[emailKey(email)]
	if !ok {
		return nil, nil
	}
	return r.identities[id].identity(), nil
}

func (r *Repository) FindIdentityByID(_ context.Context, id string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.identities[id]
	if !ok {
		return nil, nil
	}
	return rec.identity(), nil
}

func (r *Repository) GetUser(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.identities[id]
	if !ok || rec.user == nil {
		return nil, nil
	}
	return copyUser(rec.user), nil
}

func (r *Repository) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.reserve(user.ID, user.Email); err != nil {
		return nil, err
	}
	stored := copyUser(user)
	r.identities[user.ID] = identityRecord{user: stored}
	return copyUser(stored), nil
}

func (r *Repository) CreateCompany(_ context.Context, company *domain.Company) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.reserve(company.ID, company.Email); err != nil {
		return nil, err
	}
	stored := *company
	r.identities[company.ID] = identityRecord{company: &stored}
	result := stored
	return &result, nil
}

// reserve claims the id and the email in the shared namespace. Caller holds the write lock.
func (r *Repository) reserve(id, email string) error {
	if _, ok := r.identities[id]; ok {
		return fmt.Errorf("identity %s already exists", id)
	}
	key := emailKey(email)
	if _, ok := r.emails[key]; ok {
		return domain.ErrEmailTaken
	}
	r.emails[key] = id
	return nil
}

func (r *Repository) ListProblems(_ context.Context) ([]domain.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	problems := make([]domain.Problem, 0, len(r.problems))
	for _, rec := range r.problems {
		problems = append(problems, rec.snapshot())
	}
	return problems, nil
}

func (r *Repository) FindProblemByID(_ context.Context, id string) (*domain.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.problemIndex[id]
	if !ok {
		return nil, nil
	}
	problem := rec.snapshot()
	return &problem, nil
}

func (r *Repository) CreateProblem(_ context.Context, problem *domain.Problem) (*domain.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.problemIndex[problem.ID]; ok {
		return nil, fmt.Errorf("problem %s already exists", problem.ID)
	}
	stored := *problem
	stored.SolutionCount = 0
	stored.Solutions = nil
	rec := &problemRecord{problem: stored}
	r.problems = append(r.problems, rec)
	r.problemIndex[stored.ID] = rec

	result := stored
	return &result, nil
}

func (r *Repository) UpdateProblemStatus(_ context.Context, id string, from, to domain.ProblemStatus) (*domain.Problem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.problemIndex[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if rec.problem.Status != from {
		return nil, domain.ErrInvalidState
	}
	rec.problem.Status = to
	problem := rec.snapshot()
	return &problem, nil
}

func (r *Repository) CreateSolution(_ context.Context, solution *domain.Solution) (*domain.Solution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.problemIndex[solution.ProblemID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for _, existing := range rec.solutions {
		if existing.UserID == solution.UserID {
			return nil, domain.ErrAlreadyStarted
		}
	}
	if _, ok := r.solutions[solution.ID]; ok {
		return nil, fmt.Errorf("solution %s already exists", solution.ID)
	}

	stored := *solution
	rec.solutions = append(rec.solutions, &stored)
	r.solutions[stored.ID] = &stored
	r.solutionProblem[stored.ID] = rec
	r.userSolutions[stored.UserID] = append(r.userSolutions[stored.UserID], &stored)

	result := stored
	return &result, nil
}

func (r *Repository) FindSolutionByID(_ context.Context, id string) (*domain.Solution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	solution, ok := r.solutions[id]
	if !ok {
		return nil, nil
	}
	result := *solution
	return &result, nil
}

func (r *Repository) FindSolutionsByProblemID(_ context.Context, problemID string) ([]domain.Solution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.problemIndex[problemID]
	if !ok {
		return nil, nil
	}
	return copySolutions(rec.solutions), nil
}

func (r *Repository) FindSolutionsByUserID(_ context.Context, userID string) ([]domain.Solution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copySolutions(r.userSolutions[userID]), nil
}

// UpdateSolution applies the update only if the stored status still equals u.From.
// The settlement credit happens under the same lock as the status change.
func (r *Repository) UpdateSolution(_ context.Context, u domain.SolutionUpdate) (*domain.Solution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	solution, ok := r.solutions[u.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if solution.Status != u.From {
		return nil, fmt.Errorf("solution %s is %s, expected %s: %w", u.ID, solution.Status, u.From, domain.ErrInvalidState)
	}

	var payee *domain.User
	if u.Settlement != nil {
		rec, ok := r.identities[u.Settlement.UserID]
		if !ok || rec.user == nil {
			return nil, fmt.Errorf("solver %s: %w", u.Settlement.UserID, domain.ErrNotFound)
		}
		payee = rec.user
	}

	solution.Status = u.To
	if u.Content != nil {
		solution.Content = *u.Content
	}
	if u.SubmittedAt != nil {
		solution.SubmittedAt = *u.SubmittedAt
	}
	if payee != nil {
		payee.Earnings += u.Settlement.Amount
	}

	result := *solution
	return &result, nil
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	if u.Skills != nil {
		c.Skills = append([]string(nil), u.Skills...)
	}
	return &c
}

func copySolutions(src []*domain.Solution) []domain.Solution {
	solutions := make([]domain.Solution, 0, len(src))
	for _, s := range src {
		solutions = append(solutions, *s)
	}
	return solutions
}
