package solutionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zasker/internal/domain"
)

var fixedNow = time.Date(2025, 3, 2, 15, 30, 0, 0, time.UTC)

type mocks struct {
	repo       *MockRepo
	problems   *MockProblemRepo
	identities *MockIdentityService
	notifier   *MockNotifier
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:       NewMockRepo(ctrl),
		problems:   NewMockProblemRepo(ctrl),
		identities: NewMockIdentityService(ctrl),
		notifier:   NewMockNotifier(ctrl),
	}
	service := New(m.repo, m.problems, m.identities, m.notifier)
	service.newID = func() string { return "s-new" }
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func openProblem() *domain.Problem {
	return &domain.Problem{ID: "p1", CompanyID: "c1", CompanyName: "TechCorp", Title: "Fix layout", Reward: 50, Status: domain.ProblemOpen}
}

func TestService_StartSolution(t *testing.T) {
	ctx := context.Background()
	alice := &domain.Identity{ID: "u1", Name: "Alice Dev", Role: domain.RoleSolver}

	tests := []struct {
		name        string
		prepareMock func(m mocks)
		expectedErr error
	}{
		{
			name: "Solver starts an open problem",
			prepareMock: func(m mocks) {
				m.identities.EXPECT().FindIdentityByID(ctx, "u1").Return(alice, nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil)
				m.repo.EXPECT().CreateSolution(ctx, &domain.Solution{
					ID:          "s-new",
					ProblemID:   "p1",
					UserID:      "u1",
					UserName:    "Alice Dev",
					Status:      domain.SolutionInProgress,
					SubmittedAt: fixedNow,
				}).DoAndReturn(func(_ context.Context, s *domain.Solution) (*domain.Solution, error) {
					return s, nil
				})
				m.notifier.EXPECT().Publish(domain.SolutionEvent{
					Type:       domain.EventSolutionStarted,
					ProblemID:  "p1",
					CompanyID:  "c1",
					SolutionID: "s-new",
					UserID:     "u1",
					Status:     domain.SolutionInProgress,
					OccurredAt: fixedNow,
				})
			},
		},
		{
			name: "Company cannot start",
			prepareMock: func(m mocks) {
				m.identities.EXPECT().FindIdentityByID(ctx, "u1").Return(&domain.Identity{ID: "u1", Role: domain.RoleCompany}, nil)
			},
			expectedErr: domain.ErrPermission,
		},
		{
			name: "Unknown identity",
			prepareMock: func(m mocks) {
				m.identities.EXPECT().FindIdentityByID(ctx, "u1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Unknown problem",
			prepareMock: func(m mocks) {
				m.identities.EXPECT().FindIdentityByID(ctx, "u1").Return(alice, nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Closed problem",
			prepareMock: func(m mocks) {
				closed := openProblem()
				closed.Status = domain.ProblemClosed
				m.identities.EXPECT().FindIdentityByID(ctx, "u1").Return(alice, nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(closed, nil)
			},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name: "Already started",
			prepareMock: func(m mocks) {
				m.identities.EXPECT().FindIdentityByID(ctx, "u1").Return(alice, nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil)
				m.repo.EXPECT().CreateSolution(ctx, gomock.Any()).Return(nil, domain.ErrAlreadyStarted)
			},
			expectedErr: domain.ErrAlreadyStarted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			solution, err := service.StartSolution(ctx, "p1", "u1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, solution)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.SolutionInProgress, solution.Status)
			assert.Empty(t, solution.Content)
		})
	}
}

func TestService_SubmitSolution(t *testing.T) {
	ctx := context.Background()
	content := "fix applied"
	now := fixedNow

	inProgress := func() *domain.Solution {
		return &domain.Solution{ID: "s1", ProblemID: "p1", UserID: "u1", Status: domain.SolutionInProgress}
	}

	tests := []struct {
		name        string
		userID      string
		prepareMock func(m mocks)
		expectedErr error
	}{
		{
			name:   "Author submits",
			userID: "u1",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(inProgress(), nil)
				m.repo.EXPECT().UpdateSolution(ctx, domain.SolutionUpdate{
					ID: "s1", From: domain.SolutionInProgress, To: domain.SolutionPending,
					Content: &content, SubmittedAt: &now,
				}).Return(&domain.Solution{ID: "s1", ProblemID: "p1", UserID: "u1", Content: content, Status: domain.SolutionPending, SubmittedAt: now}, nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil)
				m.notifier.EXPECT().Publish(gomock.Any()).Do(func(event domain.SolutionEvent) {
					assert.Equal(t, domain.EventSolutionSubmitted, event.Type)
					assert.Equal(t, "c1", event.CompanyID)
				})
			},
		},
		{
			name:   "Unknown solution",
			userID: "u1",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:   "Already pending counts as not found",
			userID: "u1",
			prepareMock: func(m mocks) {
				pending := inProgress()
				pending.Status = domain.SolutionPending
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(pending, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:   "Another solver",
			userID: "u2",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(inProgress(), nil)
			},
			expectedErr: domain.ErrPermission,
		},
		{
			name:   "Another solver on a pending solution",
			userID: "u2",
			prepareMock: func(m mocks) {
				pending := inProgress()
				pending.Status = domain.SolutionPending
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(pending, nil)
			},
			expectedErr: domain.ErrPermission,
		},
		{
			name:   "Lost race to a concurrent submit",
			userID: "u1",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(inProgress(), nil)
				m.repo.EXPECT().UpdateSolution(ctx, gomock.Any()).Return(nil, domain.ErrInvalidState)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			solution, err := service.SubmitSolution(ctx, "s1", tt.userID, content)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, solution)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.SolutionPending, solution.Status)
			assert.Equal(t, content, solution.Content)
		})
	}
}

func TestService_SaveDraft(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)
	draft := "half done"
	now := fixedNow

	m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(&domain.Solution{ID: "s1", UserID: "u1", Status: domain.SolutionInProgress}, nil)
	m.repo.EXPECT().UpdateSolution(ctx, domain.SolutionUpdate{
		ID: "s1", From: domain.SolutionInProgress, To: domain.SolutionInProgress,
		Content: &draft, SubmittedAt: &now,
	}).Return(&domain.Solution{ID: "s1", UserID: "u1", Content: draft, Status: domain.SolutionInProgress}, nil)

	solution, err := service.SaveDraft(ctx, "s1", "u1", draft)
	require.NoError(t, err)
	assert.Equal(t, domain.SolutionInProgress, solution.Status)
	assert.Equal(t, draft, solution.Content)
}

func TestService_ReviewSolution(t *testing.T) {
	ctx := context.Background()
	pending := func() *domain.Solution {
		return &domain.Solution{ID: "s1", ProblemID: "p1", UserID: "u1", Status: domain.SolutionPending}
	}

	tests := []struct {
		name        string
		decision    domain.Decision
		companyID   string
		prepareMock func(m mocks)
		expectedErr error
		expected    domain.SolutionStatus
	}{
		{
			name:      "Accept settles the reward",
			decision:  domain.DecisionAccept,
			companyID: "c1",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(pending(), nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil)
				m.repo.EXPECT().UpdateSolution(ctx, domain.SolutionUpdate{
					ID: "s1", From: domain.SolutionPending, To: domain.SolutionAccepted,
					Settlement: &domain.Settlement{UserID: "u1", Amount: 50},
				}).Return(&domain.Solution{ID: "s1", ProblemID: "p1", UserID: "u1", Status: domain.SolutionAccepted}, nil)
				m.notifier.EXPECT().Publish(gomock.Any()).Do(func(event domain.SolutionEvent) {
					assert.Equal(t, domain.EventSolutionAccepted, event.Type)
					assert.Equal(t, 50.0, event.Reward)
				})
			},
			expected: domain.SolutionAccepted,
		},
		{
			name:      "Reject never pays",
			decision:  domain.DecisionReject,
			companyID: "c1",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(pending(), nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil)
				m.repo.EXPECT().UpdateSolution(ctx, domain.SolutionUpdate{
					ID: "s1", From: domain.SolutionPending, To: domain.SolutionRejected,
				}).Return(&domain.Solution{ID: "s1", ProblemID: "p1", UserID: "u1", Status: domain.SolutionRejected}, nil)
				m.notifier.EXPECT().Publish(gomock.Any())
			},
			expected: domain.SolutionRejected,
		},
		{
			name:      "Non-owner",
			decision:  domain.DecisionAccept,
			companyID: "c2",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(pending(), nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil)
			},
			expectedErr: domain.ErrPermission,
		},
		{
			name:      "Already accepted",
			decision:  domain.DecisionAccept,
			companyID: "c1",
			prepareMock: func(m mocks) {
				accepted := pending()
				accepted.Status = domain.SolutionAccepted
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(accepted, nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil)
			},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name:      "Still in progress",
			decision:  domain.DecisionReject,
			companyID: "c1",
			prepareMock: func(m mocks) {
				inProgress := pending()
				inProgress.Status = domain.SolutionInProgress
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(inProgress, nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil)
			},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name:      "Concurrent accept loses the compare-and-set",
			decision:  domain.DecisionAccept,
			companyID: "c1",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(pending(), nil)
				m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil)
				m.repo.EXPECT().UpdateSolution(ctx, gomock.Any()).Return(nil, domain.ErrInvalidState)
			},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name:        "Unknown decision",
			decision:    "MAYBE",
			companyID:   "c1",
			prepareMock: func(m mocks) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:      "Unknown solution",
			decision:  domain.DecisionAccept,
			companyID: "c1",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:      "Storage failure",
			decision:  domain.DecisionAccept,
			companyID: "c1",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindSolutionByID(ctx, "s1").Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			solution, err := service.ReviewSolution(ctx, "s1", tt.decision, tt.companyID)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, domain.ErrNotFound) || errors.Is(tt.expectedErr, domain.ErrPermission) ||
					errors.Is(tt.expectedErr, domain.ErrInvalidState) || errors.Is(tt.expectedErr, domain.ErrValidation) {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				assert.Nil(t, solution)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, solution.Status)
		})
	}
}

func TestService_ListSolutionsForProblem(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)

	m.problems.EXPECT().FindProblemByID(ctx, "p1").Return(openProblem(), nil).Times(2)
	m.repo.EXPECT().FindSolutionsByProblemID(ctx, "p1").Return(nil, nil)

	solutions, err := service.ListSolutionsForProblem(ctx, "p1", "c1")
	require.NoError(t, err)
	assert.NotNil(t, solutions)
	assert.Empty(t, solutions)

	_, err = service.ListSolutionsForProblem(ctx, "p1", "c2")
	assert.ErrorIs(t, err, domain.ErrPermission)
}
