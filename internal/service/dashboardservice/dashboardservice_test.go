package dashboardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zasker/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserService, *MockSolutionRepo, *MockProblemRepo) {
	ctrl := gomock.NewController(t)
	users := NewMockUserService(ctrl)
	solutions := NewMockSolutionRepo(ctrl)
	problems := NewMockProblemRepo(ctrl)
	return New(users, solutions, problems), users, solutions, problems
}

func TestService_GetSolverDashboard(t *testing.T) {
	ctx := context.Background()
	problems := []domain.Problem{
		{ID: "p1", Title: "Fix detailed page layout bug", CompanyName: "TechCorp", Reward: 20},
		{ID: "p2", Title: "Design Logo for new product", CompanyName: "TechCorp", Reward: 50},
		{ID: "p3", Title: "Tune database", CompanyName: "DataCo", Reward: 90},
	}
	solutions := []domain.Solution{
		{ID: "s1", ProblemID: "p1", UserID: "u1", Status: domain.SolutionAccepted},
		{ID: "s2", ProblemID: "p2", UserID: "u1", Status: domain.SolutionPending},
		{ID: "s3", ProblemID: "p3", UserID: "u1", Status: domain.SolutionInProgress},
	}

	tests := []struct {
		name            string
		prepareMock     func(users *MockUserService, sols *MockSolutionRepo, probs *MockProblemRepo)
		expectedErr     error
		expectedActive  []string
		expectedHistory []string
	}{
		{
			name: "Solutions split into active and history",
			prepareMock: func(users *MockUserService, sols *MockSolutionRepo, probs *MockProblemRepo) {
				users.EXPECT().GetUser(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Name: "Alice Dev", Earnings: 150}, nil)
				sols.EXPECT().FindSolutionsByUserID(gomock.Any(), "u1").Return(solutions, nil)
				probs.EXPECT().ListProblems(gomock.Any()).Return(problems, nil)
			},
			expectedActive:  []string{"s2", "s3"},
			expectedHistory: []string{"s1"},
		},
		{
			name: "Not a solver",
			prepareMock: func(users *MockUserService, sols *MockSolutionRepo, probs *MockProblemRepo) {
				users.EXPECT().GetUser(gomock.Any(), "u1").Return(nil, nil)
				sols.EXPECT().FindSolutionsByUserID(gomock.Any(), "u1").Return(nil, nil)
				probs.EXPECT().ListProblems(gomock.Any()).Return(problems, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Storage failure",
			prepareMock: func(users *MockUserService, sols *MockSolutionRepo, probs *MockProblemRepo) {
				users.EXPECT().GetUser(gomock.Any(), "u1").Return(&domain.User{ID: "u1"}, nil)
				sols.EXPECT().FindSolutionsByUserID(gomock.Any(), "u1").Return(nil, errors.New("database error"))
				probs.EXPECT().ListProblems(gomock.Any()).Return(problems, nil).AnyTimes()
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, users, sols, probs := NewMock(t)
			tt.prepareMock(users, sols, probs)

			dashboard, err := service.GetSolverDashboard(ctx, "u1")
			if tt.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedErr, domain.ErrNotFound) {
					assert.ErrorIs(t, err, domain.ErrNotFound)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 150.0, dashboard.Earnings)

			active := make([]string, 0)
			for _, e := range dashboard.Active {
				active = append(active, e.Solution.ID)
			}
			history := make([]string, 0)
			for _, e := range dashboard.History {
				history = append(history, e.Solution.ID)
			}
			assert.Equal(t, tt.expectedActive, active)
			assert.Equal(t, tt.expectedHistory, history)
			assert.Equal(t, "Design Logo for new product", dashboard.Active[0].ProblemTitle)
			assert.Equal(t, 50.0, dashboard.Active[0].Reward)
		})
	}
}
