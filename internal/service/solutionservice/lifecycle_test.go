package solutionservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/zasker/internal/domain"
	memoryrepo "github.com/GlebRadaev/zasker/internal/repo/memory-repo"
	"github.com/GlebRadaev/zasker/internal/service/identityservice"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.SolutionEvent
}

func (n *recordingNotifier) Publish(event domain.SolutionEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) types() []domain.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	types := make([]domain.EventType, 0, len(n.events))
	for _, e := range n.events {
		types = append(types, e.Type)
	}
	return types
}

type LifecycleSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memoryrepo.Repository
	notifier *recordingNotifier
	service  *Service
}

func TestLifecycle(t *testing.T) {
	suite.Run(t, &LifecycleSuite{})
}

func (s *LifecycleSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memoryrepo.New()
	s.notifier = &recordingNotifier{}
	s.service = New(s.store, s.store, identityservice.New(s.store), s.notifier)

	_, err := s.store.CreateCompany(s.ctx, &domain.Company{ID: "c1", Name: "TechCorp", Email: "tech@example.com"})
	s.Require().NoError(err)
	_, err = s.store.CreateCompany(s.ctx, &domain.Company{ID: "c2", Name: "OtherCorp", Email: "other@example.com"})
	s.Require().NoError(err)
	_, err = s.store.CreateUser(s.ctx, &domain.User{ID: "u1", Name: "Alice Dev", Email: "alice@example.com"})
	s.Require().NoError(err)
	_, err = s.store.CreateUser(s.ctx, &domain.User{ID: "u2", Name: "Bob", Email: "bob@example.com"})
	s.Require().NoError(err)
	_, err = s.store.CreateProblem(s.ctx, &domain.Problem{ID: "p1", CompanyID: "c1", CompanyName: "TechCorp", Title: "Fix layout", Reward: 50, Status: domain.ProblemOpen})
	s.Require().NoError(err)
}

func (s *LifecycleSuite) earnings(id string) float64 {
	user, err := s.store.GetUser(s.ctx, id)
	s.Require().NoError(err)
	return user.Earnings
}

func (s *LifecycleSuite) TestAcceptPaysExactlyOnce() {
	started, err := s.service.StartSolution(s.ctx, "p1", "u1")
	s.Require().NoError(err)
	s.Equal(domain.SolutionInProgress, started.Status)

	submitted, err := s.service.SubmitSolution(s.ctx, started.ID, "u1", "fix applied")
	s.Require().NoError(err)
	s.Equal(domain.SolutionPending, submitted.Status)
	s.Equal("fix applied", submitted.Content)

	accepted, err := s.service.ReviewSolution(s.ctx, started.ID, domain.DecisionAccept, "c1")
	s.Require().NoError(err)
	s.Equal(domain.SolutionAccepted, accepted.Status)
	s.Equal(50.0, s.earnings("u1"))

	_, err = s.service.ReviewSolution(s.ctx, started.ID, domain.DecisionAccept, "c1")
	s.ErrorIs(err, domain.ErrInvalidState)
	_, err = s.service.ReviewSolution(s.ctx, started.ID, domain.DecisionReject, "c1")
	s.ErrorIs(err, domain.ErrInvalidState)
	s.Equal(50.0, s.earnings("u1"))

	s.Equal([]domain.EventType{
		domain.EventSolutionStarted,
		domain.EventSolutionSubmitted,
		domain.EventSolutionAccepted,
	}, s.notifier.types())
}

func (s *LifecycleSuite) TestRejectLeavesEarnings() {
	started, err := s.service.StartSolution(s.ctx, "p1", "u1")
	s.Require().NoError(err)
	_, err = s.service.SubmitSolution(s.ctx, started.ID, "u1", "attempt")
	s.Require().NoError(err)

	rejected, err := s.service.ReviewSolution(s.ctx, started.ID, domain.DecisionReject, "c1")
	s.Require().NoError(err)
	s.Equal(domain.SolutionRejected, rejected.Status)
	s.Equal(0.0, s.earnings("u1"))
}

func (s *LifecycleSuite) TestAuthorizationLivesInTheService() {
	_, err := s.service.StartSolution(s.ctx, "p1", "c1")
	s.ErrorIs(err, domain.ErrPermission)

	started, err := s.service.StartSolution(s.ctx, "p1", "u1")
	s.Require().NoError(err)

	_, err = s.service.SubmitSolution(s.ctx, started.ID, "u2", "not mine")
	s.ErrorIs(err, domain.ErrPermission)

	_, err = s.service.SubmitSolution(s.ctx, started.ID, "u1", "mine")
	s.Require().NoError(err)

	_, err = s.service.ReviewSolution(s.ctx, started.ID, domain.DecisionAccept, "c2")
	s.ErrorIs(err, domain.ErrPermission)
	s.Equal(0.0, s.earnings("u1"))

	_, err = s.service.ListSolutionsForProblem(s.ctx, "p1", "c2")
	s.ErrorIs(err, domain.ErrPermission)
}

func (s *LifecycleSuite) TestOneSolutionPerSolverAndOrder() {
	first, err := s.service.StartSolution(s.ctx, "p1", "u2")
	s.Require().NoError(err)
	second, err := s.service.StartSolution(s.ctx, "p1", "u1")
	s.Require().NoError(err)

	_, err = s.service.StartSolution(s.ctx, "p1", "u1")
	s.ErrorIs(err, domain.ErrAlreadyStarted)

	queue, err := s.service.ListSolutionsForProblem(s.ctx, "p1", "c1")
	s.Require().NoError(err)
	s.Require().Len(queue, 2)
	s.Equal(first.ID, queue[0].ID)
	s.Equal(second.ID, queue[1].ID)
}

func (s *LifecycleSuite) TestSubmitTwiceIsNotFound() {
	started, err := s.service.StartSolution(s.ctx, "p1", "u1")
	s.Require().NoError(err)

	_, err = s.service.SubmitSolution(s.ctx, started.ID, "u1", "v1")
	s.Require().NoError(err)
	_, err = s.service.SubmitSolution(s.ctx, started.ID, "u1", "v2")
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.service.SaveDraft(s.ctx, started.ID, "u1", "v3")
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.service.SubmitSolution(s.ctx, started.ID, "u2", "v4")
	s.ErrorIs(err, domain.ErrPermission)
	_, err = s.service.SaveDraft(s.ctx, started.ID, "u2", "v4")
	s.ErrorIs(err, domain.ErrPermission)

	stored, err := s.store.FindSolutionByID(s.ctx, started.ID)
	s.Require().NoError(err)
	s.Equal("v1", stored.Content)
}

func (s *LifecycleSuite) TestClosedProblemStillReviews() {
	started, err := s.service.StartSolution(s.ctx, "p1", "u1")
	s.Require().NoError(err)
	_, err = s.service.SubmitSolution(s.ctx, started.ID, "u1", "done")
	s.Require().NoError(err)

	_, err = s.store.UpdateProblemStatus(s.ctx, "p1", domain.ProblemOpen, domain.ProblemClosed)
	s.Require().NoError(err)

	_, err = s.service.StartSolution(s.ctx, "p1", "u2")
	s.ErrorIs(err, domain.ErrInvalidState)

	_, err = s.service.ReviewSolution(s.ctx, started.ID, domain.DecisionAccept, "c1")
	s.Require().NoError(err)
	s.Equal(50.0, s.earnings("u1"))
}

func (s *LifecycleSuite) TestConcurrentAcceptsPayOnce() {
	started, err := s.service.StartSolution(s.ctx, "p1", "u1")
	s.Require().NoError(err)
	_, err = s.service.SubmitSolution(s.ctx, started.ID, "u1", "race")
	s.Require().NoError(err)

	const reviewers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < reviewers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.ReviewSolution(s.ctx, started.ID, domain.DecisionAccept, "c1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrInvalidState):
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(reviewers-1, conflicts)
	s.Equal(50.0, s.earnings("u1"))
}
