package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zasker/internal/pg"
	identityrepo "github.com/GlebRadaev/zasker/internal/repo/identity-repo"
	memoryrepo "github.com/GlebRadaev/zasker/internal/repo/memory-repo"
	problemrepo "github.com/GlebRadaev/zasker/internal/repo/problem-repo"
	solutionrepo "github.com/GlebRadaev/zasker/internal/repo/solution-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &identityrepo.Repository{}, repo.IdentityRepo)
	assert.IsType(t, &problemrepo.Repository{}, repo.ProblemRepo)
	assert.IsType(t, &solutionrepo.Repository{}, repo.SolutionRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestNewMemory(t *testing.T) {
	repo := NewMemory()

	assert.IsType(t, &memoryrepo.Repository{}, repo.IdentityRepo)
	assert.Same(t, repo.IdentityRepo, repo.ProblemRepo)
	assert.Same(t, repo.ProblemRepo, repo.SolutionRepo)
}
