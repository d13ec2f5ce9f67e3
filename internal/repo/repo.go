package repo

import (
	"github.com/GlebRadaev/zasker/internal/pg"
	identityrepo "github.com/GlebRadaev/zasker/internal/repo/identity-repo"
	memoryrepo "github.com/GlebRadaev/zasker/internal/repo/memory-repo"
	problemrepo "github.com/GlebRadaev/zasker/internal/repo/problem-repo"
	solutionrepo "github.com/GlebRadaev/zasker/internal/repo/solution-repo"
	"github.com/GlebRadaev/zasker/internal/service/identityservice"
	"github.com/GlebRadaev/zasker/internal/service/problemservice"
	"github.com/GlebRadaev/zasker/internal/service/solutionservice"
)

type Repositories struct {
	IdentityRepo identityservice.Repo
	ProblemRepo  problemservice.Repo
	SolutionRepo solutionservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		IdentityRepo: identityrepo.New(conn),
		ProblemRepo:  problemrepo.New(conn, txManager),
		SolutionRepo: solutionrepo.New(conn, txManager),
	}
}

// NewMemory backs every repository with one in-process store.
func NewMemory() *Repositories {
	store := memoryrepo.New()
	return &Repositories{
		IdentityRepo: store,
		ProblemRepo:  store,
		SolutionRepo: store,
	}
}
