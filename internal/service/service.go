package service

import (
	"github.com/GlebRadaev/zasker/internal/config"
	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/handlers/auth"
	"github.com/GlebRadaev/zasker/internal/handlers/dashboard"
	"github.com/GlebRadaev/zasker/internal/handlers/problems"
	"github.com/GlebRadaev/zasker/internal/handlers/solutions"
	"github.com/GlebRadaev/zasker/internal/repo"
	"github.com/GlebRadaev/zasker/internal/service/authservice"
	"github.com/GlebRadaev/zasker/internal/service/dashboardservice"
	"github.com/GlebRadaev/zasker/internal/service/identityservice"
	"github.com/GlebRadaev/zasker/internal/service/problemservice"
	"github.com/GlebRadaev/zasker/internal/service/solutionservice"
	pkgauth "github.com/GlebRadaev/zasker/pkg/auth"
)

type Notifier interface {
	Publish(event domain.SolutionEvent)
}

type Services struct {
	IdentityService  *identityservice.Service
	AuthService      auth.Service
	ProblemService   problems.Service
	SolutionService  solutions.Service
	DashboardService dashboard.Service
	JWTService       pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, notifier Notifier) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	identityService := identityservice.New(repo.IdentityRepo)

	return &Services{
		IdentityService:  identityService,
		AuthService:      authservice.New(identityService, jwtService, cfg.TokenTTL),
		ProblemService:   problemservice.New(repo.ProblemRepo, repo.SolutionRepo, identityService, notifier),
		SolutionService:  solutionservice.New(repo.SolutionRepo, repo.ProblemRepo, identityService, notifier),
		DashboardService: dashboardservice.New(identityService, repo.SolutionRepo, repo.ProblemRepo),
		JWTService:       jwtService,
	}
}
