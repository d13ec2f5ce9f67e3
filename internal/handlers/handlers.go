package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/zasker/docs"
	"github.com/GlebRadaev/zasker/internal/domain"
	authhandlers "github.com/GlebRadaev/zasker/internal/handlers/auth"
	dashboardhandlers "github.com/GlebRadaev/zasker/internal/handlers/dashboard"
	problemhandlers "github.com/GlebRadaev/zasker/internal/handlers/problems"
	solutionhandlers "github.com/GlebRadaev/zasker/internal/handlers/solutions"
	"github.com/GlebRadaev/zasker/internal/service"
	"github.com/GlebRadaev/zasker/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProblemHandler interface {
	SearchProblems(w http.ResponseWriter, r *http.Request)
	GetProblem(w http.ResponseWriter, r *http.Request)
	CreateProblem(w http.ResponseWriter, r *http.Request)
	CloseProblem(w http.ResponseWriter, r *http.Request)
	ListCompanyProblems(w http.ResponseWriter, r *http.Request)
}

type SolutionHandler interface {
	StartSolution(w http.ResponseWriter, r *http.Request)
	SaveDraft(w http.ResponseWriter, r *http.Request)
	SubmitSolution(w http.ResponseWriter, r *http.Request)
	ReviewSolution(w http.ResponseWriter, r *http.Request)
	ListSolutions(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	ProblemHandler   ProblemHandler
	SolutionHandler  SolutionHandler
	DashboardHandler DashboardHandler
	JWTService       auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		ProblemHandler:   problemhandlers.New(s.ProblemService),
		SolutionHandler:  solutionhandlers.New(s.SolutionService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		JWTService:       s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	authenticated := auth.Middleware(h.JWTService)
	company := auth.RequireRole(string(domain.RoleCompany))
	solver := auth.RequireRole(string(domain.RoleSolver))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.AuthHandler.Signup)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/problems", func(r chi.Router) {
			r.Get("/", h.ProblemHandler.SearchProblems)
			r.Get("/{id}", h.ProblemHandler.GetProblem)

			r.Group(func(r chi.Router) {
				r.Use(authenticated, company)
				r.Post("/", h.ProblemHandler.CreateProblem)
				r.Post("/{id}/close", h.ProblemHandler.CloseProblem)
				r.Get("/{id}/solutions", h.SolutionHandler.ListSolutions)
			})
			r.Group(func(r chi.Router) {
				r.Use(authenticated, solver)
				r.Post("/{id}/solutions", h.SolutionHandler.StartSolution)
			})
		})

		r.Route("/solutions/{id}", func(r chi.Router) {
			r.Use(authenticated)
			r.With(solver).Put("/", h.SolutionHandler.SaveDraft)
			r.With(solver).Post("/submit", h.SolutionHandler.SubmitSolution)
			r.With(company).Post("/review", h.SolutionHandler.ReviewSolution)
		})

		r.With(authenticated, company).Get("/company/problems", h.ProblemHandler.ListCompanyProblems)
		r.With(authenticated, solver).Get("/user/dashboard", h.DashboardHandler.GetDashboard)
	})

	return r
}
