package problems

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/dto"
	"github.com/GlebRadaev/zasker/pkg/auth"
	"github.com/GlebRadaev/zasker/pkg/utils"
)

//go:generate mockgen -source=problems.go -destination=mock_problems.go -package=problems

type Service interface {
	SearchOpenProblems(ctx context.Context, query string, difficulty domain.Difficulty) ([]domain.Problem, error)
	GetProblem(ctx context.Context, id string) (*domain.Problem, error)
	CreateProblem(ctx context.Context, companyID string, draft domain.ProblemDraft) (*domain.Problem, error)
	CloseProblem(ctx context.Context, problemID, companyID string) (*domain.Problem, error)
	ListProblemsByOwner(ctx context.Context, companyID string) ([]domain.Problem, error)
}

type ProblemHandler struct {
	problemService Service
}

func New(problemService Service) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
	}
}

// SearchProblems godoc
//
//	@Summary		List open problems
//	@Description	Open problems in posting order, optionally filtered by a title or category query and a difficulty
//	@Tags			Problems
//	@Produce		json
//	@Param			q			query		string	false	"Case-insensitive title or category match"
//	@Param			difficulty	query		string	false	"Easy, Medium or Hard"
//	@Success		200			{array}		dto.ProblemResponseDTO
//	@Failure		422			{object}	utils.Response	"Unknown difficulty"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/problems [get]
func (h *ProblemHandler) SearchProblems(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	difficulty := domain.Difficulty(strings.TrimSpace(r.URL.Query().Get("difficulty")))

	problems, err := h.problemService.SearchOpenProblems(r.Context(), query, difficulty)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProblemList(problems))
}

// GetProblem godoc
//
//	@Summary		Get a problem
//	@Description	Problem details with its solutions. Solution content is not exposed here.
//	@Tags			Problems
//	@Produce		json
//	@Param			id	path		string	true	"Problem id"
//	@Success		200	{object}	dto.ProblemDetailResponseDTO
//	@Failure		404	{object}	utils.Response	"Problem not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/problems/{id} [get]
func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	problem, err := h.problemService.GetProblem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProblemDetail(*problem))
}

// CreateProblem godoc
//
//	@Summary		Post a problem
//	@Description	Post a new open problem owned by the calling company
//	@Tags			Problems
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateProblemRequestDTO	true	"Problem fields"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ProblemResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Not a company"
//	@Failure		422	{object}	utils.Response	"Invalid problem fields"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/problems [post]
func (h *ProblemHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	companyID, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateProblemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	problem, err := h.problemService.CreateProblem(r.Context(), companyID, domain.ProblemDraft{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  domain.Difficulty(req.Difficulty),
		Reward:      req.Reward,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewProblemResponse(*problem))
}

// CloseProblem godoc
//
//	@Summary		Close a problem
//	@Description	Stop accepting new solutions. Pending solutions can still be reviewed.
//	@Tags			Problems
//	@Produce		json
//	@Param			id	path	string	true	"Problem id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProblemResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Problem owned by another company"
//	@Failure		404	{object}	utils.Response	"Problem not found"
//	@Failure		409	{object}	utils.Response	"Problem already closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/problems/{id}/close [post]
func (h *ProblemHandler) CloseProblem(w http.ResponseWriter, r *http.Request) {
	companyID, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	problem, err := h.problemService.CloseProblem(r.Context(), chi.URLParam(r, "id"), companyID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProblemResponse(*problem))
}

// ListCompanyProblems godoc
//
//	@Summary		List own problems
//	@Description	Every problem posted by the calling company, open or closed
//	@Tags			Problems
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ProblemResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Not a company"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/company/problems [get]
func (h *ProblemHandler) ListCompanyProblems(w http.ResponseWriter, r *http.Request) {
	companyID, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	problems, err := h.problemService.ListProblemsByOwner(r.Context(), companyID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProblemList(problems))
}
