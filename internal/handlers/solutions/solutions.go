package solutions

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

//go:generate mockgen -source=solutions.go -destination=mock_solutions.go -package=solutions

type Service interface {
	StartSolution(ctx context.Context, problemID, userID string) (*domain.Solution, error)
	SaveDraft(ctx context.Context, solutionID, userID, content string) (*domain.Solution, error)
	SubmitSolution(ctx context.Context, solutionID, userID, content string) (*domain.Solution, error)
	ReviewSolution(ctx context.Context, solutionID string, decision domain.Decision, companyID string) (*domain.Solution, error)
	ListSolutionsForProblem(ctx context.Context, problemID, companyID string) ([]domain.Solution, error)
}

type SolutionHandler struct {
	solutionService Service
}

func New(solutionService Service) *SolutionHandler {
	return &SolutionHandler{
		solutionService: solutionService,
	}
}

// StartSolution godoc
//
//	@Summary		Start working on a problem
//	@Description	Open an in-progress solution for the calling solver. One solution per solver and problem.
//	@Tags			Solutions
//	@Produce		json
//	@Param			id	path	string	true	"Problem id"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SolutionResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Not a solver"
//	@Failure		404	{object}	utils.Response	"Problem not found"
//	@Failure		409	{object}	utils.Response	"Already started or problem closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/problems/{id}/solutions [post]
func (h *SolutionHandler) StartSolution(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	solution, err := h.solutionService.StartSolution(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSolutionResponse(*solution))
}

// SaveDraft godoc
//
//	@Summary		Save a draft
//	@Description	Replace the content of the caller's in-progress solution without submitting it
//	@Tags			Solutions
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Solution id"
//	@Param			request	body	dto.SolutionContentRequestDTO	true	"Draft content"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SolutionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Solution belongs to another solver"
//	@Failure		404	{object}	utils.Response	"No in-progress solution"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/solutions/{id} [put]
func (h *SolutionHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	h.withContent(w, r, h.solutionService.SaveDraft, http.StatusOK)
}

// SubmitSolution godoc
//
//	@Summary		Submit a solution
//	@Description	Move the caller's in-progress solution to pending review
//	@Tags			Solutions
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Solution id"
//	@Param			request	body	dto.SolutionContentRequestDTO	true	"Final content"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SolutionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Solution belongs to another solver"
//	@Failure		404	{object}	utils.Response	"No in-progress solution"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/solutions/{id}/submit [post]
func (h *SolutionHandler) SubmitSolution(w http.ResponseWriter, r *http.Request) {
	h.withContent(w, r, h.solutionService.SubmitSolution, http.StatusOK)
}

type contentOperation func(ctx context.Context, solutionID, userID, content string) (*domain.Solution, error)

func (h *SolutionHandler) withContent(w http.ResponseWriter, r *http.Request, op contentOperation, code int) {
	userID, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SolutionContentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	solution, err := op(r.Context(), chi.URLParam(r, "id"), userID, req.Content)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, code, dto.NewSolutionResponse(*solution))
}

// ReviewSolution godoc
//
//	@Summary		Review a solution
//	@Description	Accept or reject a pending solution. Accepting pays the problem's reward to the author.
//	@Tags			Solutions
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Solution id"
//	@Param			request	body	dto.ReviewRequestDTO	true	"ACCEPT or REJECT"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SolutionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Problem owned by another company"
//	@Failure		404	{object}	utils.Response	"Solution not found"
//	@Failure		409	{object}	utils.Response	"Solution is not pending"
//	@Failure		422	{object}	utils.Response	"Unknown decision"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/solutions/{id}/review [post]
func (h *SolutionHandler) ReviewSolution(w http.ResponseWriter, r *http.Request) {
	companyID, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	decision := domain.Decision(strings.ToUpper(strings.TrimSpace(req.Decision)))
	solution, err := h.solutionService.ReviewSolution(r.Context(), chi.URLParam(r, "id"), decision, companyID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSolutionResponse(*solution))
}

// ListSolutions godoc
//
//	@Summary		Review queue
//	@Description	All solutions of an owned problem in submission order, with content
//	@Tags			Solutions
//	@Produce		json
//	@Param			id	path	string	true	"Problem id"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SolutionResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Problem owned by another company"
//	@Failure		404	{object}	utils.Response	"Problem not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/problems/{id}/solutions [get]
func (h *SolutionHandler) ListSolutions(w http.ResponseWriter, r *http.Request) {
	companyID, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	solutions, err := h.solutionService.ListSolutionsForProblem(r.Context(), chi.URLParam(r, "id"), companyID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSolutionList(solutions))
}
