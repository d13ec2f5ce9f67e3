package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/dto"
	"github.com/GlebRadaev/zasker/internal/service/authservice"
	"github.com/GlebRadaev/zasker/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Signup(ctx context.Context, req authservice.SignupRequest) (*domain.Identity, error)
	Login(ctx context.Context, email string, role domain.Role) (*domain.Identity, error)
	GenerateToken(identity *domain.Identity) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup godoc
//
//	@Summary		Sign up
//	@Description	Create a solver or company account. The session token is returned in the Authorization header.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequestDTO	true	"Signup request body"
//	@Success		200		{object}	dto.IdentityResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already in use"
//	@Failure		422		{object}	utils.Response	"Invalid email or role"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	identity, err := h.authService.Signup(r.Context(), authservice.SignupRequest{
		Name:   req.Name,
		Email:  req.Email,
		Role:   parseRole(req.Role),
		Skills: req.Skills,
		Bio:    req.Bio,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithSession(w, identity)
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Log in by email as a solver or a company and get a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.IdentityResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unknown email or wrong role"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	identity, err := h.authService.Login(r.Context(), req.Email, parseRole(req.Role))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithSession(w, identity)
}

func (h *AuthHandler) respondWithSession(w http.ResponseWriter, identity *domain.Identity) {
	token, err := h.authService.GenerateToken(identity)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.NewIdentityResponse(identity))
}

func parseRole(role string) domain.Role {
	return domain.Role(strings.ToLower(strings.TrimSpace(role)))
}
