package dto

import "github.com/GlebRadaev/zasker/internal/domain"

type SignupRequestDTO struct {
	Name   string   `json:"name" example:"Alice Dev"`
	Email  string   `json:"email" example:"alice@example.com"`
	Role   string   `json:"role" example:"solver"`
	Skills []string `json:"skills,omitempty" example:"React,Node.js"`
	Bio    string   `json:"bio,omitempty" example:"Full-stack developer"`
}

type LoginRequestDTO struct {
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"solver"`
}

type IdentityResponseDTO struct {
	ID    string `json:"id" example:"u1"`
	Name  string `json:"name" example:"Alice Dev"`
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"solver"`
}

func NewIdentityResponse(identity *domain.Identity) IdentityResponseDTO {
	return IdentityResponseDTO{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  string(identity.Role),
	}
}
