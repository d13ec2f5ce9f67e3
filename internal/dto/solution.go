package dto

import (
	"time"

	"github.com/GlebRadaev/zasker/internal/domain"
)

type SolutionContentRequestDTO struct {
	Content string `json:"content" example:"Wrapped the grid in a flex container."`
}

type ReviewRequestDTO struct {
	Decision string `json:"decision" example:"ACCEPT"`
}

type SolutionResponseDTO struct {
	ID          string    `json:"id" example:"s1"`
	ProblemID   string    `json:"problem_id" example:"p1"`
	UserID      string    `json:"user_id" example:"u1"`
	UserName    string    `json:"user_name" example:"Alice Dev"`
	Content     string    `json:"content" example:"Wrapped the grid in a flex container."`
	Status      string    `json:"status" example:"PENDING"`
	SubmittedAt time.Time `json:"submitted_at" example:"2024-05-01T12:00:00Z"`
}

func NewSolutionResponse(s domain.Solution) SolutionResponseDTO {
	return SolutionResponseDTO{
		ID:          s.ID,
		ProblemID:   s.ProblemID,
		UserID:      s.UserID,
		UserName:    s.UserName,
		Content:     s.Content,
		Status:      string(s.Status),
		SubmittedAt: s.SubmittedAt,
	}
}

func NewSolutionList(solutions []domain.Solution) []SolutionResponseDTO {
	resp := make([]SolutionResponseDTO, 0, len(solutions))
	for _, s := range solutions {
		resp = append(resp, NewSolutionResponse(s))
	}
	return resp
}
