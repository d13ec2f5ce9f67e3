package dto

import (
	"time"

	"github.com/GlebRadaev/zasker/internal/domain"
)

type CreateProblemRequestDTO struct {
	Title       string  `json:"title" example:"Fix detailed page layout bug"`
	Description string  `json:"description" example:"The detail page overflows on mobile."`
	Category    string  `json:"category" example:"Coding"`
	Difficulty  string  `json:"difficulty" example:"Easy"`
	Reward      float64 `json:"reward" example:"20"`
}

type ProblemResponseDTO struct {
	ID            string    `json:"id" example:"p1"`
	Slug          string    `json:"slug" example:"fix-detailed-page-layout-bug"`
	CompanyID     string    `json:"company_id" example:"c1"`
	CompanyName   string    `json:"company_name" example:"TechCorp"`
	Title         string    `json:"title" example:"Fix detailed page layout bug"`
	Description   string    `json:"description" example:"The detail page overflows on mobile."`
	Category      string    `json:"category" example:"Coding"`
	Difficulty    string    `json:"difficulty" example:"Easy"`
	Reward        float64   `json:"reward" example:"20"`
	Status        string    `json:"status" example:"OPEN"`
	CreatedAt     time.Time `json:"created_at" example:"2024-05-01T12:00:00Z"`
	SolutionCount int       `json:"solution_count" example:"2"`
}

// SolutionSummaryDTO is the public view of a solution, without its content.
type SolutionSummaryDTO struct {
	ID          string    `json:"id" example:"s1"`
	UserName    string    `json:"user_name" example:"Alice Dev"`
	Status      string    `json:"status" example:"PENDING"`
	SubmittedAt time.Time `json:"submitted_at" example:"2024-05-01T12:00:00Z"`
}

type ProblemDetailResponseDTO struct {
	ProblemResponseDTO
	Solutions []SolutionSummaryDTO `json:"solutions"`
}

func NewProblemResponse(p domain.Problem) ProblemResponseDTO {
	return ProblemResponseDTO{
		ID:            p.ID,
		Slug:          p.Slug,
		CompanyID:     p.CompanyID,
		CompanyName:   p.CompanyName,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Difficulty:    string(p.Difficulty),
		Reward:        p.Reward,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		SolutionCount: p.SolutionCount,
	}
}

func NewProblemList(problems []domain.Problem) []ProblemResponseDTO {
	resp := make([]ProblemResponseDTO, 0, len(problems))
	for _, p := range problems {
		resp = append(resp, NewProblemResponse(p))
	}
	return resp
}

func NewProblemDetail(p domain.Problem) ProblemDetailResponseDTO {
	summaries := make([]SolutionSummaryDTO, 0, len(p.Solutions))
	for _, s := range p.Solutions {
		summaries = append(summaries, SolutionSummaryDTO{
			ID:          s.ID,
			UserName:    s.UserName,
			Status:      string(s.Status),
			SubmittedAt: s.SubmittedAt,
		})
	}
	resp := ProblemDetailResponseDTO{
		ProblemResponseDTO: NewProblemResponse(p),
		Solutions:          summaries,
	}
	resp.SolutionCount = len(summaries)
	return resp
}
