package dto

import "github.com/GlebRadaev/zasker/internal/domain"

type UserProfileDTO struct {
	ID     string   `json:"id" example:"u1"`
	Name   string   `json:"name" example:"Alice Dev"`
	Email  string   `json:"email" example:"alice@example.com"`
	Skills []string `json:"skills" example:"React,Next.js"`
	Bio    string   `json:"bio" example:"Full-stack developer"`
}

type DashboardEntryDTO struct {
	Solution     SolutionResponseDTO `json:"solution"`
	ProblemTitle string              `json:"problem_title" example:"Fix detailed page layout bug"`
	CompanyName  string              `json:"company_name" example:"TechCorp"`
	Reward       float64             `json:"reward" example:"20"`
}

type DashboardResponseDTO struct {
	User     UserProfileDTO      `json:"user"`
	Earnings float64             `json:"earnings" example:"150"`
	Active   []DashboardEntryDTO `json:"active"`
	History  []DashboardEntryDTO `json:"history"`
}

func NewDashboardResponse(d *domain.SolverDashboard) DashboardResponseDTO {
	skills := d.User.Skills
	if skills == nil {
		skills = []string{}
	}
	return DashboardResponseDTO{
		User: UserProfileDTO{
			ID:     d.User.ID,
			Name:   d.User.Name,
			Email:  d.User.Email,
			Skills: skills,
			Bio:    d.User.Bio,
		},
		Earnings: d.Earnings,
		Active:   newDashboardEntries(d.Active),
		History:  newDashboardEntries(d.History),
	}
}

func newDashboardEntries(entries []domain.DashboardEntry) []DashboardEntryDTO {
	resp := make([]DashboardEntryDTO, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, DashboardEntryDTO{
			Solution:     NewSolutionResponse(e.Solution),
			ProblemTitle: e.ProblemTitle,
			CompanyName:  e.CompanyName,
			Reward:       e.Reward,
		})
	}
	return resp
}
