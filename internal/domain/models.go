package domain

import "time"

type Role string

const (
	RoleSolver  Role = "solver"
	RoleCompany Role = "company"
)

func (r Role) IsValid() bool {
	return r == RoleSolver || r == RoleCompany
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type ProblemStatus string

const (
	ProblemOpen   ProblemStatus = "OPEN"
	ProblemClosed ProblemStatus = "CLOSED"
)

// Identity is the role-agnostic view of a User or a Company.
type Identity struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Role  Role   `db:"role"`
}

type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      Role      `db:"role"`
	Skills    []string  `db:"skills"`
	Bio       string    `db:"bio"`
	Earnings  float64   `db:"earnings"`
	CreatedAt time.Time `db:"created_at"`
}

func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: RoleSolver}
}

type Company struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (c *Company) Identity() *Identity {
	return &Identity{ID: c.ID, Name: c.Name, Email: c.Email, Role: RoleCompany}
}

// Problem is a bounty posted by a company. SolutionCount is filled by storage
// reads, Solutions only by a detail lookup.
type Problem struct {
	ID            string        `db:"id"`
	Slug          string        `db:"slug"`
	CompanyID     string        `db:"company_id"`
	CompanyName   string        `db:"company_name"`
	Title         string        `db:"title"`
	Description   string        `db:"description"`
	Category      string        `db:"category"`
	Difficulty    Difficulty    `db:"difficulty"`
	Reward        float64       `db:"reward"`
	CreatedAt     time.Time     `db:"created_at"`
	Status        ProblemStatus `db:"status"`
	SolutionCount int           `db:"solution_count"`
	Solutions     []Solution    `db:"-"`
}

// ProblemDraft holds the caller-supplied fields of a new problem.
type ProblemDraft struct {
	Title       string     `validate:"required,notblank,max=200"`
	Description string     `validate:"required,notblank"`
	Category    string     `validate:"required,notblank,max=100"`
	Difficulty  Difficulty `validate:"required,oneof=Easy Medium Hard"`
	Reward      float64    `validate:"gt=0"`
}

type Solution struct {
	ID          string         `db:"id"`
	ProblemID   string         `db:"problem_id"`
	UserID      string         `db:"user_id"`
	UserName    string         `db:"user_name"`
	Content     string         `db:"content"`
	Status      SolutionStatus `db:"status"`
	SubmittedAt time.Time      `db:"submitted_at"`
}

// DashboardEntry pairs a solver's solution with the problem it answers.
type DashboardEntry struct {
	Solution     Solution
	ProblemTitle string
	CompanyName  string
	Reward       float64
}

type SolverDashboard struct {
	User     User
	Earnings float64
	Active   []DashboardEntry
	History  []DashboardEntry
}
