// Package seed loads the demo marketplace: one solver, one company and two open problems.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/GlebRadaev/zasker/internal/domain"
)

//go:embed demo.yaml
var demo []byte

type IdentityStore interface {
	FindIdentityByID(ctx context.Context, id string) (*domain.Identity, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error)
}

type ProblemStore interface {
	FindProblemByID(ctx context.Context, id string) (*domain.Problem, error)
	CreateProblem(ctx context.Context, problem *domain.Problem) (*domain.Problem, error)
}

type Fixtures struct {
	Users     []UserFixture    `yaml:"users"`
	Companies []CompanyFixture `yaml:"companies"`
	Problems  []ProblemFixture `yaml:"problems"`
}

type UserFixture struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Email    string   `yaml:"email"`
	Skills   []string `yaml:"skills"`
	Bio      string   `yaml:"bio"`
	Earnings float64  `yaml:"earnings"`
}

type CompanyFixture struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type ProblemFixture struct {
	ID          string  `yaml:"id"`
	CompanyID   string  `yaml:"company_id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Difficulty  string  `yaml:"difficulty"`
	Reward      float64 `yaml:"reward"`
}

func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("can't parse fixtures: %w", err)
	}
	return &f, nil
}

// Demo loads the embedded demo fixtures.
func Demo(ctx context.Context, identities IdentityStore, problems ProblemStore) error {
	f, err := Parse(demo)
	if err != nil {
		return err
	}
	return Load(ctx, f, identities, problems)
}

// Load inserts fixtures whose ids are not stored yet, so it is safe to run on every start.
func Load(ctx context.Context, f *Fixtures, identities IdentityStore, problems ProblemStore) error {
	now := time.Now().UTC()
	owners := make(map[string]string, len(f.Companies))

	for _, c := range f.Companies {
		owners[c.ID] = c.Name
		exists, err := identityExists(ctx, identities, c.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := identities.CreateCompany(ctx, &domain.Company{
			ID:        c.ID,
			Name:      c.Name,
			Email:     normalizeEmail(c.Email),
			Role:      domain.RoleCompany,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("can't seed company %s: %w", c.ID, err)
		}
	}

	for _, u := range f.Users {
		exists, err := identityExists(ctx, identities, u.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		skills := u.Skills
		if skills == nil {
			skills = []string{}
		}
		if _, err := identities.CreateUser(ctx, &domain.User{
			ID:        u.ID,
			Name:      u.Name,
			Email:     normalizeEmail(u.Email),
			Role:      domain.RoleSolver,
			Skills:    skills,
			Bio:       u.Bio,
			Earnings:  u.Earnings,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("can't seed user %s: %w", u.ID, err)
		}
	}

	for _, p := range f.Problems {
		existing, err := problems.FindProblemByID(ctx, p.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		companyName, ok := owners[p.CompanyID]
		if !ok {
			return fmt.Errorf("problem %s: unknown company %s: %w", p.ID, p.CompanyID, domain.ErrNotFound)
		}
		difficulty := domain.Difficulty(p.Difficulty)
		if !difficulty.IsValid() || p.Reward <= 0 {
			return fmt.Errorf("%w: problem %s", domain.ErrValidation, p.ID)
		}
		if _, err := problems.CreateProblem(ctx, &domain.Problem{
			ID:          p.ID,
			Slug:        slug.Make(p.Title),
			CompanyID:   p.CompanyID,
			CompanyName: companyName,
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			Difficulty:  difficulty,
			Reward:      p.Reward,
			Status:      domain.ProblemOpen,
			CreatedAt:   now,
		}); err != nil {
			return fmt.Errorf("can't seed problem %s: %w", p.ID, err)
		}
	}

	zap.L().Info("demo data loaded",
		zap.Int("users", len(f.Users)),
		zap.Int("companies", len(f.Companies)),
		zap.Int("problems", len(f.Problems)),
	)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func identityExists(ctx context.Context, identities IdentityStore, id string) (bool, error) {
	identity, err := identities.FindIdentityByID(ctx, id)
	if err != nil {
		return false, err
	}
	return identity != nil, nil
}
