package problemrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/pg"
)

const problemColumns = `id, slug, company_id, company_name, title, description, category, difficulty, reward, status, created_at,
	(SELECT COUNT(*) FROM solutions s WHERE s.problem_id = problems.id) AS solution_count`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) ListProblems(ctx context.Context) ([]domain.Problem, error) {
	query := `SELECT ` + problemColumns + ` FROM problems ORDER BY seq ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list problems", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	problems := make([]domain.Problem, 0)
	for rows.Next() {
		problem, err := scanProblem(rows)
		if err != nil {
			zap.L().Error("can't scan problem row", zap.Error(err))
			return nil, err
		}
		problems = append(problems, *problem)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate problems", zap.Error(err))
		return nil, err
	}
	return problems, nil
}

func (r *Repository) FindProblemByID(ctx context.Context, id string) (*domain.Problem, error) {
	query := `SELECT ` + problemColumns + ` FROM problems WHERE id = $1`
	problem, err := scanProblem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find problem", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return problem, nil
}

func (r *Repository) CreateProblem(ctx context.Context, problem *domain.Problem) (*domain.Problem, error) {
	query := `
		INSERT INTO problems (id, slug, company_id, company_name, title, description, category, difficulty, reward, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		problem.ID, problem.Slug, problem.CompanyID, problem.CompanyName, problem.Title,
		problem.Description, problem.Category, string(problem.Difficulty), problem.Reward, string(problem.Status),
	).Scan(&problem.CreatedAt)
	if err != nil {
		zap.L().Error("can't save problem", zap.Error(err))
		return nil, err
	}
	problem.SolutionCount = 0
	problem.Solutions = nil
	return problem, nil
}

// UpdateProblemStatus moves a problem from one status to another only if it is still in from.
func (r *Repository) UpdateProblemStatus(ctx context.Context, id string, from, to domain.ProblemStatus) (*domain.Problem, error) {
	query := `
		UPDATE problems
		SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING ` + problemColumns

	var updated *domain.Problem
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		problem, err := scanProblem(r.db.QueryRow(ctx, query, id, string(from), string(to)))
		if err == nil {
			updated = problem
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			zap.L().Error("failed to update problem status", zap.String("id", id), zap.Error(err))
			return err
		}

		var current string
		err = r.db.QueryRow(ctx, `SELECT status FROM problems WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		return fmt.Errorf("problem %s is %s, expected %s: %w", id, current, from, domain.ErrInvalidState)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func scanProblem(row pgx.Row) (*domain.Problem, error) {
	var (
		problem    domain.Problem
		difficulty string
		status     string
	)
	err := row.Scan(&problem.ID, &problem.Slug, &problem.CompanyID, &problem.CompanyName, &problem.Title,
		&problem.Description, &problem.Category, &difficulty, &problem.Reward, &status, &problem.CreatedAt,
		&problem.SolutionCount)
	if err != nil {
		return nil, err
	}
	problem.Difficulty = domain.Difficulty(difficulty)
	problem.Status = domain.ProblemStatus(status)
	return &problem, nil
}
