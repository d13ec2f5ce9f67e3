package solutionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/pg"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"

	solutionColumns = `id, problem_id, user_id, user_name, content, status, submitted_at`
)

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

func (r *Repository) CreateSolution(ctx context.Context, solution *domain.Solution) (*domain.Solution, error) {
	query := `
		INSERT INTO solutions (id, problem_id, user_id, user_name, content, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, solution.ID, solution.ProblemID, solution.UserID, solution.UserName,
		solution.Content, string(solution.Status), solution.SubmittedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == uniqueViolation && pgErr.ConstraintName == "solutions_problem_user_key":
				return nil, domain.ErrAlreadyStarted
			case pgErr.Code == foreignKeyViolation:
				return nil, domain.ErrNotFound
			}
		}
		zap.L().Error("can't save solution", zap.Error(err))
		return nil, err
	}
	return solution, nil
}

func (r *Repository) FindSolutionByID(ctx context.Context, id string) (*domain.Solution, error) {
	query := `SELECT ` + solutionColumns + ` FROM solutions WHERE id = $1`
	solution, err := scanSolution(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find solution", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return solution, nil
}

func (r *Repository) FindSolutionsByProblemID(ctx context.Context, problemID string) ([]domain.Solution, error) {
	query := `SELECT ` + solutionColumns + ` FROM solutions WHERE problem_id = $1 ORDER BY seq ASC`
	return r.findSolutions(ctx, query, problemID)
}

func (r *Repository) FindSolutionsByUserID(ctx context.Context, userID string) ([]domain.Solution, error) {
	query := `SELECT ` + solutionColumns + ` FROM solutions WHERE user_id = $1 ORDER BY seq ASC`
	return r.findSolutions(ctx, query, userID)
}

func (r *Repository) findSolutions(ctx context.Context, query string, arg string) ([]domain.Solution, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't get solutions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	solutions := make([]domain.Solution, 0)
	for rows.Next() {
		solution, err := scanSolution(rows)
		if err != nil {
			zap.L().Error("can't scan solution row", zap.Error(err))
			return nil, err
		}
		solutions = append(solutions, *solution)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate solutions", zap.Error(err))
		return nil, err
	}
	return solutions, nil
}

// UpdateSolution applies u only while the stored status still equals u.From.
// The status change and the earnings credit commit in one transaction.
func (r *Repository) UpdateSolution(ctx context.Context, u domain.SolutionUpdate) (*domain.Solution, error) {
	updateQuery := `
		UPDATE solutions
		SET status = $3, content = COALESCE($4, content), submitted_at = COALESCE($5, submitted_at)
		WHERE id = $1 AND status = $2
		RETURNING ` + solutionColumns
	creditQuery := `
		UPDATE identities
		SET earnings = earnings + $1
		WHERE id = $2 AND role = 'solver'
	`

	var updated *domain.Solution
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		solution, err := scanSolution(r.db.QueryRow(ctx, updateQuery, u.ID, string(u.From), string(u.To), u.Content, u.SubmittedAt))
		if errors.Is(err, pgx.ErrNoRows) {
			return r.explainMiss(ctx, u)
		}
		if err != nil {
			zap.L().Error("failed to update solution", zap.String("id", u.ID), zap.Error(err))
			return err
		}

		if u.Settlement != nil {
			tag, err := r.db.Exec(ctx, creditQuery, u.Settlement.Amount, u.Settlement.UserID)
			if err != nil {
				zap.L().Error("failed to credit earnings", zap.String("user_id", u.Settlement.UserID), zap.Error(err))
				return err
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("solver %s: %w", u.Settlement.UserID, domain.ErrNotFound)
			}
		}

		updated = solution
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// explainMiss tells a missing solution apart from one whose status moved on.
func (r *Repository) explainMiss(ctx context.Context, u domain.SolutionUpdate) error {
	var current string
	err := r.db.QueryRow(ctx, `SELECT status FROM solutions WHERE id = $1`, u.ID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		zap.L().Error("can't read solution status", zap.String("id", u.ID), zap.Error(err))
		return err
	}
	return fmt.Errorf("solution %s is %s, expected %s: %w", u.ID, current, u.From, domain.ErrInvalidState)
}

func scanSolution(row pgx.Row) (*domain.Solution, error) {
	var (
		solution domain.Solution
		status   string
	)
	err := row.Scan(&solution.ID, &solution.ProblemID, &solution.UserID, &solution.UserName,
		&solution.Content, &status, &solution.SubmittedAt)
	if err != nil {
		return nil, err
	}
	solution.Status = domain.SolutionStatus(status)
	return &solution, nil
}
