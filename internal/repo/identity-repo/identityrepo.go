package identityrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zasker/internal/domain"
	"github.com/GlebRadaev/zasker/internal/pg"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := `SELECT id, name, email, role FROM identities WHERE email = $1`
	return repo.findIdentity(ctx, query, emailKey(email))
}

// emailKey is the stored form of an email; lookups and inserts both go through it.
func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (repo *Repository) FindIdentityByID(ctx context.Context, id string) (*domain.Identity, error) {
	query := `SELECT id, name, email, role FROM identities WHERE id = $1`
	return repo.findIdentity(ctx, query, id)
}

func (repo *Repository) findIdentity(ctx context.Context, query string, arg string) (*domain.Identity, error) {
	var identity domain.Identity
	var role string
	err := repo.db.QueryRow(ctx, query, arg).Scan(&identity.ID, &identity.Name, &identity.Email, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find identity", zap.Error(err))
		return nil, err
	}
	identity.Role = domain.Role(role)
	return &identity, nil
}

func (repo *Repository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, email, skills, bio, earnings, created_at
		FROM identities
		WHERE id = $1 AND role = 'solver'
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.Skills, &user.Bio, &user.Earnings, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}
	user.Role = domain.RoleSolver
	return &user, nil
}

func (repo *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO identities (id, role, name, email, skills, bio, earnings)
		VALUES ($1, 'solver', $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	user.Email = emailKey(user.Email)
	err := repo.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, skills, user.Bio, user.Earnings).Scan(&user.CreatedAt)
	if err != nil {
		return nil, translateInsertError(err)
	}
	user.Role = domain.RoleSolver
	return user, nil
}

func (repo *Repository) CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query := `
		INSERT INTO identities (id, role, name, email)
		VALUES ($1, 'company', $2, $3)
		RETURNING created_at
	`
	company.Email = emailKey(company.Email)
	err := repo.db.QueryRow(ctx, query, company.ID, company.Name, company.Email).Scan(&company.CreatedAt)
	if err != nil {
		return nil, translateInsertError(err)
	}
	company.Role = domain.RoleCompany
	return company, nil
}

func translateInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "identities_email_key" {
		return domain.ErrEmailTaken
	}
	zap.L().Error("can't save identity", zap.Error(err))
	return err
}
