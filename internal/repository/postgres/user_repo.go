package postgres

import (
	"context"
	"fmt"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, hashed_password, role, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		user.Email, user.HashedPassword, user.Role.String(), user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	return mapError(err, "create user")
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, email, hashed_password, role, created_at, updated_at FROM users WHERE id = $1`
	var (
		user domain.User
		role string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.HashedPassword, &role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "get user")
	}
	if user.Role, err = domain.ParseRole(role); err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// GetByEmail resolves a principal. It runs on a dedicated connection that is
// released on every path, including scan failures.
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	query := `SELECT id, email, hashed_password, role, created_at, updated_at FROM users WHERE email = $1`
	var (
		user domain.User
		role string
	)
	err = conn.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.HashedPassword, &role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "get user by email")
	}
	if user.Role, err = domain.ParseRole(role); err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete user")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
