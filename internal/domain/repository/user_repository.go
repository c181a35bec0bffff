package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aspire_system/internal/common"
	"aspire_system/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

const userColumns = `id, username, email, hashed_password, first_name, last_name, enabled, created_at, updated_at`

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `INSERT INTO users (username, email, hashed_password, first_name, last_name, enabled)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.HashedPassword, user.FirstName, user.LastName, user.Enabled,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return nil, fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
		return nil, fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *pgUserRepository) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.HashedPassword,
		&user.FirstName, &user.LastName, &user.Enabled, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.findOne: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.List: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.HashedPassword,
			&user.FirstName, &user.LastName, &user.Enabled, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgUserRepository.List: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.List: %w", err)
	}
	return users, nil
}

func (r *pgUserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET email = $1, first_name = $2, last_name = $3, updated_at = now()
	          WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, user.Email, user.FirstName, user.LastName, user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *pgUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *pgUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("pgUserRepository.exists: %w", err)
	}
	return exists, nil
}
