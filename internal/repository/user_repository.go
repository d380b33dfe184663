package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/commerce-api/internal/domain"
)

// UserRepository extends the CRUD capability set with the lookup the
// credential verifier needs.
type UserRepository interface {
	Crud[domain.User]
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed user store.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (user_id, first_name, last_name, user_name, password_hash)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}

	return r.db.QueryRow(ctx, query,
		user.UserID,
		user.FirstName,
		user.LastName,
		user.UserName,
		user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET first_name=$1, last_name=$2, user_name=$3, password_hash=$4, updated_at=NOW()
        WHERE user_id=$5`

	cmd, err := r.db.Exec(ctx, query,
		user.FirstName,
		user.LastName,
		user.UserName,
		user.PasswordHash,
		user.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE user_id=$1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT user_id, first_name, last_name, user_name, password_hash, created_at, updated_at
        FROM users WHERE user_id=$1`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	const query = `
        SELECT user_id, first_name, last_name, user_name, password_hash, created_at, updated_at
        FROM users WHERE user_name=$1`

	return r.scanOne(r.db.QueryRow(ctx, query, userName))
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT user_id, first_name, last_name, user_name, password_hash, created_at, updated_at
        FROM users ORDER BY user_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.UserID,
			&user.FirstName,
			&user.LastName,
			&user.UserName,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.UserName,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
