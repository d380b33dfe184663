package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories use. Declared as an
// interface so tests can substitute a mock pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Crud is the capability set the dispatcher needs from an entity store:
// {insert, update, delete, get, getAll}. Implementations report a missing
// row as pgx.ErrNoRows; zero rows affected on Update/Delete counts as
// missing.
type Crud[E any] interface {
	Insert(ctx context.Context, entity *E) error
	Update(ctx context.Context, entity *E) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*E, error)
	GetAll(ctx context.Context) ([]E, error)
}
