package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/AuthKeeper/internal/models"
)

// PostgresUserRepository implements the user store on a PostgreSQL
// database. The users table enforces username uniqueness, so the
// check-then-insert in CreateUser is atomic on the database side.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the
// given database connection. db must be a valid *sql.DB connected to a
// PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// FindUser fetches the user with the given username. It returns
// ErrUserNotFound if no row matches.
func (r *PostgresUserRepository) FindUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, username, password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user record. The ON CONFLICT DO NOTHING clause
// turns a duplicate username into zero affected rows, which is reported
// as ErrUserExists.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	res, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3) ON CONFLICT (username) DO NOTHING`,
		user.ID,
		user.Username,
		user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrUserExists
	}
	return nil
}
