package repository

import (
	"context"
	"database/sql"
	"errors"

	"planilla-api/models"
)

type UserRepository interface {
	RegisterUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	AuthenticateUser(ctx context.Context, email string) (*models.UserCredential, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// RegisterUser creates the user row through the register_user routine
// and returns the new user id. Email uniqueness is enforced by the
// database and surfaces as a vendor-coded error.
func (r *userRepository) RegisterUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var userID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT public.register_user($1, $2, $3) AS user_id`,
		username, email, passwordHash,
	).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// AuthenticateUser looks up the stored credential by email. A missing
// user yields (nil, nil) so the handler can answer without
// distinguishing it from a bad password.
func (r *userRepository) AuthenticateUser(ctx context.Context, email string) (*models.UserCredential, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var cred models.UserCredential
	err := r.db.QueryRowContext(ctx,
		`SELECT * FROM authenticate_user($1)`,
		email,
	).Scan(&cred.UserID, &cred.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}
