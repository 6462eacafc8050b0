package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kelly670/ROLLEROSE/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	query := `SELECT id, username, password, role FROM users WHERE username = ?`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.Password, &user.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `INSERT INTO users (username, password, role) VALUES (?, ?, ?)`
	result, err := r.DB.ExecContext(ctx, query, user.Username, user.Password, user.Role)
	if err != nil {
		if isDuplicateKeyError(err) {
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

// UpsertAdmin creates the bootstrap admin account, or resets its password and
// role if the username already exists.
func (r *UserRepository) UpsertAdmin(ctx context.Context, username, hashedPassword string) error {
	query := `
		INSERT INTO users (username, password, role) VALUES (?, ?, 'admin')
		ON DUPLICATE KEY UPDATE password = VALUES(password), role = 'admin'
	`
	_, err := r.DB.ExecContext(ctx, query, username, hashedPassword)
	return err
}
