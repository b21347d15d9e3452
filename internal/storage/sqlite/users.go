package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/storage"
)

// GetDefaultUser returns the single provisioned user. The CLI is
// single-user; the first user row wins.
func (s *Store) GetDefaultUser() (models.User, error) {
	row := s.db.QueryRow(`
		SELECT user_id, name, created_at
		FROM users ORDER BY created_at LIMIT 1`)

	var u models.User
	var createdAt string
	if err := row.Scan(&u.UserID, &u.Name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: no user provisioned", storage.ErrNotFound)
		}
		return models.User{}, err
	}

	var err error
	u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return u, nil
}

func (s *Store) GetUser(userID string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT user_id, name, created_at
		FROM users WHERE user_id = ?`, userID)

	var u models.User
	var createdAt string
	if err := row.Scan(&u.UserID, &u.Name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user %s", storage.ErrNotFound, userID)
		}
		return models.User{}, err
	}

	var err error
	u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return u, nil
}

func (s *Store) CreateUser(user models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (user_id, name, created_at)
		VALUES (?, ?, ?)`,
		user.UserID, user.Name, user.CreatedAt.UTC().Format(time.RFC3339))
	return err
}
