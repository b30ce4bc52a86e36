package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stuffSharing/internal/models"
	"stuffSharing/internal/storage"
)

func (s *Storage) SaveUser(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, user.Name, user.Email).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to save user: %w", err)
	}

	return id, nil
}

func (s *Storage) UserByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`

	var user models.User
	err := s.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) UserExists(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := s.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}

	return exists, nil
}

func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET name = $1, email = $2 WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, user.Name, user.Email, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

func (s *Storage) Users(ctx context.Context, page models.Page) ([]models.User, error) {
	query := `SELECT id, name, email FROM users ORDER BY id ASC LIMIT $1 OFFSET $2`

	users := []models.User{}
	if err := s.db.SelectContext(ctx, &users, query, page.Size, page.From); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *Storage) usersByIDs(ctx context.Context, userIDs []int64) (map[int64]models.User, error) {
	query, args, err := sqlx.In(`SELECT id, name, email FROM users WHERE id IN (?)`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build users query: %w", err)
	}

	var users []models.User
	if err = s.db.SelectContext(ctx, &users, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	byID := make(map[int64]models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	return byID, nil
}
