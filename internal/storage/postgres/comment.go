package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stuffSharing/internal/models"
)

func (s *Storage) SaveComment(ctx context.Context, comment *models.Comment) (int64, error) {
	query := `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		comment.Text,
		comment.ItemID,
		comment.AuthorID,
		comment.Created,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save comment: %w", err)
	}

	return id, nil
}

func (s *Storage) CommentsByItem(ctx context.Context, itemID int64) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name AS author_name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created ASC`

	comments := []models.Comment{}
	if err := s.db.SelectContext(ctx, &comments, query, itemID); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (s *Storage) CommentsByItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error) {
	if len(itemIDs) == 0 {
		return []models.Comment{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT c.id, c.text, c.item_id, c.author_id, u.name AS author_name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id IN (?)
		ORDER BY c.created ASC`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build comments query: %w", err)
	}

	comments := []models.Comment{}
	if err = s.db.SelectContext(ctx, &comments, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}
