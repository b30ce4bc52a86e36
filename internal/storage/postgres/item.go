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

func (s *Storage) SaveItem(ctx context.Context, item *models.Item) (int64, error) {
	query := `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		item.Name,
		item.Description,
		item.Available,
		item.OwnerID,
		item.RequestID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save item: %w", err)
	}

	return id, nil
}

func (s *Storage) ItemByID(ctx context.Context, itemID int64) (*models.Item, error) {
	query := `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`

	var item models.Item
	err := s.db.GetContext(ctx, &item, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

func (s *Storage) UpdateItem(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET name = $1, description = $2, available = $3
		WHERE id = $4`

	result, err := s.db.ExecContext(ctx, query, item.Name, item.Description, item.Available, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrItemNotFound
	}

	return nil
}

func (s *Storage) ItemsByOwner(ctx context.Context, ownerID int64, page models.Page) ([]models.Item, error) {
	query := `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id ASC
		LIMIT $2 OFFSET $3`

	items := []models.Item{}
	if err := s.db.SelectContext(ctx, &items, query, ownerID, page.Size, page.From); err != nil {
		return nil, fmt.Errorf("failed to list owner items: %w", err)
	}

	return items, nil
}

func (s *Storage) ItemIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	query := `SELECT id FROM items WHERE owner_id = $1 ORDER BY id ASC`

	ids := []int64{}
	if err := s.db.SelectContext(ctx, &ids, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list owner item ids: %w", err)
	}

	return ids, nil
}

// SearchItems matches the text case-insensitively against name or
// description among available items only.
func (s *Storage) SearchItems(ctx context.Context, text string, page models.Page) ([]models.Item, error) {
	query := `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE available = true
		AND (LOWER(name) LIKE '%' || LOWER($1) || '%' OR LOWER(description) LIKE '%' || LOWER($1) || '%')
		ORDER BY id ASC
		LIMIT $2 OFFSET $3`

	items := []models.Item{}
	if err := s.db.SelectContext(ctx, &items, query, text, page.Size, page.From); err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	return items, nil
}

func (s *Storage) itemsByIDs(ctx context.Context, itemIDs []int64) (map[int64]models.Item, error) {
	query, args, err := sqlx.In(`
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id IN (?)`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build items query: %w", err)
	}

	var items []models.Item
	if err = s.db.SelectContext(ctx, &items, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	byID := make(map[int64]models.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return byID, nil
}
