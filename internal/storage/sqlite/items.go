package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/storage"
)

const itemColumns = "item_id, owner_id, item_type, direction, name, created_at, deleted_at"

func (s *Store) AddItem(item models.TrackedItem) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO items (owner_id, item_type, direction, name, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		item.OwnerID, string(item.Type), string(item.Direction), item.Name,
		item.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetItem(itemID int64) (models.TrackedItem, error) {
	row := s.db.QueryRow(`
		SELECT `+itemColumns+`
		FROM items WHERE item_id = ?`, itemID)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TrackedItem{}, fmt.Errorf("%w: item %d", storage.ErrNotFound, itemID)
		}
		return models.TrackedItem{}, err
	}
	return item, nil
}

func (s *Store) GetItemByName(ownerID, name string) (models.TrackedItem, error) {
	row := s.db.QueryRow(`
		SELECT `+itemColumns+`
		FROM items
		WHERE owner_id = ? AND name COLLATE NOCASE = ? AND deleted_at IS NULL`,
		ownerID, name)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TrackedItem{}, fmt.Errorf("%w: item %q", storage.ErrNotFound, name)
		}
		return models.TrackedItem{}, err
	}
	return item, nil
}

func (s *Store) GetItemsByOwner(ownerID string, includeDeleted bool) ([]models.TrackedItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = ?`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	query += " ORDER BY item_id"

	rows, err := s.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.TrackedItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) RenameItem(itemID int64, name string) error {
	return s.execOnItem(`UPDATE items SET name = ? WHERE item_id = ?`, name, itemID)
}

func (s *Store) SoftDeleteItem(itemID int64) error {
	return s.execOnItem(`
		UPDATE items SET deleted_at = ?
		WHERE item_id = ? AND deleted_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339), itemID)
}

func (s *Store) RestoreItem(itemID int64) error {
	return s.execOnItem(`
		UPDATE items SET deleted_at = NULL
		WHERE item_id = ? AND deleted_at IS NOT NULL`, itemID)
}

func (s *Store) execOnItem(query string, args ...interface{}) error {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: item", storage.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (models.TrackedItem, error) {
	var item models.TrackedItem
	var itemType, direction, createdAt string
	var deletedAt sql.NullString

	if err := row.Scan(&item.ItemID, &item.OwnerID, &itemType, &direction, &item.Name, &createdAt, &deletedAt); err != nil {
		return models.TrackedItem{}, err
	}

	item.Type = models.ItemType(itemType)
	item.Direction = models.Direction(direction)

	var err error
	item.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.TrackedItem{}, fmt.Errorf("failed to parse created_at for item %d: %w", item.ItemID, err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.TrackedItem{}, fmt.Errorf("failed to parse deleted_at for item %d: %w", item.ItemID, err)
		}
		item.DeletedAt = &t
	}
	return item, nil
}
