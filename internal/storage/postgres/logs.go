package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/storage"
)

func (s *Store) GetLogsForItem(itemID int64, since time.Time) ([]models.LogEntry, error) {
	rows, err := s.db.Query(`
		SELECT log_id, item_id, created_at, updated_at, value
		FROM logs
		WHERE item_id = $1 AND created_at >= $2
		ORDER BY created_at ASC`,
		itemID, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.LogEntry
	for rows.Next() {
		entry, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

func (s *Store) GetLog(logID int64) (models.LogEntry, error) {
	row := s.db.QueryRow(`
		SELECT log_id, item_id, created_at, updated_at, value
		FROM logs WHERE log_id = $1`, logID)
	entry, err := scanLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LogEntry{}, fmt.Errorf("%w: log %d", storage.ErrNotFound, logID)
		}
		return models.LogEntry{}, err
	}
	return entry, nil
}

func (s *Store) InsertLog(entry models.LogEntry) (int64, error) {
	var value sql.NullInt64
	if entry.Value != nil {
		value = sql.NullInt64{Int64: *entry.Value, Valid: true}
	}

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO logs (item_id, created_at, updated_at, value)
		VALUES ($1, $2, $3, $4)
		RETURNING log_id`,
		entry.ItemID,
		entry.CreatedAt.UTC().Format(time.RFC3339),
		entry.UpdatedAt.UTC().Format(time.RFC3339),
		value).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) UpdateLog(logID int64, value *int64, updatedAt time.Time) error {
	var v sql.NullInt64
	if value != nil {
		v = sql.NullInt64{Int64: *value, Valid: true}
	}

	res, err := s.db.Exec(`
		UPDATE logs SET value = $1, updated_at = $2
		WHERE log_id = $3`,
		v, updatedAt.UTC().Format(time.RFC3339), logID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: log %d", storage.ErrNotFound, logID)
	}
	return nil
}

func scanLog(row rowScanner) (models.LogEntry, error) {
	var entry models.LogEntry
	var createdAt, updatedAt string
	var value sql.NullInt64

	if err := row.Scan(&entry.LogID, &entry.ItemID, &createdAt, &updatedAt, &value); err != nil {
		return models.LogEntry{}, err
	}

	var err error
	entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("failed to parse created_at for log %d: %w", entry.LogID, err)
	}
	entry.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("failed to parse updated_at for log %d: %w", entry.LogID, err)
	}
	if value.Valid {
		v := value.Int64
		entry.Value = &v
	}
	return entry, nil
}
