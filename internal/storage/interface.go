package storage

import (
	"time"

	"github.com/daybook-app/daybook/internal/models"
)

// Provider is the storage boundary. All calls are atomic at the single-row
// level; nothing here requires multi-row transactions.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Users
	GetUser(userID string) (models.User, error)
	GetDefaultUser() (models.User, error)
	CreateUser(models.User) error

	// Items
	AddItem(item models.TrackedItem) (int64, error)
	GetItem(itemID int64) (models.TrackedItem, error)
	// GetItemByName matches the live (non-deleted) item with the given name,
	// case-insensitively, scoped to one owner.
	GetItemByName(ownerID, name string) (models.TrackedItem, error)
	GetItemsByOwner(ownerID string, includeDeleted bool) ([]models.TrackedItem, error)
	RenameItem(itemID int64, name string) error
	SoftDeleteItem(itemID int64) error
	RestoreItem(itemID int64) error

	// Logs. GetLogsForItem returns entries created at or after since, in
	// ascending created_at order; callers pass the yesterday-window start so
	// older rows are never fetched.
	GetLogsForItem(itemID int64, since time.Time) ([]models.LogEntry, error)
	GetLog(logID int64) (models.LogEntry, error)
	InsertLog(entry models.LogEntry) (int64, error)
	UpdateLog(logID int64, value *int64, updatedAt time.Time) error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}
