package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/constants"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/storage"
	"github.com/daybook-app/daybook/internal/tracker"
)

// Journal wires the storage provider to the pure tracker engine. It owns the
// fetch-classify-write orchestration so the CLI and the TUI share one write
// path.
type Journal struct {
	Store storage.Provider
}

func New(store storage.Provider) *Journal {
	return &Journal{Store: store}
}

// EnsureUser returns the provisioned user, creating one on first use.
func (j *Journal) EnsureUser() (models.User, error) {
	user, err := j.Store.GetDefaultUser()
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, err
	}

	name := constants.DefaultUserName
	if settings, err := j.Store.GetSettings(); err == nil && settings.DisplayName != "" {
		name = settings.DisplayName
	}

	user = models.User{
		UserID:    uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := j.Store.CreateUser(user); err != nil {
		return models.User{}, fmt.Errorf("failed to provision user: %w", err)
	}
	logger.Info("Provisioned user", "userID", user.UserID)
	return user, nil
}

// Timezone returns the configured zone, falling back to the system zone.
func (j *Journal) Timezone() string {
	settings, err := j.Store.GetSettings()
	if err != nil || settings.Timezone == "" {
		return constants.DefaultTimezone
	}
	return settings.Timezone
}

// Snapshot fetches the user's items and recent logs and attaches ytd/today
// buckets to each. It stops on the first storage error and returns nothing
// partial.
func (j *Journal) Snapshot(ownerID, timezone string, now time.Time) ([]tracker.AggregatedItem, tracker.DayWindow, error) {
	window, err := tracker.ComputeWindow(timezone, now)
	if err != nil {
		return nil, tracker.DayWindow{}, err
	}

	items, err := j.Store.GetItemsByOwner(ownerID, false)
	if err != nil {
		return nil, tracker.DayWindow{}, err
	}

	logsByItem := make(map[int64][]models.LogEntry, len(items))
	for _, item := range items {
		logs, err := j.Store.GetLogsForItem(item.ItemID, window.YtdStart)
		if err != nil {
			return nil, tracker.DayWindow{}, err
		}
		logsByItem[item.ItemID] = logs
	}

	return tracker.Aggregate(ownerID, window, items, logsByItem), window, nil
}

// LogResult reports what a write did.
type LogResult struct {
	Entry   models.LogEntry
	Created bool // false means today's row was updated
}

// Log records a value against an item for today, inserting or updating as the
// day's bucket dictates. supplied may be nil; per-type defaults apply. For an
// amount item that already has a row today and no supplied value, the current
// value plus one is submitted; that is a read-then-write, so two concurrent
// increments on the same item and day can lose one.
func (j *Journal) Log(ownerID string, item models.TrackedItem, supplied *int64, timezone string, now time.Time) (LogResult, error) {
	if item.OwnerID != ownerID {
		return LogResult{}, fmt.Errorf("%w: item %d", storage.ErrForbidden, item.ItemID)
	}

	window, err := tracker.ComputeWindow(timezone, now)
	if err != nil {
		return LogResult{}, err
	}

	logs, err := j.Store.GetLogsForItem(item.ItemID, window.YtdStart)
	if err != nil {
		return LogResult{}, err
	}
	buckets := tracker.Classify(logs, window)

	var existingLogID *int64
	if buckets.Today != nil {
		existingLogID = &buckets.Today.LogID
		if item.Type == models.ItemAmount && supplied == nil && buckets.Today.Value != nil {
			next := *buckets.Today.Value + 1
			supplied = &next
		}
	}

	op, err := tracker.ResolveLogWrite(item.Type, item.Direction, existingLogID, supplied, now)
	if err != nil {
		return LogResult{}, err
	}

	switch op.Op {
	case tracker.OpInsert:
		entry := models.LogEntry{
			ItemID:    item.ItemID,
			CreatedAt: op.CreatedAt,
			UpdatedAt: op.UpdatedAt,
			Value:     op.Value,
		}
		id, err := j.Store.InsertLog(entry)
		if err != nil {
			return LogResult{}, err
		}
		entry.LogID = id
		logger.Debug("Inserted log", "itemID", item.ItemID, "logID", id)
		return LogResult{Entry: entry, Created: true}, nil

	case tracker.OpUpdate:
		if err := j.Store.UpdateLog(op.LogID, op.Value, op.UpdatedAt); err != nil {
			return LogResult{}, err
		}
		entry, err := j.Store.GetLog(op.LogID)
		if err != nil {
			return LogResult{}, err
		}
		logger.Debug("Updated log", "itemID", item.ItemID, "logID", op.LogID)
		return LogResult{Entry: entry, Created: false}, nil

	default:
		return LogResult{}, fmt.Errorf("unknown write op %q", op.Op)
	}
}
